// internal/cli/output.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/libprobe/pkg/core"
	"github.com/arc-language/libprobe/pkg/env"
)

// writeRecord prints rec in the requested format. An empty record prints
// nothing.
func writeRecord(w io.Writer, rec env.Record, format string) error {
	if len(rec) == 0 {
		return nil
	}

	switch format {
	case core.FormatYAML, "":
		data, err := yaml.Marshal(map[string][]string(rec))
		if err != nil {
			return fmt.Errorf("marshaling record: %w", err)
		}
		_, err = w.Write(data)
		return err

	case core.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]string(rec))

	case core.FormatEnv:
		for _, name := range rec.Keys() {
			if _, err := fmt.Fprintf(w, "%s=%s\n", name, strconv.Quote(strings.Join(rec[name], " "))); err != nil {
				return err
			}
		}
		return nil

	case core.FormatFlags:
		_, err := fmt.Fprintln(w, strings.Join(rec.CompilerFlags().All(), " "))
		return err

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
