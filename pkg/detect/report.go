// pkg/detect/report.go
package detect

import (
	"fmt"
	"io"
)

// Colors for end messages
const (
	ColorNone  = ""
	ColorGreen = "GREEN"
	ColorRed   = "RED"
)

var ansi = map[string]string{
	ColorGreen: "\x1b[32m",
	ColorRed:   "\x1b[31m",
}

// Reporter prints the two-part status lines shown while detecting
type Reporter interface {
	StartMsg(msg string)
	EndMsg(result, color string)
}

// NopReporter discards status lines
type NopReporter struct{}

func (NopReporter) StartMsg(string)       {}
func (NopReporter) EndMsg(string, string) {}

// TextReporter writes lines like "Checking for libcmaes libs    : ok"
type TextReporter struct {
	W     io.Writer
	Color bool
	Width int // Column the colon is aligned to (default 40)
}

func (r *TextReporter) StartMsg(msg string) {
	width := r.Width
	if width == 0 {
		width = 40
	}
	fmt.Fprintf(r.W, "%-*s: ", width, msg)
}

func (r *TextReporter) EndMsg(result, color string) {
	if color == ColorNone {
		color = ColorGreen
	}
	if code, ok := ansi[color]; ok && r.Color {
		fmt.Fprintf(r.W, "%s%s\x1b[0m\n", code, result)
		return
	}
	fmt.Fprintln(r.W, result)
}
