// pkg/detect/spec.go
package detect

import (
	"fmt"
	"strings"
)

// Default search roots used when no override path is given
var (
	DefaultIncludeDirs = []string{"/usr/local/include", "/usr/include"}
	DefaultLibDirs     = []string{"/usr/local/lib", "/usr/lib", "/usr/lib/x86_64-linux-gnu/"}
)

// LibrarySpec describes an optional library and how to recognize it
type LibrarySpec struct {
	Name     string   // Display and option name (e.g., "libcmaes")
	Key      string   // Record key suffix (e.g., "LIBCMAES")
	Header   string   // Header path relative to an include dir
	Binaries []string // Acceptable binary file names, in probe order
	Define   string   // Symbol defined when the library is available
	Link     string   // Name passed to the linker as -l<Link>
}

// LibCMAES is the CMA-ES optimization library
var LibCMAES = LibrarySpec{
	Name:     "libcmaes",
	Key:      "LIBCMAES",
	Header:   "libcmaes/cmaes.h",
	Binaries: []string{"libcmaes.so", "libcmaes.a", "libcmaes.dylib"},
	Define:   "USE_LIBCMAES",
	Link:     "cmaes",
}

// Validate checks that every field needed for detection is set
func (s LibrarySpec) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("library spec: missing name")
	case s.Key == "" || strings.ContainsAny(s.Key, " \t"):
		return fmt.Errorf("library spec %s: invalid key %q", s.Name, s.Key)
	case s.Header == "":
		return fmt.Errorf("library spec %s: missing header", s.Name)
	case len(s.Binaries) == 0:
		return fmt.Errorf("library spec %s: no binary names", s.Name)
	case s.Link == "":
		return fmt.Errorf("library spec %s: missing link name", s.Name)
	}
	return nil
}
