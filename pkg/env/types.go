// pkg/env/types.go
package env

import "io/fs"

// Prober reports whether a path exists on the host filesystem
type Prober interface {
	Stat(path string) (fs.FileInfo, error)
}

// Candidate is the outcome of probing one directory for one file
type Candidate struct {
	Path  string // Full path that was probed
	Found bool   // True if a regular file exists at Path
	Err   error  // Probe failure other than "does not exist", if any
}

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "cmaes")
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dylib", ".dll", ".lib"
	IsStatic bool   // True for .a and .lib files
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
	DefineFlags  []string // -D flags
}

// All returns every flag in compiler command-line order
func (f CompilerFlags) All() []string {
	out := make([]string, 0, len(f.DefineFlags)+len(f.IncludeFlags)+len(f.LibraryFlags)+len(f.LinkFlags))
	out = append(out, f.DefineFlags...)
	out = append(out, f.IncludeFlags...)
	out = append(out, f.LibraryFlags...)
	out = append(out, f.LinkFlags...)
	return out
}
