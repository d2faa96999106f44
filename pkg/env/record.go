// pkg/env/record.go
package env

import (
	"sort"
	"strings"
)

// Record prefixes understood by build tools
const (
	PrefixIncludes = "INCLUDES"
	PrefixLibPath  = "LIBPATH"
	PrefixDefines  = "DEFINES"
	PrefixLib      = "LIB"
)

// Record is a build-environment record: INCLUDES_<KEY>, LIBPATH_<KEY>,
// DEFINES_<KEY> and LIB_<KEY> mapped to ordered value lists.
type Record map[string][]string

// VarName builds a record variable name such as INCLUDES_LIBCMAES
func VarName(prefix, key string) string {
	return prefix + "_" + strings.ToUpper(key)
}

// Set replaces the values of prefix_key
func (r Record) Set(prefix, key string, values ...string) {
	r[VarName(prefix, key)] = append([]string(nil), values...)
}

// Get returns the values of prefix_key
func (r Record) Get(prefix, key string) []string {
	return r[VarName(prefix, key)]
}

// Merge appends other into r, skipping values a variable already holds
func (r Record) Merge(other Record) {
	for name, values := range other {
		existing := r[name]
		seen := make(map[string]bool, len(existing))
		for _, v := range existing {
			seen[v] = true
		}
		for _, v := range values {
			if seen[v] {
				continue
			}
			seen[v] = true
			existing = append(existing, v)
		}
		r[name] = existing
	}
}

// Keys returns variable names in sorted order
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CompilerFlags converts the record into compiler and linker flags
func (r Record) CompilerFlags() CompilerFlags {
	var flags CompilerFlags
	for _, name := range r.Keys() {
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}
		for _, v := range r[name] {
			switch prefix {
			case PrefixIncludes:
				flags.IncludeFlags = append(flags.IncludeFlags, "-I"+v)
			case PrefixLibPath:
				flags.LibraryFlags = append(flags.LibraryFlags, "-L"+v)
			case PrefixLib:
				flags.LinkFlags = append(flags.LinkFlags, "-l"+v)
			case PrefixDefines:
				flags.DefineFlags = append(flags.DefineFlags, "-D"+v)
			}
		}
	}
	return flags
}
