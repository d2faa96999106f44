// pkg/env/doc.go
package env

/*
Package env provides the filesystem search primitives and the build-environment
record used by libprobe.

It handles:
  - Probing a directory for a file, one Candidate per probe
  - Searching ordered directory lists with first-success-wins semantics
  - Locating a library among several binary file names
  - Holding the INCLUDES_/LIBPATH_/DEFINES_/LIB_ record a build tool consumes

Probe failures (permission denied, malformed paths) never propagate. They are
recorded on the Candidate and treated as "not found here".

Basic Usage:

    s := env.Searcher{Observe: func(c env.Candidate) { fmt.Println(c.Path, c.Found) }}
    lib := s.FindLibrary(ctx, []string{"/usr/local/lib", "/usr/lib"},
        []string{"libcmaes.so", "libcmaes.a"})
    if lib != nil {
        fmt.Printf("Found: %s at %s\n", lib.Name, lib.Path)
    }

    rec := env.Record{}
    rec.Set("INCLUDES", "LIBCMAES", "/usr/local/include")
    for _, flag := range rec.CompilerFlags().IncludeFlags {
        fmt.Println(flag) // -I/usr/local/include
    }
*/
