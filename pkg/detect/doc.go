// pkg/detect/doc.go

/*
Package detect locates an optional native library (libcmaes by default) and
describes how to build against it.

A detection looks for the library's header in the include search paths and,
only if the header exists, for one of its binary forms in the lib search
paths. Search paths come from an override root (ROOT/include, ROOT/lib) or
from the OS-standard fallback directories.

    d, _ := detect.New(detect.Config{Spec: detect.LibCMAES})
    res := d.Detect(ctx, detect.Request{OverridePath: "/opt/cmaes"})
    if res.Found() {
        record.Merge(res.Record()) // INCLUDES_LIBCMAES, LIBPATH_LIBCMAES, ...
    }

Detect never returns an error. A missing library yields a NotFound result
and an unreadable candidate directory is skipped.
*/
package detect
