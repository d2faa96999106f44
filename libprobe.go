// libprobe.go
package libprobe

import (
	"context"
	"fmt"

	"github.com/arc-language/libprobe/pkg/detect"
	"github.com/arc-language/libprobe/pkg/env"
)

// Re-export detection types for convenience
type (
	LibrarySpec = detect.LibrarySpec
	Request     = detect.Request
	Result      = detect.Result
	Status      = detect.Status
	Record      = env.Record
)

// Re-export detection constants
const (
	Found    = detect.Found
	NotFound = detect.NotFound
)

// LibCMAES is the default library spec
var LibCMAES = detect.LibCMAES

// Detect looks for libcmaes under overridePath, or the OS-standard
// directories when overridePath is empty.
func Detect(ctx context.Context, overridePath string) *Result {
	res, _ := DetectLibrary(ctx, LibCMAES, overridePath)
	return res
}

// DetectLibrary looks for an arbitrary library. The returned error is
// ErrInvalidSpec for an incomplete spec, ErrNotFound when the library is
// missing, and nil when it was found.
func DetectLibrary(ctx context.Context, spec LibrarySpec, overridePath string) (*Result, error) {
	d, err := detect.New(detect.Config{Spec: spec})
	if err != nil {
		return &Result{Status: NotFound, Spec: spec}, &Error{Op: "detect", Library: spec.Name, Root: overridePath, Err: fmt.Errorf("%w: %v", ErrInvalidSpec, err)}
	}

	res := d.Detect(ctx, Request{OverridePath: overridePath})
	if !res.Found() {
		return res, &Error{Op: "detect", Library: spec.Name, Root: overridePath, Err: ErrNotFound}
	}
	return res, nil
}
