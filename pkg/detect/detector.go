// pkg/detect/detector.go
package detect

import (
	"context"
	"io"

	"github.com/phuslu/log"

	"github.com/arc-language/libprobe/pkg/env"
)

// Status is the outcome of a detection
type Status int

const (
	NotFound Status = iota
	Found
)

func (s Status) String() string {
	if s == Found {
		return "found"
	}
	return "not found"
}

// Request selects the search roots. An empty OverridePath means the
// OS-standard fallback directories are searched.
type Request struct {
	OverridePath string
}

// IncludeDirs returns the include search paths for the request
func (r Request) IncludeDirs() []string {
	if r.OverridePath != "" {
		return []string{r.OverridePath + "/include"}
	}
	return append([]string(nil), DefaultIncludeDirs...)
}

// LibDirs returns the library search paths for the request
func (r Request) LibDirs() []string {
	if r.OverridePath != "" {
		return []string{r.OverridePath + "/lib"}
	}
	return append([]string(nil), DefaultLibDirs...)
}

// Result is what a detection produced. Includes, LibPaths, Defines and
// Libs are only set when Status is Found.
type Result struct {
	Status   Status
	Spec     LibrarySpec
	Includes []string
	LibPaths []string
	Defines  []string
	Libs     []string

	HeaderPath string       // Where the header was located
	Library    *env.Library // Which binary variant matched
}

// Found reports whether the library is usable
func (r *Result) Found() bool {
	return r.Status == Found
}

// Record returns the build-environment variables for a found library,
// or an empty record otherwise.
func (r *Result) Record() env.Record {
	rec := env.Record{}
	if !r.Found() {
		return rec
	}
	for _, v := range []struct {
		prefix string
		values []string
	}{
		{env.PrefixIncludes, r.Includes},
		{env.PrefixLibPath, r.LibPaths},
		{env.PrefixDefines, r.Defines},
		{env.PrefixLib, r.Libs},
	} {
		if len(v.values) > 0 {
			rec.Set(v.prefix, r.Spec.Key, v.values...)
		}
	}
	return rec
}

// Config configures a Detector
type Config struct {
	Spec     LibrarySpec
	Prober   env.Prober  // Defaults to env.OSProber
	Reporter Reporter    // Defaults to NopReporter
	Logger   *log.Logger // Defaults to a discarding logger
}

// Detector locates an optional library on the host filesystem
type Detector struct {
	spec     LibrarySpec
	prober   env.Prober
	reporter Reporter
	logger   *log.Logger
}

// New creates a Detector. It fails only when the spec is incomplete.
func New(config Config) (*Detector, error) {
	if err := config.Spec.Validate(); err != nil {
		return nil, err
	}

	d := &Detector{
		spec:     config.Spec,
		prober:   config.Prober,
		reporter: config.Reporter,
		logger:   config.Logger,
	}
	if d.prober == nil {
		d.prober = env.OSProber{}
	}
	if d.reporter == nil {
		d.reporter = NopReporter{}
	}
	if d.logger == nil {
		d.logger = &log.Logger{Level: log.ErrorLevel, Writer: &log.IOWriter{Writer: io.Discard}}
	}
	return d, nil
}

// Detect searches for the header and then the binary. It always returns a
// result; a missing library or a failed probe is never an error.
func (d *Detector) Detect(ctx context.Context, req Request) *Result {
	includes := req.IncludeDirs()
	libs := req.LibDirs()
	notFound := &Result{Status: NotFound, Spec: d.spec}

	search := env.Searcher{Prober: d.prober, Observe: d.logCandidate}

	d.reporter.StartMsg("Checking for " + d.spec.Name + " includes (optional)")
	header, ok := search.FindFile(ctx, includes, d.spec.Header)
	if !ok {
		d.logCancelled(ctx)
		d.reporter.EndMsg("Not found", ColorRed)
		d.logger.Info().Str("library", d.spec.Name).Strs("dirs", includes).Msg("header not found")
		return notFound
	}
	d.reporter.EndMsg("ok", ColorNone)

	d.reporter.StartMsg("Checking for " + d.spec.Name + " libs")
	lib := search.FindLibrary(ctx, libs, d.spec.Binaries)
	if lib == nil {
		d.logCancelled(ctx)
		d.reporter.EndMsg("Not found", ColorRed)
		d.logger.Info().Str("library", d.spec.Name).Strs("dirs", libs).Msg("library binary not found")
		return notFound
	}
	d.reporter.EndMsg("ok", ColorNone)

	d.logger.Info().
		Str("library", d.spec.Name).
		Str("header", header).
		Str("binary", lib.Path).
		Bool("static", lib.IsStatic).
		Msg("library found")

	return &Result{
		Status:     Found,
		Spec:       d.spec,
		Includes:   includes,
		LibPaths:   libs,
		Defines:    d.defines(),
		Libs:       []string{d.spec.Link},
		HeaderPath: header,
		Library:    lib,
	}
}

func (d *Detector) logCandidate(c env.Candidate) {
	if c.Err != nil {
		d.logger.Debug().Str("path", c.Path).Err(c.Err).Msg("probe failed, skipping")
		return
	}
	d.logger.Debug().Str("path", c.Path).Bool("found", c.Found).Msg("probe")
}

func (d *Detector) logCancelled(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		d.logger.Debug().Err(err).Str("library", d.spec.Name).Msg("search cancelled")
	}
}

func (d *Detector) defines() []string {
	if d.spec.Define == "" {
		return nil
	}
	return []string{d.spec.Define}
}
