// pkg/env/library.go
package env

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// OSProber probes the real filesystem
type OSProber struct{}

// Stat implements Prober using os.Stat
func (OSProber) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ProbeOne checks a single directory for name. It never returns an error:
// failures other than "does not exist" are kept on the Candidate.
func ProbeOne(p Prober, dir, name string) Candidate {
	c := Candidate{Path: filepath.Join(dir, name)}

	info, err := p.Stat(c.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.Err = err
		}
		return c
	}

	// Only regular files match. A directory that happens to carry the
	// header or library name is not something a compiler can use, so this
	// is stricter than a plain existence check.
	c.Found = !info.IsDir()
	return c
}

// Searcher looks for files across ordered directory lists
type Searcher struct {
	Prober  Prober          // Defaults to OSProber
	Observe func(Candidate) // Called for every probed candidate, may be nil
}

func (s Searcher) prober() Prober {
	if s.Prober == nil {
		return OSProber{}
	}
	return s.Prober
}

// FindFile returns the first directory-relative match of name. Failed probes
// count as misses; a done context ends the search as a miss.
func (s Searcher) FindFile(ctx context.Context, dirs []string, name string) (string, bool) {
	p := s.prober()
	for _, dir := range dirs {
		if ctx.Err() != nil {
			return "", false
		}

		c := ProbeOne(p, dir, name)
		if s.Observe != nil {
			s.Observe(c)
		}
		if c.Found {
			return c.Path, true
		}
	}
	return "", false
}

// FindLibrary searches dirs for any of the given file names.
// Names are tried in order; the first hit wins.
func (s Searcher) FindLibrary(ctx context.Context, dirs []string, names []string) *Library {
	for _, filename := range names {
		path, ok := s.FindFile(ctx, dirs, filename)
		if !ok {
			continue
		}
		return newLibrary(filename, path)
	}

	return nil
}

func newLibrary(filename, path string) *Library {
	ext := filepath.Ext(filename)
	return &Library{
		Name:     libraryName(filename),
		Path:     path,
		Type:     ext,
		IsStatic: ext == ".a" || ext == ".lib",
	}
}

// libraryName strips the "lib" prefix and extension (libcmaes.so -> cmaes)
func libraryName(filename string) string {
	name := strings.TrimPrefix(filename, "lib")
	return strings.Split(name, ".")[0]
}
