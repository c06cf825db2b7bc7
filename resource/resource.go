// Package resource resolves resource names to raw bytes for document
// loading. Loaders are the only I/O boundary of the module: they
// block, carry no timeouts, and leave cancellation to the caller.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jot-format/go-jot/debug"
)

// ErrNotFound reports an unresolvable resource name. Every loader in
// this package wraps it, so errors.Is works across loader kinds.
var ErrNotFound = errors.New("resource not found")

// Loader resolves a name to the bytes of one resource.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Dir loads resources relative to a directory root. Names use slash
// separators regardless of platform.
type Dir string

func (dir Dir) Load(name string) ([]byte, error) {
	path := filepath.Join(string(dir), filepath.FromSlash(name))
	if debug.Load() {
		debug.Logf("load %q from %q\n", name, path)
	}
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", name, err)
	}
	return d, nil
}

// Map is an in-memory loader, mostly for tests and embedded defaults.
type Map map[string][]byte

func (m Map) Load(name string) ([]byte, error) {
	d, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return d, nil
}

// Sets is a registry of named loaders. Load resolves through the
// default loader; LoadFrom scopes the lookup to one named set.
type Sets struct {
	Default Loader

	m map[string]Loader
}

func (s *Sets) Register(set string, l Loader) {
	if s.m == nil {
		s.m = map[string]Loader{}
	}
	s.m[set] = l
}

func (s *Sets) Load(name string) ([]byte, error) {
	if s.Default == nil {
		return nil, fmt.Errorf("%q: no default loader: %w", name, ErrNotFound)
	}
	return s.Default.Load(name)
}

func (s *Sets) LoadFrom(set, name string) ([]byte, error) {
	l, ok := s.m[set]
	if !ok {
		return nil, fmt.Errorf("set %q: %q: %w", set, name, ErrNotFound)
	}
	if debug.Load() {
		debug.Logf("load %q from set %q\n", name, set)
	}
	return l.Load(name)
}
