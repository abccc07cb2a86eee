// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"io"
	"sort"
	"sync"
)

// Options configures a surface created through the registry.
type Options struct {
	Width  int
	Height int

	// Writer receives vector output. Required by the svg backend.
	Writer io.Writer
}

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// entry represents a registered surface backend.
type entry struct {
	name     string
	priority int
	factory  Factory
}

// Registry maps backend names to factories.
//
// Example registration:
//
//	func init() {
//	    surface.Register("pdf", 5, pdfFactory)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and NewByName.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

var globalRegistry = NewRegistry()

// Register adds a backend to the global registry. Registering an existing
// name replaces it.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// List returns all registered backend names, highest priority first.
func List() []string {
	return globalRegistry.List()
}

// New creates a surface using the highest priority backend that accepts
// opts.
func New(opts Options) (Surface, error) {
	return globalRegistry.New(opts)
}

// NewByName creates a surface using a specific backend.
func NewByName(name string, opts Options) (Surface, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*entry)
	}
	r.entries[name] = &entry{name: name, priority: priority, factory: factory}
}

// List returns backend names sorted by priority, then name.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	es := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool {
		if es[i].priority != es[j].priority {
			return es[i].priority > es[j].priority
		}
		return es[i].name < es[j].name
	})

	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.name
	}
	return names
}

// New tries each backend in priority order and returns the first surface
// created without error.
func (r *Registry) New(opts Options) (Surface, error) {
	names := r.List()
	if len(names) == 0 {
		return nil, ErrNoBackend
	}

	var lastErr error
	for _, name := range names {
		s, err := r.NewByName(name, opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewByName creates a surface using a specific backend.
func (r *Registry) NewByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidSize
	}
	return e.factory(opts)
}

// Errors.
var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("surface: no backend available")

	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrNoWriter is returned by the svg backend when Options.Writer is nil.
	ErrNoWriter = errors.New("surface: svg backend requires a writer")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

func init() {
	Register("raster", 10, func(opts Options) (Surface, error) {
		return NewRaster(opts.Width, opts.Height), nil
	})
	Register("svg", 5, func(opts Options) (Surface, error) {
		if opts.Writer == nil {
			return nil, ErrNoWriter
		}
		return NewSVG(opts.Writer, opts.Width, opts.Height), nil
	})
}
