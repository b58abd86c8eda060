// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a Surface from options.
type Factory func(opts Options) (Surface, error)

// Entry describes a registered surface backend.
type Entry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Convention: 100 for GPU backends, 10 for software.
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports whether the backend can run on this system.
	Available func() bool
}

// Registry manages surface backends. Third-party backends register
// themselves (typically from an init function) so canvas elements can be
// given the best available backing store without this package importing
// any GPU library.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates an empty registry. Most code uses the package-level
// functions, which operate on a shared global registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

var globalRegistry = NewRegistry()

// ErrNoBackendAvailable is returned when no registered backend is
// available on the current system.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// NotFoundError indicates a named backend is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// UnavailableError indicates a backend is registered but cannot run on
// this system.
type UnavailableError struct {
	Name string
}

func (e *UnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// Register adds a backend to the global registry. A nil available
// function means always available. Re-registering a name replaces the
// previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Available returns the available backend names, highest priority first.
func Available() []string {
	return globalRegistry.Available()
}

// New creates a surface using the best available backend.
func New(width, height int) (Surface, error) {
	return globalRegistry.New(Options{Width: width, Height: height})
}

// NewByName creates a surface using a specific backend.
func NewByName(name string, opts Options) (Surface, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Entry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &Entry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Available returns the available backend names, highest priority first.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name, e := range r.entries {
		if e.Available() {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := r.entries[names[i]].Priority, r.entries[names[j]].Priority
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	return names
}

// New creates a surface using the best available backend, falling back
// through the priority order when a factory fails.
func (r *Registry) New(opts Options) (Surface, error) {
	var lastErr error
	for _, name := range r.Available() {
		s, err := r.NewByName(name, opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewByName creates a surface using a specific backend.
func (r *Registry) NewByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &UnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
}
