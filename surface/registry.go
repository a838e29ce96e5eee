// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Conventional backend priorities. Higher wins in NewSurface.
const (
	PriorityDisplay   = 100
	PriorityRaster    = 10
	PriorityRecording = 0
)

// Options is handed to a Factory.
type Options struct {
	// Width and Height are the display size in pixels.
	Width, Height int
}

// Factory creates a surface of the requested size.
type Factory func(opts Options) (Surface, error)

// Backend is a surface implementation known to a Registry.
type Backend struct {
	Name     string
	Priority int
	Factory  Factory

	// Probe reports whether the backend can run on this system.
	// A nil Probe means always.
	Probe func() bool
}

// Usable reports whether b can create surfaces here.
func (b Backend) Usable() bool {
	return b.Probe == nil || b.Probe()
}

// Registry is a set of named surface backends. The zero value is empty and
// ready to use; it is safe for concurrent use.
//
// A display driver makes itself available with
//
//	func init() {
//	    surface.Register("epaper", surface.PriorityDisplay, newEPaper, probeEPaper)
//	}
//
// and a host picks it by name or takes the best one available:
//
//	s, err := surface.NewSurfaceByName("epaper", 144, 168)
//	s, err := surface.NewSurface(144, 168)
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry returns an empty registry. Most code uses the package-level
// functions, which share one default registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry Registry

// Register adds or replaces the backend called name.
func (r *Registry) Register(name string, priority int, factory Factory, probe func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backends == nil {
		r.backends = make(map[string]Backend)
	}
	r.backends[name] = Backend{Name: name, Priority: priority, Factory: factory, Probe: probe}
}

// Unregister removes the backend called name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Get returns the backend called name.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

// List returns every backend name, highest priority first, ties by name.
func (r *Registry) List() []string {
	return backendNames(r.ordered(false))
}

// Available is List restricted to usable backends.
func (r *Registry) Available() []string {
	return backendNames(r.ordered(true))
}

func (r *Registry) ordered(usableOnly bool) []Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		if usableOnly && !b.Usable() {
			continue
		}
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func backendNames(bs []Backend) []string {
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Name
	}
	return names
}

// NewSurface creates a surface with the first usable backend, in priority
// order, whose factory succeeds. When every factory fails their errors are
// joined.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	backends := r.ordered(true)
	if len(backends) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, b := range backends {
		s, err := b.Factory(opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, fmt.Errorf("surface: %s: %w", b.Name, err))
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName creates a surface with the backend called name.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b, ok := r.Get(name)
	switch {
	case !ok:
		return nil, &BackendNotFoundError{Name: name}
	case !b.Usable():
		return nil, &BackendUnavailableError{Name: name}
	}
	s, err := b.Factory(opts)
	if err != nil {
		return nil, fmt.Errorf("surface: %s: %w", name, err)
	}
	return s, nil
}

// Register adds or replaces a backend in the default registry.
func Register(name string, priority int, factory Factory, probe func() bool) {
	defaultRegistry.Register(name, priority, factory, probe)
}

// Unregister removes a backend from the default registry.
func Unregister(name string) {
	defaultRegistry.Unregister(name)
}

// Get returns a backend of the default registry.
func Get(name string) (Backend, bool) {
	return defaultRegistry.Get(name)
}

// List returns the default registry's backend names, highest priority first.
func List() []string {
	return defaultRegistry.List()
}

// Available returns the default registry's usable backend names.
func Available() []string {
	return defaultRegistry.Available()
}

// NewSurface creates a width×height surface with the best usable backend.
func NewSurface(width, height int) (Surface, error) {
	return defaultRegistry.NewSurface(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a width×height surface with the named backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return defaultRegistry.NewSurfaceByName(name, Options{Width: width, Height: height})
}

// ErrNoBackendAvailable is returned by NewSurface when no backend is
// registered or usable.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError reports an unregistered backend name.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError reports a registered backend whose probe failed.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register("image", PriorityRaster, newImageBackend, nil)
}

func newImageBackend(opts Options) (Surface, error) {
	s, err := NewImageSurface(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	return s, nil
}
