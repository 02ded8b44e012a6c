package debugger

import (
	"fmt"
	"image"
	"io"
	"sort"
	"sync"
)

// Backend is a Canvas with a render lifecycle. Backends replay recordings
// into their output format and are created by name from the registry.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using debugger.Register()
//  2. Implement every Canvas method (a no-op is acceptable)
//  3. Reset all state, including the save stack, in Begin
//
// # Example Backend Registration
//
//	func init() {
//	    debugger.Register("raster", func() debugger.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	Canvas

	// Begin prepares the backend for a frame of the given size.
	Begin(width, height int) error

	// End finishes the frame. Output methods are valid afterwards.
	End() error
}

// WriterBackend extends Backend with the ability to write its output.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered frame. Call it only after End.
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered frame, or nil before End.
	Image() image.Image
}

// BackendFactory creates a new backend instance. Factories are added with
// Register and invoked once per NewBackend call.
type BackendFactory func() Backend

// Registry state, guarded by registryMu.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register registers a backend factory with the given name. Backend
// packages call it from init(), following the database/sql driver pattern:
//
//	func init() {
//	    debugger.Register("raster", func() debugger.Backend {
//	        return NewBackend()
//	    })
//	}
//
// Register panics if:
//   - factory is nil
//   - a backend with the same name is already registered
//
// A second package claiming a name fails at program start instead of
// replacing the first backend.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("debugger: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("debugger: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry. Tests use it to undo a
// Register. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a fresh backend by registered name.
//
// Example:
//
//	import _ "github.com/gogpu/gg-debugger/backends/raster"
//
//	backend, err := debugger.NewBackend("raster")
//	if err != nil {
//	    // the raster package was not linked in
//	}
//
// The error for an unknown name hints at a missing blank import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("debugger: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics on error. Use it where the
// backend package is imported by the same program.
//
// Example:
//
//	b := debugger.MustBackend("raster")
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the names of all registered backends in alphabetical
// order, so listings are stable between runs.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
