package flatten

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Flattenable is an effect object with a registered type name and a
// binary form.
type Flattenable interface {
	// TypeName returns the name the object's factory is registered under.
	TypeName() string

	// Flatten writes the object's fields.
	Flatten(w *WriteBuffer)
}

// Factory rebuilds an object from its flattened fields. It returns nil
// when the buffer does not describe a valid object.
type Factory func(r *ReadBuffer) Flattenable

var (
	// ErrUnknownType is returned by Unflatten for unregistered names.
	ErrUnknownType = errors.New("flatten: unknown type")

	// ErrInvalidBuffer is returned by Unflatten when the factory rejects the
	// payload or leaves bytes unread.
	ErrInvalidBuffer = errors.New("flatten: invalid buffer")
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers factory under name. It is meant to be called from
// init in the package defining the effect:
//
//	func init() {
//	    flatten.Register("BlurMaskFilter", readBlurMaskFilter)
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("flatten: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("flatten: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a factory. It is used by tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Flatten returns the binary form of f.
func Flatten(f Flattenable) []byte {
	var w WriteBuffer
	f.Flatten(&w)
	return w.Bytes()
}

// Unflatten rebuilds the object registered under name from data.
// The buffer must be consumed exactly.
func Unflatten(name string, data []byte) (Flattenable, error) {
	factory, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, name)
	}
	r := NewReadBuffer(data)
	obj := factory(r)
	if obj == nil || !r.IsValid() || r.Remaining() != 0 {
		return nil, fmt.Errorf("%w for %q (%d of %d bytes read)", ErrInvalidBuffer, name, r.off, len(data))
	}
	return obj, nil
}
