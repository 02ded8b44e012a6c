package debugger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBackend(t *testing.T) {
	const name = "test-mock"
	Register(name, func() Backend { return &mockBackend{} })
	t.Cleanup(func() { Unregister(name) })

	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false, want true", name)
	}
	assert.Contains(t, Backends(), name)

	b, err := NewBackend(name)
	require.NoError(t, err)
	if _, ok := b.(*mockBackend); !ok {
		t.Errorf("NewBackend(%q) = %T, want *mockBackend", name, b)
	}

	// Each call returns a fresh instance.
	if MustBackend(name) == b {
		t.Error("MustBackend() returned a shared instance")
	}
}

func TestRegisterPanics(t *testing.T) {
	const name = "test-dup"
	Register(name, func() Backend { return &mockBackend{} })
	t.Cleanup(func() { Unregister(name) })

	assert.Panics(t, func() { Register(name, func() Backend { return &mockBackend{} }) })
	assert.Panics(t, func() { Register("test-nil", nil) })
	assert.False(t, IsRegistered("test-nil"))
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("no-such-backend")
	if err == nil || !strings.Contains(err.Error(), "no-such-backend") {
		t.Errorf("NewBackend() error = %v, want unknown backend", err)
	}
	assert.Panics(t, func() { MustBackend("no-such-backend") })
}

func TestBackendsSorted(t *testing.T) {
	for _, name := range []string{"test-b", "test-a", "test-c"} {
		Register(name, func() Backend { return &mockBackend{} })
		t.Cleanup(func() { Unregister(name) })
	}

	var got []string
	for _, name := range Backends() {
		if strings.HasPrefix(name, "test-") {
			got = append(got, name)
		}
	}
	assert.Equal(t, []string{"test-a", "test-b", "test-c"}, got)
}

func TestUnregisterUnknown(t *testing.T) {
	Unregister("never-registered")
	assert.False(t, IsRegistered("never-registered"))
}
