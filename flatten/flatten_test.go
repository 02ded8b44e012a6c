package flatten

import (
	"errors"
	"testing"
)

type testEffect struct {
	radius float64
	label  string
	inner  Flattenable
}

func (e *testEffect) TypeName() string { return "testEffect" }

func (e *testEffect) Flatten(w *WriteBuffer) {
	w.WriteFloat(e.radius)
	w.WriteString(e.label)
	w.WriteFlattenable(e.inner)
}

func readTestEffect(r *ReadBuffer) Flattenable {
	e := &testEffect{
		radius: r.ReadFloat(),
		label:  r.ReadString(),
		inner:  r.ReadFlattenable(),
	}
	if !r.Validate(e.radius >= 0) {
		return nil
	}
	return e
}

func registerTestEffect(t *testing.T) {
	t.Helper()
	Register("testEffect", readTestEffect)
	t.Cleanup(func() { Unregister("testEffect") })
}

func TestUnflattenRoundTrip(t *testing.T) {
	registerTestEffect(t)

	in := &testEffect{radius: 2.5, label: "outer", inner: &testEffect{radius: 1, label: "inner"}}
	data := Flatten(in)

	obj, err := Unflatten("testEffect", data)
	if err != nil {
		t.Fatalf("Unflatten() error = %v", err)
	}
	out := obj.(*testEffect)
	if out.radius != 2.5 || out.label != "outer" {
		t.Errorf("Unflatten() = %+v, want radius 2.5 label outer", out)
	}
	inner, ok := out.inner.(*testEffect)
	if !ok || inner.label != "inner" || inner.inner != nil {
		t.Errorf("inner = %+v, want label inner with no child", out.inner)
	}
}

func TestUnflattenErrors(t *testing.T) {
	registerTestEffect(t)
	valid := Flatten(&testEffect{radius: 1, label: "x"})

	tests := []struct {
		name string
		typ  string
		data []byte
		want error
	}{
		{"unknown name", "NoSuchEffect", valid, ErrUnknownType},
		{"truncated", "testEffect", valid[:len(valid)-2], ErrInvalidBuffer},
		{"trailing bytes", "testEffect", append(append([]byte(nil), valid...), 0, 0, 0, 0), ErrInvalidBuffer},
		{"rejected value", "testEffect", Flatten(&testEffect{radius: -1}), ErrInvalidBuffer},
		{"empty", "testEffect", nil, ErrInvalidBuffer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := Unflatten(tt.typ, tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Unflatten() error = %v, want %v", err, tt.want)
			}
			if obj != nil {
				t.Errorf("Unflatten() = %v, want nil", obj)
			}
		})
	}
}

func TestReadBufferStaysFailed(t *testing.T) {
	r := NewReadBuffer([]byte{1, 0})
	if got := r.ReadUint32(); got != 0 {
		t.Errorf("ReadUint32() = %d, want 0", got)
	}
	if r.IsValid() {
		t.Error("IsValid() = true after short read, want false")
	}
	r.Validate(true)
	if r.IsValid() {
		t.Error("Validate(true) revived a failed buffer")
	}
}

func TestReadBoolRejectsGarbage(t *testing.T) {
	var w WriteBuffer
	w.WriteUint32(7)
	r := NewReadBuffer(w.Bytes())
	r.ReadBool()
	if r.IsValid() {
		t.Error("ReadBool(7) left buffer valid")
	}
}

func TestRegisterPanics(t *testing.T) {
	registerTestEffect(t)

	t.Run("duplicate", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Register() duplicate did not panic")
			}
		}()
		Register("testEffect", readTestEffect)
	})
	t.Run("nil factory", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Register(nil) did not panic")
			}
		}()
		Register("nilEffect", nil)
	})
}

func TestFloatPrecision(t *testing.T) {
	tests := []float64{0.1, 0.3, -1e-7, 1.0 / 3, 123456.789}
	for _, want := range tests {
		var w WriteBuffer
		w.WriteFloat(want)
		r := NewReadBuffer(w.Bytes())
		if got := r.ReadFloat(); got != want || !r.IsValid() {
			t.Errorf("ReadFloat() = %v, want %v", got, want)
		}
		if r.Remaining() != 0 {
			t.Errorf("Remaining() = %d after ReadFloat, want 0", r.Remaining())
		}
	}
}

func TestReadFloatsRejectsLongCount(t *testing.T) {
	var w WriteBuffer
	w.WriteUint32(3)
	w.WriteFloat(1)
	w.WriteFloat(2)
	r := NewReadBuffer(w.Bytes())
	if got := r.ReadFloats(); got != nil || r.IsValid() {
		t.Errorf("ReadFloats() = %v, valid %v, want nil and invalid", got, r.IsValid())
	}
}
