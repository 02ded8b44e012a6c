// Package flatten serializes named effect objects to an opaque binary form
// and back.
//
// An effect implements Flattenable, writing its fields into a WriteBuffer.
// Reading goes through a name-keyed registry of factories, each of which
// consumes a ReadBuffer. The ReadBuffer is validating: any short read or
// out-of-range value marks it failed, and Unflatten rejects a buffer that
// failed or has unread trailing bytes, so a malformed payload never yields a
// partially initialized object.
package flatten

import (
	"encoding/binary"
	"math"
)

// WriteBuffer accumulates the little-endian encoding of a flattened object.
type WriteBuffer struct {
	buf []byte
}

// Bytes returns the written bytes. The slice aliases the buffer.
func (w *WriteBuffer) Bytes() []byte { return w.buf }

// Len returns the number of written bytes.
func (w *WriteBuffer) Len() int { return len(w.buf) }

// WriteUint32 appends v.
func (w *WriteBuffer) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteInt32 appends v.
func (w *WriteBuffer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteBool appends v as a 32-bit word.
func (w *WriteBuffer) WriteBool(v bool) {
	if v {
		w.WriteUint32(1)
	} else {
		w.WriteUint32(0)
	}
}

// WriteUint64 appends v.
func (w *WriteBuffer) WriteUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// WriteFloat appends v as a float64.
func (w *WriteBuffer) WriteFloat(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteFloats appends a count followed by the values.
func (w *WriteBuffer) WriteFloats(vs []float64) {
	w.WriteUint32(uint32(len(vs)))
	for _, v := range vs {
		w.WriteFloat(v)
	}
}

// WriteString appends a length-prefixed string.
func (w *WriteBuffer) WriteString(s string) {
	w.WriteUint32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteFlattenable appends a nested object as its name followed by its
// length-prefixed payload. A nil object is written as an empty name.
func (w *WriteBuffer) WriteFlattenable(f Flattenable) {
	if f == nil {
		w.WriteString("")
		return
	}
	w.WriteString(f.TypeName())
	var inner WriteBuffer
	f.Flatten(&inner)
	w.WriteUint32(uint32(inner.Len()))
	w.buf = append(w.buf, inner.buf...)
}

// ReadBuffer decodes what a WriteBuffer produced. Once a read fails every
// later read returns the zero value and IsValid reports false.
type ReadBuffer struct {
	data   []byte
	off    int
	failed bool
}

// NewReadBuffer creates a reader over data. The reader does not copy data.
func NewReadBuffer(data []byte) *ReadBuffer {
	return &ReadBuffer{data: data}
}

// IsValid reports whether no read has failed.
func (r *ReadBuffer) IsValid() bool { return !r.failed }

// Remaining returns the number of unread bytes.
func (r *ReadBuffer) Remaining() int { return len(r.data) - r.off }

// Validate marks the buffer failed when ok is false and returns ok.
// Factories use it for semantic checks (enum ranges, counts).
func (r *ReadBuffer) Validate(ok bool) bool {
	if !ok {
		r.failed = true
	}
	return !r.failed
}

func (r *ReadBuffer) take(n int) []byte {
	if r.failed || n < 0 || r.Remaining() < n {
		r.failed = true
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

// ReadUint32 reads a 32-bit word.
func (r *ReadBuffer) ReadUint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadUint64 reads a 64-bit word.
func (r *ReadBuffer) ReadUint64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadInt32 reads a signed 32-bit word.
func (r *ReadBuffer) ReadInt32() int32 {
	return int32(r.ReadUint32())
}

// ReadBool reads a boolean. Values other than 0 and 1 fail the buffer.
func (r *ReadBuffer) ReadBool() bool {
	v := r.ReadUint32()
	r.Validate(v <= 1)
	return v == 1
}

// ReadFloat reads a float64. Non-finite values fail the buffer.
func (r *ReadBuffer) ReadFloat() float64 {
	v := math.Float64frombits(r.ReadUint64())
	if !r.Validate(!math.IsNaN(v) && !math.IsInf(v, 0)) {
		return 0
	}
	return v
}

// ReadFloats reads a count-prefixed float list.
func (r *ReadBuffer) ReadFloats() []float64 {
	n := r.ReadUint32()
	if !r.Validate(int(n) <= r.Remaining()/8) {
		return nil
	}
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = r.ReadFloat()
	}
	return vs
}

// ReadString reads a length-prefixed string.
func (r *ReadBuffer) ReadString() string {
	n := r.ReadUint32()
	return string(r.take(int(n)))
}

// ReadFlattenable reads a nested object written by WriteFlattenable.
// It returns nil for an empty name. An unknown name or an invalid payload
// fails the buffer.
func (r *ReadBuffer) ReadFlattenable() Flattenable {
	name := r.ReadString()
	if r.failed || name == "" {
		return nil
	}
	n := r.ReadUint32()
	payload := r.take(int(n))
	if r.failed {
		return nil
	}
	f, err := Unflatten(name, payload)
	if err != nil {
		r.failed = true
		return nil
	}
	return f
}
