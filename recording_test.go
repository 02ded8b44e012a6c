package debugger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

type mockBackend struct {
	mockCanvas
	begun, ended int
	beginErr     error
}

func (m *mockBackend) Begin(width, height int) error {
	m.begun++
	m.width, m.height = width, height
	return m.beginErr
}

func (m *mockBackend) End() error {
	m.ended++
	return nil
}

func sampleRecording() *Recording {
	rec := NewRecorder(200, 100)
	rec.Save()
	rec.ClipRect(geom.LTRB(0, 0, 100, 100), geom.OpIntersect, true)
	rec.DrawRect(geom.LTRB(10, 10, 50, 50), paint.New())
	rec.Restore()
	rec.DrawOval(geom.LTRB(0, 0, 20, 10), paint.New())
	return rec.Finish()
}

func TestRecordingPlayback(t *testing.T) {
	r := sampleRecording()
	c := newMockCanvas()
	r.Playback(c)
	assert.Equal(t, []string{"Save", "ClipRect", "DrawRect", "Restore", "DrawOval"}, c.names())
}

func TestRecordingPlaybackTo(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"negative", -1, []string{}},
		{"first", 0, []string{"Save"}},
		{"middle", 2, []string{"Save", "ClipRect", "DrawRect"}},
		{"past end", 99, []string{"Save", "ClipRect", "DrawRect", "Restore", "DrawOval"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newMockCanvas()
			sampleRecording().PlaybackTo(c, tt.n)
			if got := c.names(); strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("PlaybackTo(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestRecordingSkipsHidden(t *testing.T) {
	r := sampleRecording()
	r.At(2).SetVisible(false)

	c := newMockCanvas()
	r.Playback(c)
	assert.Equal(t, []string{"Save", "ClipRect", "Restore", "DrawOval"}, c.names())
}

func TestRecordingCommandsIsACopy(t *testing.T) {
	r := sampleRecording()
	cmds := r.Commands()
	cmds[0] = NewRestore()
	assert.Equal(t, OpSave, r.At(0).OpType())
	assert.Equal(t, 5, r.Len())
}

func TestRecordingRender(t *testing.T) {
	r := sampleRecording()
	b := &mockBackend{}
	require.NoError(t, r.Render(b))

	assert.Equal(t, 1, b.begun)
	assert.Equal(t, 1, b.ended)
	assert.Equal(t, 200, b.width)
	assert.Equal(t, 100, b.height)
	assert.Len(t, b.calls, 5)

	failing := &mockBackend{beginErr: errors.New("no device")}
	assert.Error(t, r.Render(failing))
	assert.Empty(t, failing.calls)
	assert.Zero(t, failing.ended)
}

func TestRecordingJSONRoundTrip(t *testing.T) {
	r := sampleRecording()
	r.At(4).SetVisible(false)

	var buf bytes.Buffer
	require.NoError(t, r.EncodeJSON(&buf, WithBinaries(true)))

	got, err := DecodeRecording(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, got.Width())
	assert.Equal(t, 100, got.Height())
	require.Equal(t, r.Len(), got.Len())
	for i := range r.Len() {
		assert.Equal(t, r.At(i).OpType(), got.At(i).OpType())
		assert.Equal(t, r.At(i).Info(), got.At(i).Info())
	}
	assert.False(t, got.At(4).Visible())
}

func TestDecodeRecordingErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"not json", `{`, ErrMalformed},
		{"no commands", `{"version":1}`, ErrMalformed},
		{"wrong version", `{"version":2,"commands":[]}`, ErrMalformed},
		{"region clip", `{"commands":[{"command":"ClipRegion","region":"<unimplemented>","op":"intersect"}]}`, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecording(strings.NewReader(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeRecording() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeRecordingSkipsBadCommands(t *testing.T) {
	in := `{"width":10,"height":20,"commands":[{"command":"Save"},{"command":"Bogus"},{"command":"Restore"}]}`
	r, err := DecodeRecording(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 10, r.Width())
	assert.Equal(t, 20, r.Height())
}
