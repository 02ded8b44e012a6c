package debugger

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// recordingVersion is the version of the stream container.
const recordingVersion = 1

const (
	keyVersion = "version"
	keyWidth   = "width"
	keyHeight  = "height"
)

// Recording is an ordered list of commands with the size of the canvas
// they were captured from.
type Recording struct {
	width, height int
	commands      []Command
}

// NewRecording returns a recording over cmds. The slice is copied; the
// commands themselves are shared.
func NewRecording(width, height int, cmds []Command) *Recording {
	return &Recording{
		width:    width,
		height:   height,
		commands: append([]Command(nil), cmds...),
	}
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Len returns the number of commands.
func (r *Recording) Len() int { return len(r.commands) }

// At returns the command at index i.
func (r *Recording) At(i int) Command { return r.commands[i] }

// Commands returns a copy of the command list.
func (r *Recording) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

// Playback executes every visible command against c.
func (r *Recording) Playback(c Canvas) {
	r.PlaybackTo(c, len(r.commands)-1)
}

// PlaybackTo executes the visible commands with index <= n against c.
// It is used to step through a recording.
func (r *Recording) PlaybackTo(c Canvas, n int) {
	n = min(n, len(r.commands)-1)
	if n < 0 {
		return
	}
	for _, cmd := range r.commands[:n+1] {
		if cmd.Visible() {
			cmd.Execute(c)
		}
	}
}

// Render plays the recording into a backend sized to the recording.
func (r *Recording) Render(b Backend) error {
	if err := b.Begin(r.width, r.height); err != nil {
		return err
	}
	r.Playback(b)
	return b.End()
}

// Encode returns the wire form of the recording:
// {"version": 1, "width": w, "height": h, "commands": [...]}.
func (r *Recording) Encode(opts ...EncodeOption) map[string]any {
	cfg := newEncodeConfig(opts)
	return map[string]any{
		keyVersion:  recordingVersion,
		keyWidth:    r.width,
		keyHeight:   r.height,
		keyCommands: encodeCommands(r.commands, cfg),
	}
}

// EncodeJSON writes the wire form of the recording as JSON.
func (r *Recording) EncodeJSON(w io.Writer, opts ...EncodeOption) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Encode(opts...)); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// DecodeRecording reads a JSON recording. Malformed and unknown commands
// are logged and skipped; region clips and invalid enumeration names
// abort the decode.
func DecodeRecording(r io.Reader) (*Recording, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return DecodeRecordingValue(obj)
}

// DecodeRecordingValue rebuilds a recording from an already parsed wire
// value, such as one read from YAML.
func DecodeRecordingValue(obj map[string]any) (*Recording, error) {
	d := newDecoder(obj)
	if v := d.optNumber(keyVersion, recordingVersion); d.err == nil && v != recordingVersion {
		return nil, fmt.Errorf("%w: unsupported recording version %v", ErrMalformed, v)
	}
	width := d.optNumber(keyWidth, 0)
	height := d.optNumber(keyHeight, 0)
	raw := d.list(keyCommands)
	if d.err != nil {
		return nil, d.err
	}
	cmds, err := decodeCommands(raw)
	if err != nil {
		return nil, err
	}
	return &Recording{width: int(width), height: int(height), commands: cmds}, nil
}
