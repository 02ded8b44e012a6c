package debugger

// Command is one recorded drawing or state operation.
//
// Every command can be replayed with Execute, serialized with
// EncodeCommand and described with Info. The payload of a command is owned
// by it and must not be modified after construction: Info is computed once
// from the payload by the constructor.
//
// The set of commands is closed; the unexported encode method keeps
// implementations inside this package.
type Command interface {
	// OpType returns the kind of the command. It never changes.
	OpType() OpType

	// Visible reports whether Recording.Playback executes the command.
	Visible() bool

	// SetVisible enables or disables the command without removing it from
	// its recording.
	SetVisible(visible bool)

	// Info returns human-readable parameter lines for debug display.
	Info() []string

	// Execute replays the command against c.
	Execute(c Canvas)

	// encode returns the kind-specific wire fields.
	encode(cfg *encodeConfig) map[string]any
}

// Previewer is implemented by commands that can draw an isolated preview
// of their geometry, scaled to fill the canvas.
type Previewer interface {
	Command

	// Render draws the preview and reports whether anything was drawn.
	// The stored payload is not modified.
	Render(c Canvas) bool
}

// command holds the state shared by every command kind.
type command struct {
	op     OpType
	hidden bool
	info   []string
}

func newCommand(op OpType, info ...string) command {
	return command{op: op, info: info}
}

// OpType implements Command.
func (c *command) OpType() OpType { return c.op }

// Visible implements Command.
func (c *command) Visible() bool { return !c.hidden }

// SetVisible implements Command.
func (c *command) SetVisible(visible bool) { c.hidden = !visible }

// Info implements Command.
func (c *command) Info() []string {
	out := make([]string, len(c.info))
	copy(out, c.info)
	return out
}

// EncodeCommand returns the wire form of cmd: an object with a "command"
// field naming its kind plus the kind-specific fields. A hidden command
// also carries "visible": false.
func EncodeCommand(cmd Command, opts ...EncodeOption) map[string]any {
	return encodeCommand(cmd, newEncodeConfig(opts))
}

func encodeCommand(cmd Command, cfg *encodeConfig) map[string]any {
	out := cmd.encode(cfg)
	if out == nil {
		out = make(map[string]any)
	}
	out[keyCommand] = cmd.OpType().String()
	if !cmd.Visible() {
		out[keyVisible] = false
	}
	return out
}

// noFields is the encode result of commands without a payload.
func noFields() map[string]any {
	return make(map[string]any)
}
