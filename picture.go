package debugger

import (
	"github.com/gogpu/gg-debugger/geom"
)

// Picture is a recorded sequence of commands with a cull rectangle. It is
// shared by reference between the commands that draw it.
type Picture struct {
	Bounds   geom.Rect
	Commands []Command
}

// NewPicture returns a picture over cmds. The slice is copied; the
// commands themselves are shared.
func NewPicture(bounds geom.Rect, cmds []Command) *Picture {
	return &Picture{Bounds: bounds, Commands: append([]Command(nil), cmds...)}
}

// Playback executes the visible commands of the picture against c.
func (pic *Picture) Playback(c Canvas) {
	for _, cmd := range pic.Commands {
		if cmd.Visible() {
			cmd.Execute(c)
		}
	}
}

func encodePicture(pic *Picture, cfg *encodeConfig) map[string]any {
	return map[string]any{
		keyBounds:   EncodeRect(pic.Bounds),
		keyCommands: encodeCommands(pic.Commands, cfg),
	}
}

func (d *decoder) picture(key string) *Picture {
	obj := d.object(key)
	if d.err != nil {
		return nil
	}
	sd := d.sub(obj)
	defer d.join(sd)

	bounds := sd.rect(keyBounds)
	raw := sd.list(keyCommands)
	if sd.err != nil {
		return nil
	}
	cmds, err := decodeCommands(raw)
	if err != nil {
		sd.fail(err)
		return nil
	}
	return &Picture{Bounds: bounds, Commands: cmds}
}
