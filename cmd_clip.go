package debugger

import (
	"fmt"

	"github.com/gogpu/gg-debugger/geom"
)

// ClipPathCommand intersects (or otherwise combines) the clip with a path.
type ClipPathCommand struct {
	command
	Path      *geom.Path
	Op        geom.RegionOp
	AntiAlias bool
}

// NewClipPath copies path into a new clip command.
func NewClipPath(path *geom.Path, op geom.RegionOp, antiAlias bool) *ClipPathCommand {
	return &ClipPathCommand{
		command: newCommand(OpClipPath,
			path.String(), describeOp(op), describeBool("AntiAlias: ", antiAlias)),
		Path:      path.Clone(),
		Op:        op,
		AntiAlias: antiAlias,
	}
}

// Execute implements Command.
func (cmd *ClipPathCommand) Execute(c Canvas) { c.ClipPath(cmd.Path, cmd.Op, cmd.AntiAlias) }

// Render implements Previewer.
func (cmd *ClipPathCommand) Render(c Canvas) bool {
	return renderPath(c, cmd.Path)
}

func (cmd *ClipPathCommand) encode(*encodeConfig) map[string]any {
	return map[string]any{
		keyPath:      EncodePath(cmd.Path),
		keyOp:        cmd.Op.String(),
		keyAntiAlias: cmd.AntiAlias,
	}
}

func decodeClipPath(d *decoder) Command {
	path := d.path(keyPath)
	op := d.regionOp(keyOp)
	aa := d.flag(keyAntiAlias)
	if d.err != nil {
		return nil
	}
	return NewClipPath(path, op, aa)
}

// ClipRegionCommand combines the clip with a device-space region.
// Regions have no wire form: the command encodes a placeholder and cannot
// be decoded.
type ClipRegionCommand struct {
	command
	Region geom.Region
	Op     geom.RegionOp
}

// NewClipRegion copies rgn into a new clip command.
func NewClipRegion(rgn geom.Region, op geom.RegionOp) *ClipRegionCommand {
	return &ClipRegionCommand{
		command: newCommand(OpClipRegion, rgn.String(), describeOp(op)),
		Region:  rgn.Clone(),
		Op:      op,
	}
}

// Execute implements Command.
func (cmd *ClipRegionCommand) Execute(c Canvas) { c.ClipRegion(cmd.Region, cmd.Op) }

func (cmd *ClipRegionCommand) encode(*encodeConfig) map[string]any {
	return map[string]any{
		keyRegion: EncodeRegion(cmd.Region),
		keyOp:     cmd.Op.String(),
	}
}

func decodeClipRegion(d *decoder) Command {
	d.fail(fmt.Errorf("%w: %s has no wire form", ErrUnsupported, OpClipRegion))
	return nil
}

// ClipRectCommand combines the clip with a rectangle.
type ClipRectCommand struct {
	command
	Rect      geom.Rect
	Op        geom.RegionOp
	AntiAlias bool
}

// NewClipRect returns a rectangle clip command.
func NewClipRect(r geom.Rect, op geom.RegionOp, antiAlias bool) *ClipRectCommand {
	return &ClipRectCommand{
		command: newCommand(OpClipRect,
			describeRect("", r), describeOp(op), describeBool("AntiAlias: ", antiAlias)),
		Rect:      r,
		Op:        op,
		AntiAlias: antiAlias,
	}
}

// Execute implements Command.
func (cmd *ClipRectCommand) Execute(c Canvas) { c.ClipRect(cmd.Rect, cmd.Op, cmd.AntiAlias) }

func (cmd *ClipRectCommand) encode(*encodeConfig) map[string]any {
	return map[string]any{
		keyCoords:    EncodeRect(cmd.Rect),
		keyOp:        cmd.Op.String(),
		keyAntiAlias: cmd.AntiAlias,
	}
}

func decodeClipRect(d *decoder) Command {
	r := d.rect(keyCoords)
	op := d.regionOp(keyOp)
	aa := d.flag(keyAntiAlias)
	if d.err != nil {
		return nil
	}
	return NewClipRect(r, op, aa)
}

// ClipRRectCommand combines the clip with a rounded rectangle.
type ClipRRectCommand struct {
	command
	RRect     geom.RRect
	Op        geom.RegionOp
	AntiAlias bool
}

// NewClipRRect returns a rounded-rectangle clip command.
func NewClipRRect(rr geom.RRect, op geom.RegionOp, antiAlias bool) *ClipRRectCommand {
	return &ClipRRectCommand{
		command: newCommand(OpClipRRect,
			rr.String(), describeOp(op), describeBool("AntiAlias: ", antiAlias)),
		RRect:     rr,
		Op:        op,
		AntiAlias: antiAlias,
	}
}

// Execute implements Command.
func (cmd *ClipRRectCommand) Execute(c Canvas) { c.ClipRRect(cmd.RRect, cmd.Op, cmd.AntiAlias) }

// Render implements Previewer.
func (cmd *ClipRRectCommand) Render(c Canvas) bool {
	return renderRRect(c, cmd.RRect)
}

func (cmd *ClipRRectCommand) encode(*encodeConfig) map[string]any {
	return map[string]any{
		keyCoords:    EncodeRRect(cmd.RRect),
		keyOp:        cmd.Op.String(),
		keyAntiAlias: cmd.AntiAlias,
	}
}

func decodeClipRRect(d *decoder) Command {
	rr := d.rrect(keyCoords)
	op := d.regionOp(keyOp)
	aa := d.flag(keyAntiAlias)
	if d.err != nil {
		return nil
	}
	return NewClipRRect(rr, op, aa)
}
