package debugger

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// --------------------------------------------------------------------------
// Save / Restore
// --------------------------------------------------------------------------

// SaveCommand pushes the canvas state.
type SaveCommand struct {
	command
}

// NewSave returns a save command.
func NewSave() *SaveCommand {
	return &SaveCommand{command: newCommand(OpSave)}
}

// Execute implements Command.
func (cmd *SaveCommand) Execute(c Canvas) { c.Save() }

func (cmd *SaveCommand) encode(*encodeConfig) map[string]any { return noFields() }

func decodeSave(*decoder) Command { return NewSave() }

// RestoreCommand pops the canvas state.
type RestoreCommand struct {
	command
}

// NewRestore returns a restore command.
func NewRestore() *RestoreCommand {
	return &RestoreCommand{command: newCommand(OpRestore, noParameters)}
}

// Execute implements Command.
func (cmd *RestoreCommand) Execute(c Canvas) { c.Restore() }

func (cmd *RestoreCommand) encode(*encodeConfig) map[string]any { return noFields() }

func decodeRestore(*decoder) Command { return NewRestore() }

// --------------------------------------------------------------------------
// SaveLayer
// --------------------------------------------------------------------------

// SaveLayerCommand pushes the canvas state and starts an offscreen layer.
type SaveLayerCommand struct {
	command
	Bounds   *geom.Rect
	Paint    *paint.Paint
	Backdrop paint.ImageFilter
	Flags    SaveLayerFlags
}

// NewSaveLayer copies rec into a new command.
func NewSaveLayer(rec SaveLayerRec) *SaveLayerCommand {
	cmd := &SaveLayerCommand{
		Bounds:   copyRect(rec.Bounds),
		Paint:    copyPaint(rec.Paint),
		Backdrop: rec.Backdrop,
		Flags:    rec.Flags,
	}
	var info []string
	if cmd.Bounds != nil {
		info = append(info, describeRect("Bounds: ", *cmd.Bounds))
	}
	if cmd.Paint != nil {
		info = append(info, describePaint(cmd.Paint))
	}
	if cmd.Backdrop != nil {
		info = append(info, "Backdrop: "+cmd.Backdrop.Describe())
	}
	info = append(info, "Flags: "+cmd.Flags.String())
	cmd.command = newCommand(OpSaveLayer, info...)
	return cmd
}

// Rec returns the save-layer arguments.
func (cmd *SaveLayerCommand) Rec() SaveLayerRec {
	return SaveLayerRec{Bounds: cmd.Bounds, Paint: cmd.Paint, Backdrop: cmd.Backdrop, Flags: cmd.Flags}
}

// Execute implements Command.
func (cmd *SaveLayerCommand) Execute(c Canvas) { c.SaveLayer(cmd.Rec()) }

// VizExecute replays the command as a plain save, for overdraw
// visualization where layers would hide the counted draws.
func (cmd *SaveLayerCommand) VizExecute(c Canvas) { c.Save() }

func (cmd *SaveLayerCommand) encode(cfg *encodeConfig) map[string]any {
	out := noFields()
	if cmd.Bounds != nil {
		out[keyBounds] = EncodeRect(*cmd.Bounds)
	}
	if cmd.Paint != nil {
		out[keyPaint] = encodePaint(cmd.Paint, cfg)
	}
	if cmd.Backdrop != nil {
		out[keyBackdrop] = encodeFlattenable(cmd.Backdrop, cfg)
	}
	if cmd.Flags != 0 {
		out[keyFlags] = int(cmd.Flags)
	}
	return out
}

func decodeSaveLayer(d *decoder) Command {
	rec := SaveLayerRec{
		Bounds: d.optRect(keyBounds),
		Paint:  d.optPaint(keyPaint),
	}
	if f := d.effect(keyBackdrop); f != nil {
		rec.Backdrop = asEffect[paint.ImageFilter](f, keyBackdrop)
	}
	if d.has(keyFlags) {
		rec.Flags = SaveLayerFlags(d.number(keyFlags))
	}
	if d.err != nil {
		return nil
	}
	return NewSaveLayer(rec)
}

func (f SaveLayerFlags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	if f&SaveLayerPreserveLCDText != 0 {
		names = append(names, "preserveLCDText")
	}
	if f&SaveLayerInitWithPrevious != 0 {
		names = append(names, "initWithPrevious")
	}
	if rest := f &^ (SaveLayerPreserveLCDText | SaveLayerInitWithPrevious); rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// --------------------------------------------------------------------------
// Matrix
// --------------------------------------------------------------------------

// SetMatrixCommand replaces the canvas matrix.
type SetMatrixCommand struct {
	command
	Matrix geom.Matrix

	user geom.Matrix
}

// NewSetMatrix returns a command setting the canvas matrix to m.
func NewSetMatrix(m geom.Matrix) *SetMatrixCommand {
	return &SetMatrixCommand{
		command: newCommand(OpSetMatrix, describeMatrix(m)),
		Matrix:  m,
		user:    geom.Identity(),
	}
}

// SetUserMatrix sets a viewer transform applied in front of the recorded
// matrix at execute time. It is not encoded.
func (cmd *SetMatrixCommand) SetUserMatrix(m geom.Matrix) { cmd.user = m }

// Execute implements Command.
func (cmd *SetMatrixCommand) Execute(c Canvas) {
	c.SetMatrix(cmd.user.Concat(cmd.Matrix))
}

func (cmd *SetMatrixCommand) encode(*encodeConfig) map[string]any {
	return map[string]any{keyMatrix: EncodeMatrix(cmd.Matrix)}
}

func decodeSetMatrix(d *decoder) Command {
	m := d.matrix(keyMatrix)
	if d.err != nil {
		return nil
	}
	return NewSetMatrix(m)
}

// ConcatCommand pre-multiplies the canvas matrix.
type ConcatCommand struct {
	command
	Matrix geom.Matrix
}

// NewConcat returns a command concatenating m onto the canvas matrix.
func NewConcat(m geom.Matrix) *ConcatCommand {
	return &ConcatCommand{command: newCommand(OpConcat, describeMatrix(m)), Matrix: m}
}

// Execute implements Command.
func (cmd *ConcatCommand) Execute(c Canvas) { c.Concat(cmd.Matrix) }

func (cmd *ConcatCommand) encode(*encodeConfig) map[string]any {
	return map[string]any{keyMatrix: EncodeMatrix(cmd.Matrix)}
}

func decodeConcat(d *decoder) Command {
	m := d.matrix(keyMatrix)
	if d.err != nil {
		return nil
	}
	return NewConcat(m)
}

// --------------------------------------------------------------------------
// Picture brackets
// --------------------------------------------------------------------------

// BeginDrawPictureCommand opens a nested picture. The picture's commands
// follow it in the recording; executing the bracket only sets up the
// matrix and layer they draw under.
type BeginDrawPictureCommand struct {
	command
	Picture *Picture
	Matrix  *geom.Matrix
	Paint   *paint.Paint
}

// NewBeginDrawPicture returns the opening bracket for drawing pic.
func NewBeginDrawPicture(pic *Picture, m *geom.Matrix, p *paint.Paint) *BeginDrawPictureCommand {
	cmd := &BeginDrawPictureCommand{Picture: pic, Matrix: copyMatrix(m), Paint: copyPaint(p)}
	info := []string{describeRect("Picture: ", pic.Bounds)}
	if cmd.Matrix != nil {
		info = append(info, describeMatrix(*cmd.Matrix))
	}
	if cmd.Paint != nil {
		info = append(info, describePaint(cmd.Paint))
	}
	cmd.command = newCommand(OpBeginDrawPicture, info...)
	return cmd
}

// Execute implements Command.
func (cmd *BeginDrawPictureCommand) Execute(c Canvas) {
	switch {
	case cmd.Paint != nil:
		bounds := cmd.Picture.Bounds
		if cmd.Matrix != nil {
			bounds = cmd.Matrix.MapRect(bounds)
		}
		c.SaveLayer(SaveLayerRec{Bounds: &bounds, Paint: cmd.Paint})
	case cmd.Matrix != nil:
		c.Save()
	}
	if cmd.Matrix != nil {
		c.Concat(*cmd.Matrix)
	}
}

// Restores reports whether the matching end bracket must restore.
func (cmd *BeginDrawPictureCommand) Restores() bool {
	return cmd.Matrix != nil || cmd.Paint != nil
}

func (cmd *BeginDrawPictureCommand) encode(cfg *encodeConfig) map[string]any {
	out := map[string]any{keyPicture: encodePicture(cmd.Picture, cfg)}
	if cmd.Matrix != nil {
		out[keyMatrix] = EncodeMatrix(*cmd.Matrix)
	}
	if cmd.Paint != nil {
		out[keyPaint] = encodePaint(cmd.Paint, cfg)
	}
	return out
}

func decodeBeginDrawPicture(d *decoder) Command {
	pic := d.picture(keyPicture)
	m := d.optMatrix(keyMatrix)
	p := d.optPaint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewBeginDrawPicture(pic, m, p)
}

// EndDrawPictureCommand closes a nested picture.
type EndDrawPictureCommand struct {
	command
	Restore bool
}

// NewEndDrawPicture returns the closing bracket. restore must match
// Restores of the opening bracket.
func NewEndDrawPicture(restore bool) *EndDrawPictureCommand {
	return &EndDrawPictureCommand{
		command: newCommand(OpEndDrawPicture, describeBool("Restore: ", restore)),
		Restore: restore,
	}
}

// Execute implements Command.
func (cmd *EndDrawPictureCommand) Execute(c Canvas) {
	if cmd.Restore {
		c.Restore()
	}
}

func (cmd *EndDrawPictureCommand) encode(*encodeConfig) map[string]any {
	return map[string]any{keyRestore: cmd.Restore}
}

func decodeEndDrawPicture(d *decoder) Command {
	restore := d.flag(keyRestore)
	if d.err != nil {
		return nil
	}
	return NewEndDrawPicture(restore)
}

// Payload copy helpers.

func copyRect(r *geom.Rect) *geom.Rect {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func copyMatrix(m *geom.Matrix) *geom.Matrix {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func copyPaint(p *paint.Paint) *paint.Paint {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func copyPoints(pts []geom.Point) []geom.Point {
	if pts == nil {
		return nil
	}
	return append([]geom.Point(nil), pts...)
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
