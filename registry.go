package debugger

import (
	"fmt"
	"sync"
)

// decodeFunc rebuilds a command from its wire fields. It records failures
// in d and returns nil.
type decodeFunc func(d *decoder) Command

type factory struct {
	op     OpType
	decode decodeFunc
}

// factoryTable lists the decode entry point of every command kind. Picture
// decoding calls back into lookupFactory, so the table must not be a
// package-level variable.
func factoryTable() []factory {
	return []factory{
		{OpBeginDrawPicture, decodeBeginDrawPicture},
		{OpClipPath, decodeClipPath},
		{OpClipRegion, decodeClipRegion},
		{OpClipRect, decodeClipRect},
		{OpClipRRect, decodeClipRRect},
		{OpConcat, decodeConcat},
		{OpDrawBitmap, decodeDrawBitmap},
		{OpDrawBitmapNine, decodeDrawBitmapNine},
		{OpDrawBitmapRect, decodeDrawBitmapRect},
		{OpDrawClear, decodeDrawClear},
		{OpDrawDRRect, decodeDrawDRRect},
		{OpDrawImage, decodeDrawImage},
		{OpDrawImageRect, decodeDrawImageRect},
		{OpDrawOval, decodeDrawOval},
		{OpDrawPaint, decodeDrawPaint},
		{OpDrawPatch, decodeDrawPatch},
		{OpDrawPath, decodeDrawPath},
		{OpDrawPoints, decodeDrawPoints},
		{OpDrawPosText, decodeDrawPosText},
		{OpDrawPosTextH, decodeDrawPosTextH},
		{OpDrawRect, decodeDrawRect},
		{OpDrawRRect, decodeDrawRRect},
		{OpDrawText, decodeDrawText},
		{OpDrawTextBlob, decodeDrawTextBlob},
		{OpDrawTextOnPath, decodeDrawTextOnPath},
		{OpDrawVertices, decodeDrawVertices},
		{OpEndDrawPicture, decodeEndDrawPicture},
		{OpRestore, decodeRestore},
		{OpSave, decodeSave},
		{OpSaveLayer, decodeSaveLayer},
		{OpSetMatrix, decodeSetMatrix},
	}
}

var (
	factoryOnce   sync.Once
	factoryByName map[string]decodeFunc
)

func lookupFactory(name string) (decodeFunc, bool) {
	factoryOnce.Do(func() {
		table := factoryTable()
		factoryByName = make(map[string]decodeFunc, len(table))
		for _, f := range table {
			factoryByName[f.op.String()] = f.decode
		}
	})
	fn, ok := factoryByName[name]
	return fn, ok
}

// DecodeCommand rebuilds a command from its wire form. Failures are
// logged and returned; the error wraps ErrUnknownCommand, ErrMalformed,
// ErrUnsupported or ErrInvariant.
func DecodeCommand(obj map[string]any) (Command, error) {
	cmd, err := decodeCommand(obj)
	if err != nil {
		Logger().Warn("debugger: command not decoded", "command", obj[keyCommand], "err", err)
		return nil, err
	}
	return cmd, nil
}

func decodeCommand(obj map[string]any) (Command, error) {
	d := newDecoder(obj)
	name := d.str(keyCommand)
	if d.err != nil {
		return nil, d.err
	}
	decode, ok := lookupFactory(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	hidden := d.has(keyVisible) && !d.flag(keyVisible)
	cmd := decode(d)
	if d.err != nil {
		return nil, fmt.Errorf("%s: %w", name, d.err)
	}
	if hidden {
		cmd.SetVisible(false)
	}
	return cmd, nil
}

// decodeCommands decodes a command list. Malformed and unknown entries
// are logged and skipped; unsupported kinds and invariant violations
// abort the whole list.
func decodeCommands(raw []any) ([]Command, error) {
	cmds := make([]Command, 0, len(raw))
	for i, v := range raw {
		obj, ok := v.(map[string]any)
		if !ok {
			Logger().Warn("debugger: command skipped", "index", i, "err", fmt.Errorf("%w: %T is not an object", ErrMalformed, v))
			continue
		}
		cmd, err := decodeCommand(obj)
		if err != nil {
			if fatal(err) {
				return nil, fmt.Errorf("command %d: %w", i, err)
			}
			Logger().Warn("debugger: command skipped", "index", i, "command", obj[keyCommand], "err", err)
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func encodeCommands(cmds []Command, cfg *encodeConfig) []any {
	out := make([]any, len(cmds))
	for i, cmd := range cmds {
		out[i] = encodeCommand(cmd, cfg)
	}
	return out
}
