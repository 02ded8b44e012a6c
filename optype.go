package debugger

// OpType identifies the kind of a command. The string form is the
// "command" field of the wire format.
type OpType uint8

const (
	OpBeginDrawPicture OpType = iota
	OpClipPath
	OpClipRegion
	OpClipRect
	OpClipRRect
	OpConcat
	OpDrawBitmap
	OpDrawBitmapNine
	OpDrawBitmapRect
	OpDrawClear
	OpDrawDRRect
	OpDrawImage
	OpDrawImageRect
	OpDrawOval
	OpDrawPaint
	OpDrawPatch
	OpDrawPath
	OpDrawPoints
	OpDrawPosText
	OpDrawPosTextH
	OpDrawRect
	OpDrawRRect
	OpDrawText
	OpDrawTextBlob
	OpDrawTextOnPath
	OpDrawVertices
	OpEndDrawPicture
	OpRestore
	OpSave
	OpSaveLayer
	OpSetMatrix

	opCount
)

var opTypeNames = [...]string{
	OpBeginDrawPicture: "BeginDrawPicture",
	OpClipPath:         "ClipPath",
	OpClipRegion:       "ClipRegion",
	OpClipRect:         "ClipRect",
	OpClipRRect:        "ClipRRect",
	OpConcat:           "Concat",
	OpDrawBitmap:       "DrawBitmap",
	OpDrawBitmapNine:   "DrawBitmapNine",
	OpDrawBitmapRect:   "DrawBitmapRect",
	OpDrawClear:        "DrawClear",
	OpDrawDRRect:       "DrawDRRect",
	OpDrawImage:        "DrawImage",
	OpDrawImageRect:    "DrawImageRect",
	OpDrawOval:         "DrawOval",
	OpDrawPaint:        "DrawPaint",
	OpDrawPatch:        "DrawPatch",
	OpDrawPath:         "DrawPath",
	OpDrawPoints:       "DrawPoints",
	OpDrawPosText:      "DrawPosText",
	OpDrawPosTextH:     "DrawPosTextH",
	OpDrawRect:         "DrawRect",
	OpDrawRRect:        "DrawRRect",
	OpDrawText:         "DrawText",
	OpDrawTextBlob:     "DrawTextBlob",
	OpDrawTextOnPath:   "DrawTextOnPath",
	OpDrawVertices:     "DrawVertices",
	OpEndDrawPicture:   "EndDrawPicture",
	OpRestore:          "Restore",
	OpSave:             "Save",
	OpSaveLayer:        "SaveLayer",
	OpSetMatrix:        "SetMatrix",
}

// String returns the wire name of the op.
func (o OpType) String() string {
	if int(o) < len(opTypeNames) {
		return opTypeNames[o]
	}
	return "Unknown"
}

// OpTypes returns every op kind in declaration order.
func OpTypes() []OpType {
	ops := make([]OpType, opCount)
	for i := range ops {
		ops[i] = OpType(i)
	}
	return ops
}
