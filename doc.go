// Package debugger records, replays and serializes 2D drawing commands.
//
// Every drawing call issued against a Canvas can be captured as a typed
// Command. A Command can be executed again against any Canvas, encoded to a
// JSON-compatible value and decoded back, and described as a list of
// human-readable strings for inspection.
//
// # Architecture
//
// The package follows a command pattern:
//
//   - Recorder: a Canvas that captures every call as a Command
//   - Recording: an ordered list of Commands with replay and a JSON stream form
//   - Canvas: the drawing target commands execute against
//   - Backend: a Canvas with a lifecycle, created by name from a registry
//
// # Wire Format
//
// Each command encodes to an object with a "command" field naming its kind
// plus kind-specific fields. Paint attributes equal to their defaults are
// omitted, so a default paint encodes as {}. Binary payloads (images,
// flattened effects, typefaces) are emitted only when binaries are enabled,
// either globally with SetSendBinaries or per call with WithBinaries;
// otherwise a {"description": ...} placeholder is written and the payload
// does not survive decoding.
//
// # Basic Usage
//
//	rec := debugger.NewRecorder(800, 600)
//	p := paint.New()
//	p.Color = paint.Red
//	rec.DrawRect(geom.XYWH(10, 10, 100, 50), p)
//	r := rec.Finish()
//
//	var buf bytes.Buffer
//	_ = r.EncodeJSON(&buf, debugger.WithBinaries(true))
//
//	decoded, _ := debugger.DecodeRecording(&buf)
//	backend := debugger.MustBackend("raster")
//	_ = decoded.Render(backend)
//
// # Error Handling
//
// Malformed input (missing fields, unknown command names, undecodable
// images) makes DecodeCommand return an error wrapping ErrMalformed or
// ErrUnknownCommand; DecodeRecording logs and skips such commands. Region
// clips (ErrUnsupported) and unknown names in closed enumerations
// (ErrInvariant) abort DecodeRecording.
package debugger
