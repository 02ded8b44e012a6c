package debugger

import "errors"

var (
	// ErrUnknownCommand is returned when a command name has no factory.
	ErrUnknownCommand = errors.New("debugger: unknown command")

	// ErrMalformed is returned when a required field is missing, has the
	// wrong shape, or its payload cannot be loaded.
	ErrMalformed = errors.New("debugger: malformed command")

	// ErrUnsupported is returned for command kinds that cannot be decoded
	// at all. Stream decoding aborts on it.
	ErrUnsupported = errors.New("debugger: unsupported command")

	// ErrInvariant is returned for an unrecognized name in a closed
	// enumeration (fill type, clip op, blur style, ...). Stream decoding
	// aborts on it.
	ErrInvariant = errors.New("debugger: invalid enumeration value")

	// ErrEncode is returned when a recording cannot be written.
	ErrEncode = errors.New("debugger: encode failed")
)

// fatal reports whether err must abort a stream decode rather than skip
// the command.
func fatal(err error) bool {
	return errors.Is(err, ErrUnsupported) || errors.Is(err, ErrInvariant)
}
