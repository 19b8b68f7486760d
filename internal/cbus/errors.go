package cbus

import "errors"

var (
	// ErrPayloadLength reports a payload longer than a CAN frame allows,
	// or one whose length does not match the shape the opcode declares.
	ErrPayloadLength = errors.New("cbus: payload length mismatch")

	// ErrUnknownOpCode reports a first payload byte absent from the
	// opcode registry.
	ErrUnknownOpCode = errors.New("cbus: unknown opcode")

	// ErrMalformedASCII reports a GridConnect line that does not follow
	// the ':S<hhhh><N|R><hex...>;' layout.
	ErrMalformedASCII = errors.New("cbus: malformed gridconnect line")

	// ErrFieldRange reports a field value that does not fit its declared
	// bit width or protocol bound.
	ErrFieldRange = errors.New("cbus: field out of range")
)
