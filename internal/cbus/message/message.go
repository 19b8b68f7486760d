package message

import (
	"errors"
	"fmt"

	"github.com/railmod/cbusgw/internal/cbus"
)

// ErrOpCode reports a constructor handed an opcode outside the
// variant's family.
var ErrOpCode = errors.New("message: opcode not valid for variant")

// Message is one decoded CBUS message. The set of implementations is
// closed; every variant is a value type defined in this package.
type Message interface {
	// Op is the operation code this message encodes to.
	Op() cbus.Code

	// appendData appends the payload bytes that follow the opcode.
	appendData(dst []byte) []byte
}

type decoder func(data []byte) (Message, error)

// decoders maps opcodes to variant decoders. Registered opcodes with no
// entry decode to Generic. The map is populated across the variant
// files at init and read-only afterwards.
var decoders = map[cbus.Code]decoder{}

// FromFrame dispatches on the frame's opcode via the registry,
// validates the payload length against the opcode's declared shape and
// decodes the matching variant. Length mismatches are an error, never
// truncated or zero-filled.
func FromFrame(f cbus.Frame) (Message, error) {
	op, ok := f.OpCode()
	if !ok {
		return nil, fmt.Errorf("%w: frame has no opcode byte", cbus.ErrPayloadLength)
	}
	e, ok := cbus.Lookup(op)
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X", cbus.ErrUnknownOpCode, uint8(op))
	}
	if got := len(f.Data) - 1; got != e.DataBytes {
		return nil, fmt.Errorf("%w: %s carries %d data bytes, got %d",
			cbus.ErrPayloadLength, e.Name, e.DataBytes, got)
	}
	dec, ok := decoders[op]
	if !ok {
		return decodeGeneric(op, f.Data[1:])
	}
	return dec(f.Data[1:])
}

// ToFrame encodes the message into a frame addressed with the given CAN
// ID. The header takes normal major priority and the registry's
// minor-priority hint for the opcode. A validly constructed message
// cannot fail to encode; only an out-of-range CAN ID can.
func ToFrame(m Message, canID uint8) (cbus.Frame, error) {
	e, ok := cbus.Lookup(m.Op())
	if !ok {
		return cbus.Frame{}, fmt.Errorf("%w: 0x%02X", cbus.ErrUnknownOpCode, uint8(m.Op()))
	}
	h, err := cbus.NewHeader(cbus.MajNormal, e.MinPri, canID)
	if err != nil {
		return cbus.Frame{}, err
	}
	data := m.appendData([]byte{byte(m.Op())})
	return cbus.Frame{Header: h, Data: data}, nil
}

func putU16(dst []byte, v uint16) []byte {
	return append(dst, byte(v>>8), byte(v))
}

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func cloneData(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	d := make([]byte, len(b))
	copy(d, b)
	return d
}
