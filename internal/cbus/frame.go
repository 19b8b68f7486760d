package cbus

import (
	"fmt"
	"strings"
)

// MaxDataLen is the CAN payload limit: opcode plus up to seven data bytes.
const MaxDataLen = 8

// Frame is one complete on-wire unit: an arbitration header plus 0-8
// payload bytes, the first of which is the opcode. RTR frames carry no
// payload; they are used for CAN ID self-enumeration.
type Frame struct {
	Header Header
	RTR    bool
	Data   []byte
}

// Decode validates and wraps a completed binary frame as delivered by
// the transport. The payload is copied; the frame owns its bytes.
func Decode(id uint16, data []byte) (Frame, error) {
	if len(data) > MaxDataLen {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrPayloadLength, len(data))
	}
	if len(data) > 0 && !Registered(Code(data[0])) {
		return Frame{}, fmt.Errorf("%w: 0x%02X", ErrUnknownOpCode, data[0])
	}
	d := make([]byte, len(data))
	copy(d, data)
	return Frame{Header: DecodeID(id), Data: d}, nil
}

// Encode is the inverse of Decode; total for a well-formed frame.
func (f Frame) Encode() (uint16, []byte) {
	d := make([]byte, len(f.Data))
	copy(d, f.Data)
	return f.Header.ID(), d
}

// OpCode returns the first payload byte. ok is false for RTR/empty
// frames, which carry no opcode at all.
func (f Frame) OpCode() (Code, bool) {
	if len(f.Data) == 0 {
		return 0, false
	}
	return Code(f.Data[0]), true
}

// Equal compares header, RTR flag and payload bytes.
func (f Frame) Equal(o Frame) bool {
	if f.Header != o.Header || f.RTR != o.RTR || len(f.Data) != len(o.Data) {
		return false
	}
	for i := range f.Data {
		if f.Data[i] != o.Data[i] {
			return false
		}
	}
	return true
}

func (f Frame) String() string {
	var b strings.Builder
	b.WriteString(f.Header.String())
	if f.RTR {
		b.WriteString("<RTR>")
		return b.String()
	}
	if op, ok := f.OpCode(); ok {
		fmt.Fprintf(&b, "<%s>", op)
		for _, v := range f.Data[1:] {
			fmt.Fprintf(&b, "<%X>", v)
		}
	}
	return b.String()
}
