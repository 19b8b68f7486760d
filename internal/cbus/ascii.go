package cbus

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// GridConnect is the textual frame layout used when the bus is bridged
// over a serial/USB/TCP link:
//
//	':' 'S' SIDH SIDL 'N'|'R' data-hex-pairs ';'
//
// The identifier field is the two PIC register bytes as four hex digits
// (the 11-bit identifier left-aligned by five bits). 'N' marks a normal
// frame, 'R' an RTR frame. No whitespace is permitted anywhere.
// Extended 29-bit lines (':X...') are not part of CBUS and are rejected.

// DecodeASCII parses one GridConnect line into a Frame. Hex digits are
// accepted in either case; EncodeASCII always emits upper case.
func DecodeASCII(line string) (Frame, error) {
	if len(line) < 8 {
		return Frame{}, fmt.Errorf("%w: line too short", ErrMalformedASCII)
	}
	if line[0] != ':' || line[len(line)-1] != ';' {
		return Frame{}, fmt.Errorf("%w: missing ':' or ';'", ErrMalformedASCII)
	}
	if line[1] != 'S' {
		return Frame{}, fmt.Errorf("%w: frame type %q", ErrMalformedASCII, line[1])
	}
	reg, err := hex.DecodeString(line[2:6])
	if err != nil {
		return Frame{}, fmt.Errorf("%w: identifier field %q", ErrMalformedASCII, line[2:6])
	}
	id := uint16(reg[0])<<8 | uint16(reg[1])

	marker := line[6]
	body := line[7 : len(line)-1]
	if len(body)%2 != 0 {
		return Frame{}, fmt.Errorf("%w: odd hex digit count", ErrMalformedASCII)
	}
	data, err := hex.DecodeString(body)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: payload %q", ErrMalformedASCII, body)
	}

	switch marker {
	case 'N':
		return Decode(id>>5, data)
	case 'R':
		if len(data) != 0 {
			return Frame{}, fmt.Errorf("%w: RTR frame with payload", ErrMalformedASCII)
		}
		return Frame{Header: DecodeID(id >> 5), RTR: true, Data: []byte{}}, nil
	}
	return Frame{}, fmt.Errorf("%w: frame marker %q", ErrMalformedASCII, marker)
}

// EncodeASCII renders the frame as a GridConnect line, byte-for-byte
// round-trippable through DecodeASCII.
func (f Frame) EncodeASCII() string {
	var b strings.Builder
	fmt.Fprintf(&b, ":S%02X%02X", f.Header.SIDH(), f.Header.SIDL())
	if f.RTR {
		b.WriteString("R;")
		return b.String()
	}
	b.WriteByte('N')
	for _, v := range f.Data {
		fmt.Fprintf(&b, "%02X", v)
	}
	b.WriteByte(';')
	return b.String()
}
