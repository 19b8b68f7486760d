// Package socketcan connects the CBUS codec to a Linux SocketCAN
// interface. The 16-byte can_frame codec is portable and testable; the
// raw AF_CAN socket is Linux-only, with a stub elsewhere.
package socketcan

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/railmod/cbusgw/internal/cbus"
)

// can_frame layout: 32-bit id+flags, DLC, 3 pad bytes, 8 data bytes.
const frameLen = 16

// Arbitration ID flag bits and masks, as in <linux/can.h>.
const (
	effFlag uint32 = 0x80000000
	rtrFlag uint32 = 0x40000000
	effMask uint32 = 0x1FFFFFFF
	sffMask uint32 = 0x7FF
)

var (
	ErrUnsupported = errors.New("socketcan: not supported on this platform")
	ErrShortFrame  = errors.New("socketcan: short can_frame")
	ErrDataTooLong = errors.New("socketcan: data length exceeds 8 bytes")
)

// Msg is one raw CAN message in host form.
type Msg struct {
	ID   uint32
	RTR  bool
	Data []byte
}

// MarshalBinary renders the struct can_frame byte layout.
func (m Msg) MarshalBinary() ([]byte, error) {
	if len(m.Data) > 8 {
		return nil, fmt.Errorf("%w: %d", ErrDataTooLong, len(m.Data))
	}
	raw := make([]byte, frameLen)
	id := m.ID & sffMask
	if m.RTR {
		id |= rtrFlag
	}
	binary.LittleEndian.PutUint32(raw[0:4], id)
	raw[4] = byte(len(m.Data))
	copy(raw[8:], m.Data)
	return raw, nil
}

// UnmarshalMsg decodes a struct can_frame read from the socket.
func UnmarshalMsg(raw []byte) (Msg, error) {
	if len(raw) < frameLen {
		return Msg{}, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(raw))
	}
	oid := binary.LittleEndian.Uint32(raw[0:4])
	m := Msg{RTR: oid&rtrFlag != 0}
	if oid&effFlag != 0 {
		m.ID = oid & effMask
	} else {
		m.ID = oid & sffMask
	}
	dlc := raw[4]
	if dlc > 8 {
		return Msg{}, fmt.Errorf("%w: DLC %d", ErrDataTooLong, dlc)
	}
	m.Data = append([]byte(nil), raw[8:8+dlc]...)
	return m, nil
}

// FromFrame converts a CBUS frame into a raw CAN message.
func FromFrame(f cbus.Frame) Msg {
	id, data := f.Encode()
	return Msg{ID: uint32(id), RTR: f.RTR, Data: data}
}

// ToFrame lifts a raw CAN message into a CBUS frame, rejecting unknown
// opcodes the same way the binary decoder does. CBUS uses standard
// 11-bit identifiers only.
func ToFrame(m Msg) (cbus.Frame, error) {
	if m.RTR {
		return cbus.Frame{Header: cbus.DecodeID(uint16(m.ID & sffMask)), RTR: true, Data: []byte{}}, nil
	}
	return cbus.Decode(uint16(m.ID&sffMask), m.Data)
}
