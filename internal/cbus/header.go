package cbus

import "fmt"

// MajPri is the major priority of a CAN frame, bits 10-9 of the
// arbitration identifier. Lower values win arbitration.
type MajPri uint8

const (
	MajEmergency MajPri = 0
	MajHigh      MajPri = 1
	MajNormal    MajPri = 2
)

// MinPri is the minor priority of a CAN frame, bits 8-7 of the
// arbitration identifier. Lower values win arbitration.
type MinPri uint8

const (
	MinHigh        MinPri = 0
	MinAboveNormal MinPri = 1
	MinNormal      MinPri = 2
	MinLow         MinPri = 3
)

// MaxCANID is the largest CBUS CAN identifier; the field is 7 bits wide.
const MaxCANID = 0x7F

// Header is the decoded priority/identifier part of the 11-bit CAN
// arbitration identifier: maj(2) | min(2) | canid(7).
type Header struct {
	Maj   MajPri
	Min   MinPri
	CANID uint8
}

// NewHeader validates each field against its declared bit width.
// Out-of-range values are an error, never masked.
func NewHeader(maj MajPri, min MinPri, canID uint8) (Header, error) {
	if maj > 3 {
		return Header{}, fmt.Errorf("%w: major priority %d", ErrFieldRange, maj)
	}
	if min > 3 {
		return Header{}, fmt.Errorf("%w: minor priority %d", ErrFieldRange, min)
	}
	if canID > MaxCANID {
		return Header{}, fmt.Errorf("%w: CAN ID %d", ErrFieldRange, canID)
	}
	return Header{Maj: maj, Min: min, CANID: canID}, nil
}

// DecodeID unpacks an 11-bit arbitration identifier. Total over the
// legal identifier range; hardware-level garbage is the transport's
// problem, not this layer's.
func DecodeID(id uint16) Header {
	return Header{
		Maj:   MajPri(id >> 9 & 0x03),
		Min:   MinPri(id >> 7 & 0x03),
		CANID: uint8(id & MaxCANID),
	}
}

// ID packs the header back into the 11-bit arbitration identifier.
// DecodeID(h.ID()) == h for every valid header.
func (h Header) ID() uint16 {
	return uint16(h.Maj)<<9 | uint16(h.Min)<<7 | uint16(h.CANID)
}

// SIDH is the upper identifier register byte as written to PIC-style CAN
// controllers: the 11-bit identifier left-aligned in 16 bits.
func (h Header) SIDH() uint8 { return uint8(h.ID() >> 3) }

// SIDL is the lower identifier register byte; only its top three bits
// carry identifier data.
func (h Header) SIDL() uint8 { return uint8(h.ID() << 5) }

func (h Header) String() string {
	return fmt.Sprintf("<%d><%d><%d>", h.Maj, h.Min, h.CANID)
}
