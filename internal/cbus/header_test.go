package cbus

import (
	"errors"
	"testing"
)

func TestHeaderIDRoundTrip(t *testing.T) {
	for maj := MajPri(0); maj <= 3; maj++ {
		for min := MinPri(0); min <= 3; min++ {
			for canID := 0; canID <= MaxCANID; canID++ {
				h := Header{Maj: maj, Min: min, CANID: uint8(canID)}
				if got := DecodeID(h.ID()); got != h {
					t.Fatalf("round trip mismatch: %v -> %#04x -> %v", h, h.ID(), got)
				}
			}
		}
	}
}

func TestHeaderRegisterBytes(t *testing.T) {
	h, err := NewHeader(MajHigh, MinLow, 33)
	if err != nil {
		t.Fatalf("new header: %v", err)
	}
	if h.ID() != 0x03A1 {
		t.Fatalf("id: got %#04x want 0x03A1", h.ID())
	}
	if h.SIDH() != 0x74 || h.SIDL() != 0x20 {
		t.Fatalf("registers: got %#02x %#02x want 0x74 0x20", h.SIDH(), h.SIDL())
	}
}

func TestNewHeaderRejectsOutOfRange(t *testing.T) {
	if _, err := NewHeader(MajNormal, MinNormal, MaxCANID+1); !errors.Is(err, ErrFieldRange) {
		t.Fatalf("expected ErrFieldRange for CAN ID 128, got %v", err)
	}
	if _, err := NewHeader(4, MinNormal, 1); !errors.Is(err, ErrFieldRange) {
		t.Fatalf("expected ErrFieldRange for major priority 4, got %v", err)
	}
	if _, err := NewHeader(MajNormal, 4, 1); !errors.Is(err, ErrFieldRange) {
		t.Fatalf("expected ErrFieldRange for minor priority 4, got %v", err)
	}
}
