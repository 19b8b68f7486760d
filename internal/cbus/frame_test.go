package cbus

import (
	"errors"
	"testing"
)

func TestFrameBinaryRoundTrip(t *testing.T) {
	h := Header{Maj: MajNormal, Min: MinLow, CANID: 5}
	in := []byte{byte(ACON), 0x00, 0x01, 0x00, 0x02}
	f, err := Decode(h.ID(), in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Header != h {
		t.Fatalf("header: got %v want %v", f.Header, h)
	}
	id, data := f.Encode()
	if id != h.ID() {
		t.Fatalf("id: got %#04x want %#04x", id, h.ID())
	}
	if len(data) != len(in) {
		t.Fatalf("payload length: got %d want %d", len(data), len(in))
	}
	for i := range in {
		if data[i] != in[i] {
			t.Fatalf("payload byte %d: got %#02x want %#02x", i, data[i], in[i])
		}
	}
}

func TestDecodeCopiesPayload(t *testing.T) {
	in := []byte{byte(ACK)}
	f, err := Decode(0, in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	in[0] = 0xFF
	if f.Data[0] != byte(ACK) {
		t.Fatal("frame shares the caller's payload buffer")
	}
}

func TestDecodeRejectsOversizedPayload(t *testing.T) {
	_, err := Decode(0, make([]byte, MaxDataLen+1))
	if !errors.Is(err, ErrPayloadLength) {
		t.Fatalf("expected ErrPayloadLength, got %v", err)
	}
}

func TestDecodeRejectsUnknownOpcode(t *testing.T) {
	_, err := Decode(0, []byte{0x1C})
	if !errors.Is(err, ErrUnknownOpCode) {
		t.Fatalf("expected ErrUnknownOpCode, got %v", err)
	}
}

func TestOpCodeOnEmptyFrame(t *testing.T) {
	f := Frame{Header: Header{Maj: MajNormal}, RTR: true, Data: []byte{}}
	if _, ok := f.OpCode(); ok {
		t.Fatal("RTR frame should not report an opcode")
	}
}
