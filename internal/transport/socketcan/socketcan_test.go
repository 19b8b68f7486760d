package socketcan

import (
	"bytes"
	"errors"
	"testing"

	"github.com/railmod/cbusgw/internal/cbus"
)

func TestMsgBinaryRoundTrip(t *testing.T) {
	in := Msg{ID: 0x5A4, Data: []byte{0x90, 0x00, 0x01, 0x00, 0x02}}
	raw, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(raw) != frameLen {
		t.Fatalf("frame length: %d", len(raw))
	}
	out, err := UnmarshalMsg(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != in.ID || out.RTR || !bytes.Equal(out.Data, in.Data) {
		t.Fatalf("round trip: got %+v want %+v", out, in)
	}
}

func TestMsgRTRFlag(t *testing.T) {
	raw, err := Msg{ID: 0x7F, RTR: true}.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := UnmarshalMsg(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.RTR || out.ID != 0x7F || len(out.Data) != 0 {
		t.Fatalf("rtr round trip: %+v", out)
	}
}

func TestUnmarshalMsgExtendedIdentifier(t *testing.T) {
	raw, err := Msg{ID: 0x123, Data: []byte{0x00}}.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	raw[3] |= 0x80 // set the EFF bit
	out, err := UnmarshalMsg(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != 0x123 {
		t.Fatalf("extended id masked wrong: %#x", out.ID)
	}
}

func TestUnmarshalMsgRejectsBadFrames(t *testing.T) {
	if _, err := UnmarshalMsg(make([]byte, frameLen-1)); !errors.Is(err, ErrShortFrame) {
		t.Fatalf("expected ErrShortFrame, got %v", err)
	}
	raw := make([]byte, frameLen)
	raw[4] = 9
	if _, err := UnmarshalMsg(raw); !errors.Is(err, ErrDataTooLong) {
		t.Fatalf("expected ErrDataTooLong, got %v", err)
	}
}

func TestMarshalBinaryRejectsLongData(t *testing.T) {
	if _, err := (Msg{Data: make([]byte, 9)}).MarshalBinary(); !errors.Is(err, ErrDataTooLong) {
		t.Fatalf("expected ErrDataTooLong, got %v", err)
	}
}

func TestFrameConversion(t *testing.T) {
	in, err := cbus.Decode(0x05A4, []byte{0x90, 0x00, 0x01, 0x00, 0x02})
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	msg := FromFrame(in)
	if msg.ID != 0x05A4 || msg.RTR {
		t.Fatalf("from frame: %+v", msg)
	}
	out, err := ToFrame(msg)
	if err != nil {
		t.Fatalf("to frame: %v", err)
	}
	if !out.Equal(in) {
		t.Fatalf("round trip: got %v want %v", out, in)
	}
}

func TestToFrameRTR(t *testing.T) {
	f, err := ToFrame(Msg{ID: 0x05A4, RTR: true})
	if err != nil {
		t.Fatalf("to frame: %v", err)
	}
	if !f.RTR || len(f.Data) != 0 {
		t.Fatalf("rtr frame: %+v", f)
	}
}

func TestToFrameRejectsUnknownOpcode(t *testing.T) {
	_, err := ToFrame(Msg{ID: 1, Data: []byte{0x1C}})
	if !errors.Is(err, cbus.ErrUnknownOpCode) {
		t.Fatalf("expected ErrUnknownOpCode, got %v", err)
	}
}
