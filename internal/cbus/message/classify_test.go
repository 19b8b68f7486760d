package message

import (
	"testing"

	"github.com/railmod/cbusgw/internal/cbus"
	"github.com/railmod/cbusgw/internal/cbus/cserr"
)

func TestClassifyCommandStationError(t *testing.T) {
	f, err := cbus.Decode(0, []byte{byte(cbus.ERR), 0x04, 0xD2, 0x01})
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	m, err := FromFrame(f)
	if err != nil {
		t.Fatalf("from frame: %v", err)
	}
	rep := Classify(m)
	if rep == nil {
		t.Fatal("ERR response classified to nil")
	}
	ce, ok := rep.(*cserr.Error)
	if !ok {
		t.Fatalf("classification type: %T", rep)
	}
	if ce.Kind != cserr.KindLocoStackFull || ce.Code != 1 || ce.Target != 0x04D2 {
		t.Fatalf("classification: %+v", ce)
	}
	if ce.Error() != "CS: Loco stack full." {
		t.Fatalf("message: %q", ce.Error())
	}
}

func TestClassifyConfigurationError(t *testing.T) {
	rep := Classify(ConfigurationError{NodeNumber: 300, Code: cserr.CodeNotInLearnMode})
	ce, ok := rep.(*cserr.Error)
	if !ok {
		t.Fatalf("classification type: %T", rep)
	}
	if ce.Kind != cserr.KindNotInLearnMode || ce.Target != 300 {
		t.Fatalf("classification: %+v", ce)
	}
}

func TestClassifyNonErrorMessages(t *testing.T) {
	msgs := []Message{
		SystemCommand{OpCode: cbus.ACK},
		Event{OpCode: cbus.ACON, NodeNumber: 1, EventNumber: 2},
		Generic{OpCode: cbus.FCLK, Data: make([]byte, 6)},
	}
	for _, m := range msgs {
		if rep := Classify(m); rep != nil {
			t.Fatalf("%T classified to %v", m, rep)
		}
	}
}
