package message

import (
	"fmt"

	"github.com/railmod/cbusgw/internal/cbus"
)

// Event is a long (node-addressed) accessory event: the ACON/ACOF
// on/off pairs, the ARON/AROF response pairs and the AREQ status
// request, each with zero to three trailing data bytes declared by the
// opcode.
type Event struct {
	OpCode      cbus.Code
	NodeNumber  uint16
	EventNumber uint16
	Data        []byte
}

// ShortEvent is a device-addressed accessory event: ASON/ASOF,
// ARSON/ARSOF and the ASRQ status request.
type ShortEvent struct {
	OpCode       cbus.Code
	NodeNumber   uint16
	DeviceNumber uint16
	Data         []byte
}

var longEventOps = []cbus.Code{
	cbus.ACON, cbus.ACOF, cbus.AREQ, cbus.ARON, cbus.AROF,
	cbus.ACON1, cbus.ACOF1, cbus.ARON1, cbus.AROF1,
	cbus.ACON2, cbus.ACOF2, cbus.ARON2, cbus.AROF2,
	cbus.ACON3, cbus.ACOF3, cbus.ARON3, cbus.AROF3,
}

var shortEventOps = []cbus.Code{
	cbus.ASON, cbus.ASOF, cbus.ASRQ, cbus.ARSON, cbus.ARSOF,
	cbus.ASON1, cbus.ASOF1, cbus.ARSON1, cbus.ARSOF1,
	cbus.ASON2, cbus.ASOF2, cbus.ARSON2, cbus.ARSOF2,
	cbus.ASON3, cbus.ASOF3, cbus.ARSON3, cbus.ARSOF3,
}

func init() {
	for _, op := range longEventOps {
		op := op
		decoders[op] = func(data []byte) (Message, error) {
			return Event{
				OpCode:      op,
				NodeNumber:  u16(data[0:2]),
				EventNumber: u16(data[2:4]),
				Data:        cloneData(data[4:]),
			}, nil
		}
	}
	for _, op := range shortEventOps {
		op := op
		decoders[op] = func(data []byte) (Message, error) {
			return ShortEvent{
				OpCode:       op,
				NodeNumber:   u16(data[0:2]),
				DeviceNumber: u16(data[2:4]),
				Data:         cloneData(data[4:]),
			}, nil
		}
	}
}

// NewEvent validates the opcode family and that the data byte count
// matches the opcode's declared shape.
func NewEvent(op cbus.Code, node, event uint16, data []byte) (Event, error) {
	if err := checkEventOp(op, longEventOps, data); err != nil {
		return Event{}, err
	}
	return Event{OpCode: op, NodeNumber: node, EventNumber: event, Data: cloneData(data)}, nil
}

// NewShortEvent is the device-addressed counterpart of NewEvent.
func NewShortEvent(op cbus.Code, node, device uint16, data []byte) (ShortEvent, error) {
	if err := checkEventOp(op, shortEventOps, data); err != nil {
		return ShortEvent{}, err
	}
	return ShortEvent{OpCode: op, NodeNumber: node, DeviceNumber: device, Data: cloneData(data)}, nil
}

func checkEventOp(op cbus.Code, family []cbus.Code, data []byte) error {
	for _, c := range family {
		if c != op {
			continue
		}
		e, _ := cbus.Lookup(op)
		if want := e.DataBytes - 4; len(data) != want {
			return fmt.Errorf("%w: %s carries %d event data bytes, got %d",
				cbus.ErrPayloadLength, e.Name, want, len(data))
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrOpCode, op)
}

func (m Event) Op() cbus.Code { return m.OpCode }

func (m Event) appendData(dst []byte) []byte {
	dst = putU16(dst, m.NodeNumber)
	dst = putU16(dst, m.EventNumber)
	return append(dst, m.Data...)
}

func (m ShortEvent) Op() cbus.Code { return m.OpCode }

func (m ShortEvent) appendData(dst []byte) []byte {
	dst = putU16(dst, m.NodeNumber)
	dst = putU16(dst, m.DeviceNumber)
	return append(dst, m.Data...)
}
