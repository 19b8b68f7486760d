package message

import (
	"bytes"
	"fmt"

	"github.com/railmod/cbusgw/internal/cbus"
)

// NodeCommand is any configuration request that carries a bare node
// number: SNN, RQNN, NNREL, NNACK, the learn-mode switches, the event
// table reads and the WRACK write handshake among them.
type NodeCommand struct {
	OpCode     cbus.Code
	NodeNumber uint16
}

// NodeVariableRequest asks a node to read back one node variable (NVRD).
type NodeVariableRequest struct {
	NodeNumber uint16
	Index      uint8
}

// NodeVariable writes (NVSET) or reports (NVANS) one node variable.
type NodeVariable struct {
	OpCode     cbus.Code
	NodeNumber uint16
	Index      uint8
	Value      uint8
}

// EventVariableRequest asks for an event variable by stored-event index
// (REVAL).
type EventVariableRequest struct {
	NodeNumber    uint16
	EventIndex    uint8
	VariableIndex uint8
}

// EventVariable is the NEVAL event-variable readback.
type EventVariable struct {
	NodeNumber    uint16
	EventIndex    uint8
	VariableIndex uint8
	Value         uint8
}

// ParameterRequest asks for one node parameter by index (RQNPN).
type ParameterRequest struct {
	NodeNumber uint16
	Index      uint8
}

// Parameter is the PARAN parameter readback.
type Parameter struct {
	NodeNumber uint16
	Index      uint8
	Value      uint8
}

// NodeParameters is the PARAMS setup-mode parameter block.
type NodeParameters struct {
	Params [7]uint8
}

// ModuleName is the NAME response: up to seven ASCII bytes, zero padded
// on the wire.
type ModuleName struct {
	Name string
}

// StoredEventCount is the NUMEV response.
type StoredEventCount struct {
	NodeNumber uint16
	Count      uint8
}

// EventSpaceLeft is the EVNLF response.
type EventSpaceLeft struct {
	NodeNumber uint16
	Space      uint8
}

// StoredEvent is one ENRSP stored-event readback row.
type StoredEvent struct {
	NodeNumber  uint16
	EventNode   uint16
	EventNumber uint16
	Index       uint8
}

// NodeStatus is the PNN answer to a node query.
type NodeStatus struct {
	NodeNumber     uint16
	ManufacturerID uint8
	ModuleID       uint8
	Flags          NodeFlags
}

var nodeCommandOps = []cbus.Code{
	cbus.SNN, cbus.RQNN, cbus.NNREL, cbus.NNACK, cbus.NNLRN, cbus.NNULN,
	cbus.NNCLR, cbus.NNEVN, cbus.NERD, cbus.RQEVN, cbus.WRACK, cbus.BOOTM,
	cbus.ENUM, cbus.RQDAT, cbus.RQDDS,
}

func init() {
	for _, op := range nodeCommandOps {
		op := op
		decoders[op] = func(data []byte) (Message, error) {
			return NodeCommand{OpCode: op, NodeNumber: u16(data[0:2])}, nil
		}
	}
	decoders[cbus.NVRD] = func(data []byte) (Message, error) {
		return NodeVariableRequest{NodeNumber: u16(data[0:2]), Index: data[2]}, nil
	}
	for _, op := range []cbus.Code{cbus.NVSET, cbus.NVANS} {
		op := op
		decoders[op] = func(data []byte) (Message, error) {
			return NodeVariable{OpCode: op, NodeNumber: u16(data[0:2]), Index: data[2], Value: data[3]}, nil
		}
	}
	decoders[cbus.REVAL] = func(data []byte) (Message, error) {
		return EventVariableRequest{NodeNumber: u16(data[0:2]), EventIndex: data[2], VariableIndex: data[3]}, nil
	}
	decoders[cbus.NEVAL] = func(data []byte) (Message, error) {
		return EventVariable{NodeNumber: u16(data[0:2]), EventIndex: data[2], VariableIndex: data[3], Value: data[4]}, nil
	}
	decoders[cbus.RQNPN] = func(data []byte) (Message, error) {
		return ParameterRequest{NodeNumber: u16(data[0:2]), Index: data[2]}, nil
	}
	decoders[cbus.PARAN] = func(data []byte) (Message, error) {
		return Parameter{NodeNumber: u16(data[0:2]), Index: data[2], Value: data[3]}, nil
	}
	decoders[cbus.PARAMS] = func(data []byte) (Message, error) {
		var m NodeParameters
		copy(m.Params[:], data)
		return m, nil
	}
	decoders[cbus.NAME] = func(data []byte) (Message, error) {
		return ModuleName{Name: string(bytes.TrimRight(data, "\x00"))}, nil
	}
	decoders[cbus.NUMEV] = func(data []byte) (Message, error) {
		return StoredEventCount{NodeNumber: u16(data[0:2]), Count: data[2]}, nil
	}
	decoders[cbus.EVNLF] = func(data []byte) (Message, error) {
		return EventSpaceLeft{NodeNumber: u16(data[0:2]), Space: data[2]}, nil
	}
	decoders[cbus.ENRSP] = func(data []byte) (Message, error) {
		return StoredEvent{
			NodeNumber:  u16(data[0:2]),
			EventNode:   u16(data[2:4]),
			EventNumber: u16(data[4:6]),
			Index:       data[6],
		}, nil
	}
	decoders[cbus.PNN] = func(data []byte) (Message, error) {
		return NodeStatus{
			NodeNumber:     u16(data[0:2]),
			ManufacturerID: data[2],
			ModuleID:       data[3],
			Flags:          NodeFlags(data[4]),
		}, nil
	}
}

// NewNodeCommand validates the opcode against the bare-node-number
// family.
func NewNodeCommand(op cbus.Code, node uint16) (NodeCommand, error) {
	for _, c := range nodeCommandOps {
		if c == op {
			return NodeCommand{OpCode: op, NodeNumber: node}, nil
		}
	}
	return NodeCommand{}, fmt.Errorf("%w: %s", ErrOpCode, op)
}

// NewModuleName validates the seven-byte ASCII limit of NAME.
func NewModuleName(name string) (ModuleName, error) {
	if len(name) > 7 {
		return ModuleName{}, fmt.Errorf("%w: module name %q exceeds 7 bytes", cbus.ErrFieldRange, name)
	}
	for i := 0; i < len(name); i++ {
		if name[i] == 0 || name[i] > 0x7F {
			return ModuleName{}, fmt.Errorf("%w: module name %q is not ASCII", cbus.ErrFieldRange, name)
		}
	}
	return ModuleName{Name: name}, nil
}

func (m NodeCommand) Op() cbus.Code { return m.OpCode }

func (m NodeCommand) appendData(dst []byte) []byte {
	return putU16(dst, m.NodeNumber)
}

func (m NodeVariableRequest) Op() cbus.Code { return cbus.NVRD }

func (m NodeVariableRequest) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.Index)
}

func (m NodeVariable) Op() cbus.Code { return m.OpCode }

func (m NodeVariable) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.Index, m.Value)
}

func (m EventVariableRequest) Op() cbus.Code { return cbus.REVAL }

func (m EventVariableRequest) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.EventIndex, m.VariableIndex)
}

func (m EventVariable) Op() cbus.Code { return cbus.NEVAL }

func (m EventVariable) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.EventIndex, m.VariableIndex, m.Value)
}

func (m ParameterRequest) Op() cbus.Code { return cbus.RQNPN }

func (m ParameterRequest) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.Index)
}

func (m Parameter) Op() cbus.Code { return cbus.PARAN }

func (m Parameter) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.Index, m.Value)
}

func (m NodeParameters) Op() cbus.Code { return cbus.PARAMS }

func (m NodeParameters) appendData(dst []byte) []byte {
	return append(dst, m.Params[:]...)
}

func (m ModuleName) Op() cbus.Code { return cbus.NAME }

func (m ModuleName) appendData(dst []byte) []byte {
	var name [7]byte
	copy(name[:], m.Name)
	return append(dst, name[:]...)
}

func (m StoredEventCount) Op() cbus.Code { return cbus.NUMEV }

func (m StoredEventCount) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.Count)
}

func (m EventSpaceLeft) Op() cbus.Code { return cbus.EVNLF }

func (m EventSpaceLeft) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.Space)
}

func (m StoredEvent) Op() cbus.Code { return cbus.ENRSP }

func (m StoredEvent) appendData(dst []byte) []byte {
	dst = putU16(dst, m.NodeNumber)
	dst = putU16(dst, m.EventNode)
	dst = putU16(dst, m.EventNumber)
	return append(dst, m.Index)
}

func (m NodeStatus) Op() cbus.Code { return cbus.PNN }

func (m NodeStatus) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.ManufacturerID, m.ModuleID, uint8(m.Flags))
}
