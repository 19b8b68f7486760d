package message

import (
	"fmt"

	"github.com/railmod/cbusgw/internal/cbus"
)

// SystemCommand is any zero-payload opcode: acknowledgements (ACK/NAK),
// bus state (HLT/BON/ARST), track control (TOF/TON/ESTOP and the
// request forms) and the parameterless queries (RSTAT, QNN, RQNP, RQMN).
type SystemCommand struct {
	OpCode cbus.Code
}

// CommandStationError is the ERR failure report from a command station
// rejecting a DCC session request. Address echoes the loco address the
// rejected request named.
type CommandStationError struct {
	Address uint16
	Code    uint8
}

// ConfigurationError is the CMDERR failure report from a node rejecting
// a configuration request.
type ConfigurationError struct {
	NodeNumber uint16
	Code       uint8
}

// Generic covers every registered opcode without a dedicated variant
// (debug, extended opcodes, raw DCC packet requests, CV writes, fast
// clock, bulk data events). Payload shape is still enforced by
// FromFrame; the data bytes are carried opaque.
type Generic struct {
	OpCode cbus.Code
	Data   []byte
}

var systemCommandOps = []cbus.Code{
	cbus.ACK, cbus.NAK, cbus.HLT, cbus.BON, cbus.TOF, cbus.TON,
	cbus.ESTOP, cbus.ARST, cbus.RTOF, cbus.RTON, cbus.RESTP,
	cbus.RSTAT, cbus.QNN, cbus.RQNP, cbus.RQMN,
}

func init() {
	for _, op := range systemCommandOps {
		op := op
		decoders[op] = func(data []byte) (Message, error) {
			return SystemCommand{OpCode: op}, nil
		}
	}
	decoders[cbus.ERR] = func(data []byte) (Message, error) {
		return CommandStationError{Address: u16(data[0:2]), Code: data[2]}, nil
	}
	decoders[cbus.CMDERR] = func(data []byte) (Message, error) {
		return ConfigurationError{NodeNumber: u16(data[0:2]), Code: data[2]}, nil
	}
}

func decodeGeneric(op cbus.Code, data []byte) (Message, error) {
	return Generic{OpCode: op, Data: cloneData(data)}, nil
}

// NewSystemCommand validates the opcode against the zero-payload family.
func NewSystemCommand(op cbus.Code) (SystemCommand, error) {
	for _, c := range systemCommandOps {
		if c == op {
			return SystemCommand{OpCode: op}, nil
		}
	}
	return SystemCommand{}, fmt.Errorf("%w: %s", ErrOpCode, op)
}

// NewGeneric validates the data byte count against the registry.
func NewGeneric(op cbus.Code, data []byte) (Generic, error) {
	e, ok := cbus.Lookup(op)
	if !ok {
		return Generic{}, fmt.Errorf("%w: 0x%02X", cbus.ErrUnknownOpCode, uint8(op))
	}
	if len(data) != e.DataBytes {
		return Generic{}, fmt.Errorf("%w: %s carries %d data bytes, got %d",
			cbus.ErrPayloadLength, e.Name, e.DataBytes, len(data))
	}
	return Generic{OpCode: op, Data: cloneData(data)}, nil
}

func (m SystemCommand) Op() cbus.Code { return m.OpCode }

func (m SystemCommand) appendData(dst []byte) []byte { return dst }

func (m CommandStationError) Op() cbus.Code { return cbus.ERR }

func (m CommandStationError) appendData(dst []byte) []byte {
	return append(putU16(dst, m.Address), m.Code)
}

func (m ConfigurationError) Op() cbus.Code { return cbus.CMDERR }

func (m ConfigurationError) appendData(dst []byte) []byte {
	return append(putU16(dst, m.NodeNumber), m.Code)
}

func (m Generic) Op() cbus.Code { return m.OpCode }

func (m Generic) appendData(dst []byte) []byte {
	return append(dst, m.Data...)
}
