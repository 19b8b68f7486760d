package message

import (
	"fmt"

	"github.com/railmod/cbusgw/internal/cbus"
)

// MaxSpeed is the DCC speed ceiling; the direction bit shares the byte.
const MaxSpeed = 0x7F

// SessionRequest asks the command station for an engine session:
// RLOC by address, GLOC by address plus steal/share flags.
type SessionRequest struct {
	OpCode  cbus.Code
	Address uint16
	Flags   uint8 // GLOC only
}

// SessionControl carries a bare session handle: KLOC releases it, QLOC
// queries it, DKEEP keeps it alive.
type SessionControl struct {
	OpCode  cbus.Code
	Session uint8
}

// SpeedDir sets engine speed and direction for a session (DSPD).
type SpeedDir struct {
	Session uint8
	Speed   uint8 // 0-127
	Forward bool
}

// EngineFunction switches one decoder function on (DFNON) or off
// (DFNOF).
type EngineFunction struct {
	OpCode   cbus.Code
	Session  uint8
	Function uint8
}

// FunctionGroup sets a DCC-format function byte for a range (DFUN).
type FunctionGroup struct {
	Session uint8
	Range   uint8
	Value   uint8
}

// EngineReport is the command station's session grant/report (PLOC).
type EngineReport struct {
	Session   uint8
	Address   uint16
	Speed     uint8
	Forward   bool
	Functions [3]uint8
}

// CommandStationStatus is the STAT status report.
type CommandStationStatus struct {
	NodeNumber uint16
	CSNumber   uint8
	Flags      CommandStationFlags
	RevMajor   uint8
	RevMinor   uint8
	Build      uint8
}

func init() {
	decoders[cbus.RLOC] = func(data []byte) (Message, error) {
		return SessionRequest{OpCode: cbus.RLOC, Address: u16(data[0:2])}, nil
	}
	decoders[cbus.GLOC] = func(data []byte) (Message, error) {
		return SessionRequest{OpCode: cbus.GLOC, Address: u16(data[0:2]), Flags: data[2]}, nil
	}
	for _, op := range []cbus.Code{cbus.KLOC, cbus.QLOC, cbus.DKEEP} {
		op := op
		decoders[op] = func(data []byte) (Message, error) {
			return SessionControl{OpCode: op, Session: data[0]}, nil
		}
	}
	decoders[cbus.DSPD] = func(data []byte) (Message, error) {
		return SpeedDir{Session: data[0], Speed: data[1] & MaxSpeed, Forward: data[1]&0x80 != 0}, nil
	}
	for _, op := range []cbus.Code{cbus.DFNON, cbus.DFNOF} {
		op := op
		decoders[op] = func(data []byte) (Message, error) {
			return EngineFunction{OpCode: op, Session: data[0], Function: data[1]}, nil
		}
	}
	decoders[cbus.DFUN] = func(data []byte) (Message, error) {
		return FunctionGroup{Session: data[0], Range: data[1], Value: data[2]}, nil
	}
	decoders[cbus.PLOC] = func(data []byte) (Message, error) {
		return EngineReport{
			Session:   data[0],
			Address:   u16(data[1:3]),
			Speed:     data[3] & MaxSpeed,
			Forward:   data[3]&0x80 != 0,
			Functions: [3]uint8{data[4], data[5], data[6]},
		}, nil
	}
	decoders[cbus.STAT] = func(data []byte) (Message, error) {
		return CommandStationStatus{
			NodeNumber: u16(data[0:2]),
			CSNumber:   data[2],
			Flags:      CommandStationFlags(data[3]),
			RevMajor:   data[4],
			RevMinor:   data[5],
			Build:      data[6],
		}, nil
	}
}

// NewSpeedDir range-checks the 7-bit speed.
func NewSpeedDir(session, speed uint8, forward bool) (SpeedDir, error) {
	if speed > MaxSpeed {
		return SpeedDir{}, fmt.Errorf("%w: speed %d", cbus.ErrFieldRange, speed)
	}
	return SpeedDir{Session: session, Speed: speed, Forward: forward}, nil
}

// NewEngineReport range-checks the 7-bit speed of a PLOC report.
func NewEngineReport(session uint8, address uint16, speed uint8, forward bool, fns [3]uint8) (EngineReport, error) {
	if speed > MaxSpeed {
		return EngineReport{}, fmt.Errorf("%w: speed %d", cbus.ErrFieldRange, speed)
	}
	return EngineReport{Session: session, Address: address, Speed: speed, Forward: forward, Functions: fns}, nil
}

func (m SessionRequest) Op() cbus.Code { return m.OpCode }

func (m SessionRequest) appendData(dst []byte) []byte {
	dst = putU16(dst, m.Address)
	if m.OpCode == cbus.GLOC {
		dst = append(dst, m.Flags)
	}
	return dst
}

func (m SessionControl) Op() cbus.Code { return m.OpCode }

func (m SessionControl) appendData(dst []byte) []byte {
	return append(dst, m.Session)
}

func (m SpeedDir) Op() cbus.Code { return cbus.DSPD }

func (m SpeedDir) appendData(dst []byte) []byte {
	return append(dst, m.Session, speedDirByte(m.Speed, m.Forward))
}

func (m EngineFunction) Op() cbus.Code { return m.OpCode }

func (m EngineFunction) appendData(dst []byte) []byte {
	return append(dst, m.Session, m.Function)
}

func (m FunctionGroup) Op() cbus.Code { return cbus.DFUN }

func (m FunctionGroup) appendData(dst []byte) []byte {
	return append(dst, m.Session, m.Range, m.Value)
}

func (m EngineReport) Op() cbus.Code { return cbus.PLOC }

func (m EngineReport) appendData(dst []byte) []byte {
	dst = append(dst, m.Session)
	dst = putU16(dst, m.Address)
	dst = append(dst, speedDirByte(m.Speed, m.Forward))
	return append(dst, m.Functions[0], m.Functions[1], m.Functions[2])
}

func (m CommandStationStatus) Op() cbus.Code { return cbus.STAT }

func (m CommandStationStatus) appendData(dst []byte) []byte {
	dst = putU16(dst, m.NodeNumber)
	return append(dst, m.CSNumber, uint8(m.Flags), m.RevMajor, m.RevMinor, m.Build)
}

func speedDirByte(speed uint8, forward bool) uint8 {
	b := speed & MaxSpeed
	if forward {
		b |= 0x80
	}
	return b
}
