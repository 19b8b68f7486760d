// Package cserr is the closed taxonomy of failures a command station or
// node reports on the bus via the ERR and CMDERR opcodes. Classification
// is a pure table lookup: every known code maps to exactly one Kind, and
// unknown codes fall back to the generic kind of their table with the
// raw code preserved for diagnostics.
package cserr

import "fmt"

// Kind names one failure in the taxonomy.
type Kind int

const (
	// KindCommandStation is the fallback for ERR codes outside the table.
	KindCommandStation Kind = iota
	KindLocoStackFull
	KindLocoAddressTaken
	KindSessionNotPresent
	KindConsistEmpty
	KindLocoNotFound
	KindCanBus
	KindInvalidRequest
	KindSessionCancelled

	// KindConfig is the fallback for CMDERR codes outside the table.
	KindConfig
	KindCommandNotSupported
	KindNotInLearnMode
	KindNotInSetupMode
	KindTooManyEvents
	KindInvalidEventVariableIndex
	KindInvalidEvent
	KindInvalidParameterIndex
	KindInvalidNodeVariableIndex
	KindInvalidEventVariableValue
	KindInvalidNodeVariableValue
)

// ERR codes.
const (
	CodeLocoStackFull     uint8 = 1
	CodeLocoAddressTaken  uint8 = 2
	CodeSessionNotPresent uint8 = 3
	CodeConsistEmpty      uint8 = 4
	CodeLocoNotFound      uint8 = 5
	CodeCanBus            uint8 = 6
	CodeInvalidRequest    uint8 = 7
	CodeSessionCancelled  uint8 = 8
)

// CMDERR codes. 5 and 8 are unassigned in CBUS Spec 6c.
const (
	CodeCommandNotSupported       uint8 = 1
	CodeNotInLearnMode            uint8 = 2
	CodeNotInSetupMode            uint8 = 3
	CodeTooManyEvents             uint8 = 4
	CodeInvalidEventVariableIndex uint8 = 6
	CodeInvalidEvent              uint8 = 7
	CodeInvalidParameterIndex     uint8 = 9
	CodeInvalidNodeVariableIndex  uint8 = 10
	CodeInvalidEventVariableValue uint8 = 11
	CodeInvalidNodeVariableValue  uint8 = 12
)

var stationKinds = map[uint8]Kind{
	CodeLocoStackFull:     KindLocoStackFull,
	CodeLocoAddressTaken:  KindLocoAddressTaken,
	CodeSessionNotPresent: KindSessionNotPresent,
	CodeConsistEmpty:      KindConsistEmpty,
	CodeLocoNotFound:      KindLocoNotFound,
	CodeCanBus:            KindCanBus,
	CodeInvalidRequest:    KindInvalidRequest,
	CodeSessionCancelled:  KindSessionCancelled,
}

var configKinds = map[uint8]Kind{
	CodeCommandNotSupported:       KindCommandNotSupported,
	CodeNotInLearnMode:            KindNotInLearnMode,
	CodeNotInSetupMode:            KindNotInSetupMode,
	CodeTooManyEvents:             KindTooManyEvents,
	CodeInvalidEventVariableIndex: KindInvalidEventVariableIndex,
	CodeInvalidEvent:              KindInvalidEvent,
	CodeInvalidParameterIndex:     KindInvalidParameterIndex,
	CodeInvalidNodeVariableIndex:  KindInvalidNodeVariableIndex,
	CodeInvalidEventVariableValue: KindInvalidEventVariableValue,
	CodeInvalidNodeVariableValue:  KindInvalidNodeVariableValue,
}

var kindText = map[Kind]string{
	KindLocoStackFull:             "CS: Loco stack full.",
	KindLocoAddressTaken:          "CS: Loco address taken.",
	KindSessionNotPresent:         "CS: Session not present.",
	KindConsistEmpty:              "CS: Consist empty.",
	KindLocoNotFound:              "CS: Loco not found.",
	KindCanBus:                    "CS: CAN bus error.",
	KindInvalidRequest:            "CS: Invalid request.",
	KindSessionCancelled:          "CS: Session cancelled.",
	KindCommandNotSupported:       "CFG: Command not supported.",
	KindNotInLearnMode:            "CFG: Not in learn mode.",
	KindNotInSetupMode:            "CFG: Not in setup mode.",
	KindTooManyEvents:             "CFG: Too many events.",
	KindInvalidEventVariableIndex: "CFG: Invalid event variable index.",
	KindInvalidEvent:              "CFG: Invalid event.",
	KindInvalidParameterIndex:     "CFG: Invalid parameter index.",
	KindInvalidNodeVariableIndex:  "CFG: Invalid node variable index.",
	KindInvalidEventVariableValue: "CFG: Invalid event variable value.",
	KindInvalidNodeVariableValue:  "CFG: Invalid node variable value.",
}

// Error is one classified bus-reported failure. Target echoes the
// addressing of the response it came from: the loco address for ERR,
// the node number for CMDERR.
type Error struct {
	Kind   Kind
	Code   uint8
	Target uint16
}

func (e *Error) Error() string {
	if text, ok := kindText[e.Kind]; ok {
		return text
	}
	if e.Kind == KindConfig {
		return fmt.Sprintf("CFG: error, code=%d.", e.Code)
	}
	return fmt.Sprintf("CS: error, code=%d.", e.Code)
}

// FromCommandStation classifies an ERR code; total over all codes.
func FromCommandStation(address uint16, code uint8) *Error {
	kind, ok := stationKinds[code]
	if !ok {
		kind = KindCommandStation
	}
	return &Error{Kind: kind, Code: code, Target: address}
}

// FromConfig classifies a CMDERR code; total over all codes.
func FromConfig(node uint16, code uint8) *Error {
	kind, ok := configKinds[code]
	if !ok {
		kind = KindConfig
	}
	return &Error{Kind: kind, Code: code, Target: node}
}
