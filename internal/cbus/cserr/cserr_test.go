package cserr

import "testing"

func TestFromCommandStationKnownCodes(t *testing.T) {
	cases := []struct {
		code uint8
		kind Kind
		text string
	}{
		{CodeLocoStackFull, KindLocoStackFull, "CS: Loco stack full."},
		{CodeLocoAddressTaken, KindLocoAddressTaken, "CS: Loco address taken."},
		{CodeSessionNotPresent, KindSessionNotPresent, "CS: Session not present."},
		{CodeConsistEmpty, KindConsistEmpty, "CS: Consist empty."},
		{CodeLocoNotFound, KindLocoNotFound, "CS: Loco not found."},
		{CodeCanBus, KindCanBus, "CS: CAN bus error."},
		{CodeInvalidRequest, KindInvalidRequest, "CS: Invalid request."},
		{CodeSessionCancelled, KindSessionCancelled, "CS: Session cancelled."},
	}
	for _, c := range cases {
		e := FromCommandStation(0x04D2, c.code)
		if e.Kind != c.kind {
			t.Fatalf("code %d: kind %v want %v", c.code, e.Kind, c.kind)
		}
		if e.Code != c.code || e.Target != 0x04D2 {
			t.Fatalf("code %d: raw fields not preserved: %+v", c.code, e)
		}
		if e.Error() != c.text {
			t.Fatalf("code %d: message %q want %q", c.code, e.Error(), c.text)
		}
	}
}

func TestFromConfigKnownCodes(t *testing.T) {
	cases := []struct {
		code uint8
		kind Kind
	}{
		{CodeCommandNotSupported, KindCommandNotSupported},
		{CodeNotInLearnMode, KindNotInLearnMode},
		{CodeNotInSetupMode, KindNotInSetupMode},
		{CodeTooManyEvents, KindTooManyEvents},
		{CodeInvalidEventVariableIndex, KindInvalidEventVariableIndex},
		{CodeInvalidEvent, KindInvalidEvent},
		{CodeInvalidParameterIndex, KindInvalidParameterIndex},
		{CodeInvalidNodeVariableIndex, KindInvalidNodeVariableIndex},
		{CodeInvalidEventVariableValue, KindInvalidEventVariableValue},
		{CodeInvalidNodeVariableValue, KindInvalidNodeVariableValue},
	}
	for _, c := range cases {
		e := FromConfig(300, c.code)
		if e.Kind != c.kind {
			t.Fatalf("code %d: kind %v want %v", c.code, e.Kind, c.kind)
		}
		if e.Code != c.code || e.Target != 300 {
			t.Fatalf("code %d: raw fields not preserved: %+v", c.code, e)
		}
	}
}

func TestClassificationIsTotal(t *testing.T) {
	for code := 0; code < 256; code++ {
		if e := FromCommandStation(1, uint8(code)); e == nil || e.Error() == "" {
			t.Fatalf("ERR code %d: no classification", code)
		}
		if e := FromConfig(1, uint8(code)); e == nil || e.Error() == "" {
			t.Fatalf("CMDERR code %d: no classification", code)
		}
	}
}

func TestUnknownCodesFallBackWithRawCode(t *testing.T) {
	e := FromCommandStation(7, 200)
	if e.Kind != KindCommandStation || e.Code != 200 {
		t.Fatalf("ERR fallback: %+v", e)
	}
	if e.Error() != "CS: error, code=200." {
		t.Fatalf("ERR fallback message: %q", e.Error())
	}

	// 5 and 8 are unassigned CMDERR codes.
	for _, code := range []uint8{0, 5, 8, 13, 255} {
		e := FromConfig(7, code)
		if e.Kind != KindConfig || e.Code != code {
			t.Fatalf("CMDERR fallback for %d: %+v", code, e)
		}
	}
	if got := FromConfig(7, 5).Error(); got != "CFG: error, code=5." {
		t.Fatalf("CMDERR fallback message: %q", got)
	}
}
