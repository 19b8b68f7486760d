package cbus

import "testing"

func TestDataBytesFollowTopThreeBits(t *testing.T) {
	cases := []struct {
		op   Code
		want int
	}{
		{RESTP, 0},
		{DBG1, 1},
		{ALOC, 2},
		{ERR, 3},
		{ACON, 4},
		{ACON1, 5},
		{ACON2, 6},
		{ACON3, 7},
	}
	for _, c := range cases {
		e, ok := Lookup(c.op)
		if !ok {
			t.Fatalf("%s not registered", c.op)
		}
		if e.DataBytes != c.want {
			t.Fatalf("%s: data bytes %d, want %d", c.op, e.DataBytes, c.want)
		}
	}
}

func TestEveryEntryMatchesItsCode(t *testing.T) {
	for c := 0; c < 256; c++ {
		e, ok := Lookup(Code(c))
		if !ok {
			continue
		}
		if e.Code != Code(c) {
			t.Fatalf("entry %s stored under 0x%02X", e.Name, c)
		}
		if e.DataBytes != c>>5 {
			t.Fatalf("%s: data bytes %d disagree with code 0x%02X", e.Name, e.DataBytes, c)
		}
		if e.Name == "" {
			t.Fatalf("0x%02X registered without a name", c)
		}
	}
}

func TestLookupUnknownCode(t *testing.T) {
	if Registered(0x1C) {
		t.Fatal("0x1C should not be registered")
	}
	if _, ok := Lookup(0x1C); ok {
		t.Fatal("lookup of 0x1C should fail")
	}
	if got := Code(0x1C).String(); got != "0x1C" {
		t.Fatalf("unknown code string: %q", got)
	}
	if got := ACON.String(); got != "ACON" {
		t.Fatalf("known code string: %q", got)
	}
}
