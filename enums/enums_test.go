package enums_test

import (
	"testing"

	"github.com/reoring/gokml/enums"
)

func TestParseAltitudeMode(t *testing.T) {
	m, err := enums.ParseAltitudeMode("clampToGround")
	if err != nil {
		t.Fatalf("exact match: %v", err)
	}
	if m != enums.ClampToGround {
		t.Errorf("m = %s", m)
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	cases := map[string]enums.AltitudeMode{
		"clamptoground":      enums.ClampToGround,
		"RELATIVETOGROUND":   enums.RelativeToGround,
		"Absolute":           enums.Absolute,
		"relativeToSeaFloor": enums.RelativeToSeaFloor,
	}
	for in, want := range cases {
		got, err := enums.ParseAltitudeMode(in)
		if err != nil {
			t.Errorf("ParseAltitudeMode(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAltitudeMode(%q) = %s, want %s", in, got, want)
		}
		// The canonical spelling survives, whatever the input casing.
		if string(got) == in && in != string(want) {
			t.Errorf("ParseAltitudeMode(%q) kept non-canonical spelling", in)
		}
	}
}

func TestParseUnknownValue(t *testing.T) {
	if _, err := enums.ParseAltitudeMode("floating"); err == nil {
		t.Error("unknown value accepted")
	}
	if _, err := enums.ParseColorMode(""); err == nil {
		t.Error("empty value accepted")
	}
}

func TestAltitudeModeNSID(t *testing.T) {
	if got := enums.ClampToGround.NSID(); got != "kml" {
		t.Errorf("clampToGround nsid = %s", got)
	}
	if got := enums.ClampToSeaFloor.NSID(); got != "gx" {
		t.Errorf("clampToSeaFloor nsid = %s", got)
	}
	if got := enums.RelativeToSeaFloor.NSID(); got != "gx" {
		t.Errorf("relativeToSeaFloor nsid = %s", got)
	}
}

func TestParsePairKey(t *testing.T) {
	k, err := enums.ParsePairKey("highlight")
	if err != nil || k != enums.PairHighlight {
		t.Errorf("ParsePairKey = %v, %v", k, err)
	}
}

func TestParseDataType(t *testing.T) {
	d, err := enums.ParseDataType("ushort")
	if err != nil || d != enums.TypeUshort {
		t.Errorf("ParseDataType = %v, %v", d, err)
	}
}
