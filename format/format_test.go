package format

import (
	"errors"
	"testing"
)

func TestParseFlavor(t *testing.T) {
	for in, want := range map[string]Flavor{
		"pds3": PDS3Flavor,
		"pds":  PDS3Flavor,
		"odl":  ODLFlavor,
		"pvl":  PVLFlavor,
		"isis": ISISFlavor,
		"cube": ISISFlavor,
		"omni": OmniFlavor,
	} {
		got, err := ParseFlavor(in)
		if err != nil {
			t.Errorf("ParseFlavor(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFlavor(%q) = %s want %s", in, got, want)
		}
	}
	if _, err := ParseFlavor("json"); !errors.Is(err, ErrBadFlavor) {
		t.Errorf("got %v want ErrBadFlavor", err)
	}
}

func TestFlavorTextRoundTrip(t *testing.T) {
	for _, f := range AllFlavors() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("%d: %v", f, err)
		}
		var back Flavor
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != f {
			t.Errorf("%s came back as %s", f, back)
		}
	}
}

func TestFlavorDialects(t *testing.T) {
	if d := PDS3Flavor.Dialect(); !d.AlignAssignments || d.EndGroup != "END" {
		t.Errorf("PDS3 dialect: %+v", d)
	}
	if d := ISISFlavor.Dialect(); d.EndStyle != Bare || d.Group != "Group" {
		t.Errorf("ISIS dialect: %+v", d)
	}
	if d := ODLFlavor.Dialect(); d.Group != "GROUP" || d.AlignAssignments {
		t.Errorf("ODL dialect: %+v", d)
	}
	for _, f := range []Flavor{PVLFlavor, OmniFlavor} {
		if d := f.Dialect(); d.Group != "BEGIN_GROUP" {
			t.Errorf("%s dialect: %+v", f, d)
		}
	}
}
