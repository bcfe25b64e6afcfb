package format

import (
	"errors"
	"fmt"
)

// Flavor is one of the named PVL dialect profiles. Each flavor pairs a
// parsing strictness (see package parse) with an encoding dialect.
type Flavor int

const (
	PDS3Flavor Flavor = iota
	ODLFlavor
	PVLFlavor
	ISISFlavor
	OmniFlavor
)

var ErrBadFlavor = errors.New("bad flavor")

func ParseFlavor(v string) (Flavor, error) {
	f, ok := map[string]Flavor{
		"pds3": PDS3Flavor,
		"pds":  PDS3Flavor,
		"odl":  ODLFlavor,
		"pvl":  PVLFlavor,
		"isis": ISISFlavor,
		"cube": ISISFlavor,
		"omni": OmniFlavor,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFlavor, v)
}

func (f Flavor) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Flavor) MarshalText() ([]byte, error) {
	switch f {
	case PDS3Flavor:
		return []byte("PDS3"), nil
	case ODLFlavor:
		return []byte("ODL"), nil
	case PVLFlavor:
		return []byte("PVL"), nil
	case ISISFlavor:
		return []byte("ISIS"), nil
	case OmniFlavor:
		return []byte("Omni"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a flavor>", f)
	}
}

func (f *Flavor) UnmarshalText(d []byte) error {
	pf, ok := map[string]Flavor{
		"PDS3": PDS3Flavor,
		"ODL":  ODLFlavor,
		"PVL":  PVLFlavor,
		"ISIS": ISISFlavor,
		"Omni": OmniFlavor,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadFlavor, d)
	}
	*f = pf
	return nil
}

// Dialect returns the encoding dialect used when writing labels under
// this flavor. PVL and Omni write with the default PVL token table.
func (f Flavor) Dialect() Dialect {
	switch f {
	case PDS3Flavor:
		return PDS3Dialect()
	case ODLFlavor:
		return ODLDialect()
	case ISISFlavor:
		return CubeDialect()
	default:
		return PVLDialect()
	}
}

// AllFlavors returns the flavors in reporting order.
func AllFlavors() []Flavor {
	return []Flavor{PDS3Flavor, ODLFlavor, PVLFlavor, ISISFlavor, OmniFlavor}
}
