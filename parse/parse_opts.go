package parse

import (
	"github.com/planetarypy/pvl-format/go-pvl/format"
)

type parseOpts struct {
	flavor format.Flavor
}

type ParseOption func(*parseOpts)

// ParseFlavor selects the grammar strictness profile.
func ParseFlavor(f format.Flavor) ParseOption {
	return func(o *parseOpts) { o.flavor = f }
}

// caseless reports whether structural keywords and reserved scalar
// words match case-insensitively.
func (o *parseOpts) caseless() bool {
	switch o.flavor {
	case format.ISISFlavor, format.OmniFlavor:
		return true
	default:
		return false
	}
}

// beginForms reports whether the BEGIN_GROUP/BEGIN_OBJECT spellings
// are accepted. ODL and PDS3 only define the short forms.
func (o *parseOpts) beginForms() bool {
	switch o.flavor {
	case format.ODLFlavor, format.PDS3Flavor:
		return false
	default:
		return true
	}
}

// requireEnd reports whether the terminal END statement is mandatory.
func (o *parseOpts) requireEnd() bool {
	switch o.flavor {
	case format.ODLFlavor, format.PDS3Flavor:
		return true
	default:
		return false
	}
}
