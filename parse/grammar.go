package parse

import (
	"strings"

	"github.com/planetarypy/pvl-format/go-pvl/ir"
)

type keywordKind int

const (
	kwNone keywordKind = iota
	kwGroup
	kwObject
	kwEndGroup
	kwEndObject
	kwEnd
)

// keyword classifies a bare word as a structural keyword under the
// active flavor, or kwNone.
func (o *parseOpts) keyword(word string) keywordKind {
	w := word
	if o.caseless() {
		w = strings.ToUpper(word)
	}
	switch w {
	case "GROUP":
		return kwGroup
	case "BEGIN_GROUP":
		if o.beginForms() {
			return kwGroup
		}
	case "OBJECT":
		return kwObject
	case "BEGIN_OBJECT":
		if o.beginForms() {
			return kwObject
		}
	case "END_GROUP":
		return kwEndGroup
	case "END_OBJECT":
		return kwEndObject
	case "END":
		return kwEnd
	}
	return kwNone
}

// scalarWord maps reserved value words (TRUE, FALSE, NULL) to nodes.
// Strict flavors only accept the uppercase spellings.
func (o *parseOpts) scalarWord(word string) (*ir.Node, bool) {
	w := word
	if o.caseless() {
		w = strings.ToUpper(word)
	}
	switch w {
	case "TRUE":
		return ir.FromBool(true), true
	case "FALSE":
		return ir.FromBool(false), true
	case "NULL":
		return ir.Null(), true
	}
	return nil, false
}
