package encode

import "github.com/planetarypy/pvl-format/go-pvl/format"

type EncodeOption func(*EncState)

// EncodeDialect selects the structural token table and line style.
// The default is format.PVLDialect.
func EncodeDialect(d format.Dialect) EncodeOption {
	return func(es *EncState) { es.dialect = d }
}

// Indent sets the width of one indentation level in spaces.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors enables colored output. A nil scheme means no color.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
