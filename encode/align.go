package encode

import (
	"unicode/utf8"

	"github.com/planetarypy/pvl-format/go-pvl/ir"
)

// assignmentCol computes the label-wide assignment column: the
// depth-first maximum of indented key width over every entry of the
// tree. Widths count runes, not bytes. The single result is reused for
// every line, so one long key deep in the tree widens the column for
// shallow keys too; that is the PDS3 alignment rule, not an accident.
func assignmentCol(node *ir.Node, depth, indent int) int {
	col := 0
	for i, field := range node.Fields {
		if n := depth*indent + utf8.RuneCountInString(field.String); n > col {
			col = n
		}
		if i >= len(node.Values) {
			continue
		}
		val := node.Values[i]
		if val.Type.IsMapping() {
			if n := assignmentCol(val, depth+1, indent); n > col {
				col = n
			}
		}
	}
	return col
}
