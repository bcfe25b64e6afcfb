package format

// EndStyle selects how a group or object close line is written.
type EndStyle int

const (
	// RepeatName writes the close line as `<end token> = <name>`.
	RepeatName EndStyle = iota
	// Bare writes the close line as the end token alone, with no
	// assignment and no repeated name.
	Bare
)

// Dialect is the structural token table and line style the encoder
// uses. A Dialect value is immutable configuration; it is safe to
// share one value across concurrent encode calls.
type Dialect struct {
	Group     string
	EndGroup  string
	Object    string
	EndObject string

	// End is the terminal statement closing the whole label.
	End string

	EndStyle EndStyle

	// AlignAssignments pads every key to one label-wide column before
	// the assignment token. Required by PDS3.
	AlignAssignments bool
}

// PVLDialect is the default output form.
func PVLDialect() Dialect {
	return Dialect{
		Group:     "BEGIN_GROUP",
		EndGroup:  "END_GROUP",
		Object:    "BEGIN_OBJECT",
		EndObject: "END_OBJECT",
		End:       "END",
		EndStyle:  RepeatName,
	}
}

// ODLDialect writes the short GROUP/OBJECT spellings. ODL readers do
// not accept the BEGIN_ forms, so labels meant for them are written
// with this table.
func ODLDialect() Dialect {
	return Dialect{
		Group:     "GROUP",
		EndGroup:  "END_GROUP",
		Object:    "OBJECT",
		EndObject: "END_OBJECT",
		End:       "END",
		EndStyle:  RepeatName,
	}
}

// CubeDialect is the ISIS cube label form. Close lines are bare.
func CubeDialect() Dialect {
	return Dialect{
		Group:     "Group",
		EndGroup:  "End_Group",
		Object:    "Object",
		EndObject: "End_Object",
		End:       "End",
		EndStyle:  Bare,
	}
}

// PDS3Dialect is the PDS3 label form. Assignments are column-aligned
// across the whole label, and the literal END closes groups, objects,
// and the label itself. The close token is therefore ambiguous in
// isolation; re-parsing PDS3 output relies on the reader's begin/end
// stack to pair closers by nesting.
func PDS3Dialect() Dialect {
	return Dialect{
		Group:            "GROUP",
		EndGroup:         "END",
		Object:           "OBJECT",
		EndObject:        "END",
		End:              "END",
		EndStyle:         RepeatName,
		AlignAssignments: true,
	}
}
