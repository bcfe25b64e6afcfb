package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BooleanType
	IntegerType
	RealType
	TextType
	UnitsType
	SequenceType
	SetType
	ObjectType
	GroupType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BooleanType:  "Boolean",
		IntegerType:  "Integer",
		RealType:     "Real",
		TextType:     "Text",
		UnitsType:    "Units",
		SequenceType: "Sequence",
		SetType:      "Set",
		ObjectType:   "Object",
		GroupType:    "Group",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":     NullType,
		"Boolean":  BooleanType,
		"Integer":  IntegerType,
		"Real":     RealType,
		"Text":     TextType,
		"Units":    UnitsType,
		"Sequence": SequenceType,
		"Set":      SetType,
		"Object":   ObjectType,
		"Group":    GroupType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BooleanType,
		IntegerType,
		RealType,
		TextType,
		UnitsType,
		SequenceType,
		SetType,
		ObjectType,
		GroupType,
	}
}

// IsMapping reports whether t is a block-structured kind.
func (t Type) IsMapping() bool {
	switch t {
	case ObjectType, GroupType:
		return true
	default:
		return false
	}
}

// IsScalar reports whether t is a single-valued leaf kind.
func (t Type) IsScalar() bool {
	switch t {
	case NullType, BooleanType, IntegerType, RealType, TextType:
		return true
	default:
		return false
	}
}
