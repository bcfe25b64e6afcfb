package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is one value in a label tree.
//
// For ObjectType and GroupType, Fields holds the keys (TextType nodes)
// and Values the corresponding values, index-aligned. For SequenceType
// and SetType, Values holds the elements. For UnitsType, Values[0] is
// the wrapped value and String is the unit label. Scalars use the
// payload fields directly.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromText(v string) *Node {
	return &Node{Type: TextType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: RealType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BooleanType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// WithUnits wraps y with a unit annotation, rendered as `value <unit>`.
func (y *Node) WithUnits(unit string) *Node {
	return &Node{Type: UnitsType, String: unit, Values: []*Node{y}}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewGroup() *Node {
	return &Node{Type: GroupType}
}

// Add appends a key-value entry to a mapping node and returns the
// mapping for chaining. Keys need not be unique; entries encode in
// insertion order.
func (y *Node) Add(key string, v *Node) *Node {
	y.Fields = append(y.Fields, FromText(key))
	y.Values = append(y.Values, v)
	return y
}

func FromSlice(elems []*Node) *Node {
	return &Node{Type: SequenceType, Values: elems}
}

func SetOf(elems ...*Node) *Node {
	return &Node{Type: SetType, Values: elems}
}

// Get returns the value of the first entry with the given key, or nil.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of entries of a mapping or elements of a
// collection.
func (y *Node) Len() int {
	if y.Type.IsMapping() {
		return len(y.Fields)
	}
	return len(y.Values)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Repr returns a short debug representation, used in error messages.
func (y *Node) Repr() string {
	if y == nil {
		return "<nil>"
	}
	switch y.Type {
	case NullType:
		return "Null"
	case BooleanType:
		return fmt.Sprintf("Boolean(%t)", y.Bool)
	case IntegerType:
		if y.Int64 == nil {
			return "Integer(?)"
		}
		return fmt.Sprintf("Integer(%d)", *y.Int64)
	case RealType:
		if y.Float64 == nil {
			return "Real(?)"
		}
		return "Real(" + strconv.FormatFloat(*y.Float64, 'g', -1, 64) + ")"
	case TextType:
		return fmt.Sprintf("Text(%q)", y.String)
	case UnitsType:
		inner := "<nil>"
		if len(y.Values) > 0 {
			inner = y.Values[0].Repr()
		}
		return fmt.Sprintf("Units(%s, %q)", inner, y.String)
	case SequenceType, SetType:
		reprs := make([]string, len(y.Values))
		for i, v := range y.Values {
			reprs[i] = v.Repr()
		}
		return fmt.Sprintf("%s(%s)", y.Type, strings.Join(reprs, ", "))
	case ObjectType, GroupType:
		return fmt.Sprintf("%s(%d entries)", y.Type, len(y.Fields))
	default:
		return fmt.Sprintf("<type %d>", int(y.Type))
	}
}
