package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/planetarypy/pvl-format/go-pvl/format"
	"github.com/planetarypy/pvl-format/go-pvl/ir"
	"github.com/planetarypy/pvl-format/go-pvl/token"
)

// EncState holds the per-call encoding state. A fresh EncState is
// built for every Encode call, so one dialect value can back any
// number of concurrent calls; the assignment column in particular is
// call-scoped, never shared.
type EncState struct {
	dialect format.Dialect
	indent  int

	// assignCol is the label-wide assignment column for aligned
	// dialects, computed once before any line is written. Zero means
	// unaligned.
	assignCol int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the label tree rooted at node to w, ending with the
// dialect's terminal statement. The terminal carries no trailing line
// break.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		dialect: format.PVLDialect(),
		indent:  2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil || !node.Type.IsMapping() {
		return fmt.Errorf("%w: top level must be an Object or Group, got %s",
			ErrUnsupportedValue, node.Repr())
	}
	if es.dialect.AlignAssignments {
		es.assignCol = assignmentCol(node, 0, es.indent)
	}
	if err := encodeBlock(node, w, 0, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type, StructColor, es.dialect.End))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// encodeBlock walks one mapping in entry order, dispatching each entry
// to a group block, an object block, or an assignment line.
func encodeBlock(node *ir.Node, w io.Writer, level int, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: mapping with %d keys and %d values",
			ErrUnsupportedValue, len(node.Fields), len(node.Values))
	}
	for i, field := range node.Fields {
		val := node.Values[i]
		switch val.Type {
		case ir.GroupType:
			if err := encodeSub(field.String, val, w, level, es,
				es.dialect.Group, es.dialect.EndGroup); err != nil {
				return err
			}
		case ir.ObjectType:
			if err := encodeSub(field.String, val, w, level, es,
				es.dialect.Object, es.dialect.EndObject); err != nil {
				return err
			}
		default:
			// The value text is built in full before any byte of the
			// line is written: a failing entry contributes no output.
			v, err := encodeValue(val, es)
			if err != nil {
				return err
			}
			key := applyColor(es, ir.TextType, FieldColor, field.String)
			if err := writeAssignment(w, field.String, key, v, level, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeSub(name string, val *ir.Node, w io.Writer, level int, es *EncState, open, close string) error {
	openTok := applyColor(es, val.Type, StructColor, open)
	nameTxt := applyColor(es, ir.TextType, ValueColor, name)
	if err := writeAssignment(w, open, openTok, nameTxt, level, es); err != nil {
		return err
	}
	if err := encodeBlock(val, w, level+1, es); err != nil {
		return err
	}
	closeTok := applyColor(es, val.Type, StructColor, close)
	if es.dialect.EndStyle == format.Bare {
		return writeString(w, indentFor(level, es)+closeTok+"\n")
	}
	return writeAssignment(w, close, closeTok, nameTxt, level, es)
}

// writeAssignment writes one `key = value` line. keyPlain is the
// uncolored key text, used for column arithmetic in runes; keyShown
// and value may carry color escapes.
func writeAssignment(w io.Writer, keyPlain, keyShown, value string, level int, es *EncState) error {
	ind := indentFor(level, es)
	pad := ""
	if es.assignCol > 0 {
		if n := es.assignCol - len(ind) - utf8.RuneCountInString(keyPlain); n > 0 {
			pad = strings.Repeat(" ", n)
		}
	}
	sep := applyColor(es, ir.ObjectType, SepColor, " = ")
	return writeString(w, ind+keyShown+pad+sep+value+"\n")
}

func indentFor(level int, es *EncState) string {
	return strings.Repeat(strings.Repeat(" ", es.indent), level)
}

// encodeValue textualizes one value for the right-hand side of an
// assignment. Mappings are not values; they reach here only inside a
// collection, which PVL cannot represent, and fail as unsupported.
func encodeValue(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.UnitsType:
		return encodeUnits(node, es)
	case ir.SequenceType:
		return encodeElems(node, es, "(", ")")
	case ir.SetType:
		// element order is whatever the tree holds; the contract
		// promises a permutation, not an order
		return encodeElems(node, es, "{", "}")
	default:
		return encodeScalar(node, es)
	}
}

func encodeUnits(node *ir.Node, es *EncState) (string, error) {
	if len(node.Values) != 1 {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, node.Repr())
	}
	inner := node.Values[0]
	if inner.Type == ir.UnitsType {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, node.Repr())
	}
	v, err := encodeValue(inner, es)
	if err != nil {
		return "", err
	}
	u := applyColor(es, ir.UnitsType, ValueColor, "<"+node.String+">")
	return v + " " + u, nil
}

func encodeElems(node *ir.Node, es *EncState, open, close string) (string, error) {
	parts := make([]string, len(node.Values))
	for i, v := range node.Values {
		p, err := encodeValue(v, es)
		if err != nil {
			return "", err
		}
		parts[i] = p
	}
	sep := applyColor(es, node.Type, SepColor, ", ")
	return applyColor(es, node.Type, SepColor, open) +
		strings.Join(parts, sep) +
		applyColor(es, node.Type, SepColor, close), nil
}

func encodeScalar(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.TextType:
		return encodeText(node.String, es)
	case ir.BooleanType:
		v := "FALSE"
		if node.Bool {
			v = "TRUE"
		}
		return applyColor(es, ir.BooleanType, ValueColor, v), nil
	case ir.IntegerType:
		if node.Int64 == nil {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, node.Repr())
		}
		v := strconv.FormatInt(*node.Int64, 10)
		return applyColor(es, ir.IntegerType, ValueColor, v), nil
	case ir.RealType:
		if node.Float64 == nil {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, node.Repr())
		}
		return applyColor(es, ir.RealType, ValueColor, realText(*node.Float64)), nil
	case ir.NullType:
		return applyColor(es, ir.NullType, ValueColor, "NULL"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, node.Repr())
	}
}

func encodeText(v string, es *EncState) (string, error) {
	if !token.NeedsQuote(v) {
		return applyColor(es, ir.TextType, ValueColor, v), nil
	}
	q, err := token.Quote(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodingRejected, err)
	}
	return applyColor(es, ir.TextType, ValueColor, q), nil
}

// realText formats a real with the host's default shortest form,
// keeping a decimal point so the value reads back as a real.
func realText(f float64) string {
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if isIntegral(v) {
		v += ".0"
	}
	return v
}

func isIntegral(v string) bool {
	for i, c := range v {
		if i == 0 && (c == '-' || c == '+') {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(v) > 0
}
