package encode

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/planetarypy/pvl-format/go-pvl/format"
	"github.com/planetarypy/pvl-format/go-pvl/ir"
)

func sampleLabel() *ir.Node {
	return ir.NewObject().
		Add("A", ir.FromInt(1)).
		Add("X", ir.NewGroup().Add("B", ir.FromInt(2)))
}

func TestEncodeDefault(t *testing.T) {
	want := `A = 1
BEGIN_GROUP = X
  B = 2
END_GROUP = X
END`
	got := MustString(sampleLabel())
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeCube(t *testing.T) {
	want := `A = 1
Group = X
  B = 2
End_Group
End`
	got := MustString(sampleLabel(), EncodeDialect(format.CubeDialect()))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodePDS3Alignment(t *testing.T) {
	label := ir.NewObject().
		Add("LONGKEY", ir.FromInt(1)).
		Add("X", ir.NewObject().Add("B", ir.FromInt(2)))
	want := `LONGKEY = 1
OBJECT  = X
  B     = 2
END     = X
END`
	got := MustString(label, EncodeDialect(format.PDS3Dialect()))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodePDS3FlatAlignment(t *testing.T) {
	label := ir.NewObject().
		Add("A", ir.FromInt(1)).
		Add("LONGKEY", ir.FromInt(2))
	want := "A       = 1\nLONGKEY = 2\nEND"
	got := MustString(label, EncodeDialect(format.PDS3Dialect()))
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

// Alignment widths count runes, so a multibyte key pads the same as
// an ASCII key of equal length.
func TestEncodePDS3AlignmentCountsRunes(t *testing.T) {
	label := ir.NewObject().
		Add("ÅNGSTRÖM", ir.FromInt(1)).
		Add("A", ir.FromInt(2))
	want := "ÅNGSTRÖM = 1\nA        = 2\nEND"
	got := MustString(label, EncodeDialect(format.PDS3Dialect()))
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

// A long key deep in the tree widens the assignment column for
// shallow keys too; the column is computed over the whole label.
func TestEncodePDS3DeepKeyWidens(t *testing.T) {
	label := ir.NewObject().
		Add("A", ir.FromInt(1)).
		Add("X", ir.NewObject().Add("DEEP_LONG_KEY", ir.FromInt(2)))
	got := MustString(label, EncodeDialect(format.PDS3Dialect()))
	lines := strings.Split(got, "\n")
	col := strings.Index(lines[0], "=")
	for i, line := range lines[:len(lines)-1] {
		if strings.Index(line, "=") != col {
			t.Errorf("line %d %q: = at %d, want %d", i, line, strings.Index(line, "="), col)
		}
	}
}

func TestEncodeValues(t *testing.T) {
	for _, tc := range []struct {
		name string
		val  *ir.Node
		want string
	}{
		{"int", ir.FromInt(-42), "-42"},
		{"real", ir.FromFloat(1.5), "1.5"},
		{"realIntegral", ir.FromFloat(2), "2.0"},
		{"boolTrue", ir.FromBool(true), "TRUE"},
		{"boolFalse", ir.FromBool(false), "FALSE"},
		{"null", ir.Null(), "NULL"},
		{"bareText", ir.FromText("MARS"), "MARS"},
		{"quotedText", ir.FromText("hello world"), `"hello world"`},
		{"singleQuoted", ir.FromText(`say "hi"`), `'say "hi"'`},
		{"units", ir.FromInt(1).WithUnits("km"), "1 <km>"},
		{"unitsReal", ir.FromFloat(0.25).WithUnits("m/s"), "0.25 <m/s>"},
		{"sequence", ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromInt(2), ir.FromInt(3),
		}), "(1, 2, 3)"},
		{"nestedSequence", ir.FromSlice([]*ir.Node{
			ir.FromSlice([]*ir.Node{ir.FromInt(1)}), ir.FromInt(2),
		}), "((1), 2)"},
		{"emptySequence", ir.FromSlice(nil), "()"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := MustString(ir.NewObject().Add("K", tc.val))
			want := "K = " + tc.want + "\nEND"
			if got != want {
				t.Errorf("got %q want %q", got, want)
			}
		})
	}
}

func TestEncodeSetPermutation(t *testing.T) {
	got := MustString(ir.NewObject().Add("S", ir.SetOf(
		ir.FromInt(3), ir.FromInt(1), ir.FromInt(2))))
	body := strings.TrimSuffix(strings.TrimPrefix(got, "S = {"), "}\nEND")
	elems := strings.Split(body, ", ")
	sort.Strings(elems)
	if want := []string{"1", "2", "3"}; strings.Join(elems, ",") != strings.Join(want, ",") {
		t.Errorf("got elements %v want a permutation of %v", elems, want)
	}
}

func TestEncodeUnsupportedValue(t *testing.T) {
	label := ir.NewObject().
		Add("A", ir.FromInt(1)).
		Add("B", ir.FromSlice([]*ir.Node{ir.NewObject()}))
	buf := bytes.NewBuffer(nil)
	err := Encode(label, buf)
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("got %v want ErrUnsupportedValue", err)
	}
	// the failing entry contributes no output at all
	if got, want := buf.String(), "A = 1\n"; got != want {
		t.Errorf("partial output %q want %q", got, want)
	}
}

func TestEncodeRejectsUnquotableText(t *testing.T) {
	label := ir.NewObject().Add("A", ir.FromText(`both " and ' quotes`))
	buf := bytes.NewBuffer(nil)
	err := Encode(label, buf)
	if !errors.Is(err, ErrEncodingRejected) {
		t.Fatalf("got %v want ErrEncodingRejected", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial output %q want none", buf.String())
	}
}

func TestEncodeNestedUnitsUnsupported(t *testing.T) {
	label := ir.NewObject().Add("A", ir.FromInt(1).WithUnits("m").WithUnits("s"))
	err := Encode(label, bytes.NewBuffer(nil))
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("got %v want ErrUnsupportedValue", err)
	}
}

func TestEncodeTopLevelMustBeMapping(t *testing.T) {
	for _, y := range []*ir.Node{nil, ir.FromInt(1), ir.FromSlice(nil)} {
		err := Encode(y, bytes.NewBuffer(nil))
		if !errors.Is(err, ErrUnsupportedValue) {
			t.Errorf("%s: got %v want ErrUnsupportedValue", y.Repr(), err)
		}
	}
}

func TestEncodeNoTrailingNewline(t *testing.T) {
	for _, d := range []format.Dialect{
		format.PVLDialect(), format.CubeDialect(), format.PDS3Dialect(),
	} {
		got := MustString(sampleLabel(), EncodeDialect(d))
		if strings.HasSuffix(got, "\n") {
			t.Errorf("%s dialect: trailing newline after terminal", d.End)
		}
		if !strings.HasSuffix(got, "\n"+d.End) {
			t.Errorf("%s dialect: output does not end with terminal: %q", d.End, got)
		}
	}
}

func TestEncodeIndentOption(t *testing.T) {
	got := MustString(sampleLabel(), Indent(4))
	if !strings.Contains(got, "\n    B = 2\n") {
		t.Errorf("indent 4 not applied:\n%s", got)
	}
}

func TestEncodeColorsKeepAlignment(t *testing.T) {
	label := ir.NewObject().
		Add("LONGKEY", ir.FromInt(1)).
		Add("A", ir.FromInt(2))
	plain := MustString(label, EncodeDialect(format.PDS3Dialect()))
	colored := MustString(label, EncodeDialect(format.PDS3Dialect()),
		EncodeColors(NewColors()))
	if stripEscapes(colored) != plain {
		t.Errorf("colored output, escapes stripped:\n%q\nwant:\n%q",
			stripEscapes(colored), plain)
	}
}

func TestEncodeNilColorsIsPlain(t *testing.T) {
	label := sampleLabel()
	plain := MustString(label)
	got := MustString(label, EncodeColors(nil))
	if got != plain {
		t.Errorf("nil color scheme changed output:\n%q\nwant:\n%q", got, plain)
	}
}

func stripEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
