package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/planetarypy/pvl-format/go-pvl/format"
)

func outcomesFor(loaded, encoded []bool) []outcome {
	var ocs []outcome
	for i, f := range format.AllFlavors() {
		ocs = append(ocs, outcome{flavor: f, loaded: loaded[i], encoded: encoded[i]})
	}
	return ocs
}

func TestWriteDetail(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	fr := fileResult{
		name: "a.lbl",
		outcomes: outcomesFor(
			[]bool{false, true, true, true, true},
			[]bool{false, false, true, true, true}),
	}
	if err := writeReport(buf, []fileResult{fr}, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "a.lbl" {
		t.Errorf("first line %q want the file name", lines[0])
	}
	wantRow := func(prefix, load, enc string) {
		t.Helper()
		for _, line := range lines[1:] {
			if !strings.HasPrefix(line, prefix) {
				continue
			}
			if !strings.Contains(line, load) {
				t.Errorf("row %q missing %q", line, load)
			}
			if enc != "" && !strings.Contains(line, enc) {
				t.Errorf("row %q missing %q", line, enc)
			}
			if enc == "" && strings.Count(line, "|") != 1 {
				t.Errorf("load failure row %q carries an encode verdict", line)
			}
			return
		}
		t.Errorf("no row for %q in:\n%s", prefix, out)
	}
	wantRow("PDS3", "does NOT load", "")
	wantRow("ODL", "Loads", "does NOT encode")
	wantRow("PVL", "Loads", "Encodes")
}

// All inputs being unreadable leaves nothing to report; the run still
// finishes cleanly.
func TestWriteReportNoResults(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := writeReport(buf, nil, false); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriteTable(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	frs := []fileResult{
		{name: "a.lbl", outcomes: outcomesFor(
			[]bool{true, true, true, true, true},
			[]bool{true, true, true, true, true})},
		{name: "b.lbl", outcomes: outcomesFor(
			[]bool{false, false, true, true, true},
			[]bool{false, false, false, true, true})},
	}
	if err := writeReport(buf, frs, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"File", "PDS3", "Omni", "a.lbl", "b.lbl", "L E", "No L", "L No E"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
