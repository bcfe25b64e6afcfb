package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

type fileResult struct {
	name     string
	outcomes []outcome
}

func writeReport(w io.Writer, results []fileResult, colorize bool) error {
	switch len(results) {
	case 0:
		// every input file may have been unreadable
		return nil
	case 1:
		return writeDetail(w, results[0], colorize)
	default:
		return writeTable(w, results, colorize)
	}
}

// writeDetail prints one line per profile with the long-form verdicts.
// The padded cell is built before coloring so escape bytes never skew
// the column widths.
func writeDetail(w io.Writer, fr fileResult, colorize bool) error {
	nameW, loadW := 0, len("does NOT load")
	for _, oc := range fr.outcomes {
		if n := len(oc.flavor.String()); n > nameW {
			nameW = n
		}
	}
	if _, err := fmt.Fprintf(w, "%s\n", fr.name); err != nil {
		return err
	}
	for _, oc := range fr.outcomes {
		load := "does NOT load"
		if oc.loaded {
			load = "Loads"
		}
		line := fmt.Sprintf("%-*s | %s", nameW, oc.flavor,
			verdict(fmt.Sprintf("%-*s", loadW, load), oc.loaded, colorize))
		if oc.loaded {
			enc := "does NOT encode"
			if oc.encoded {
				enc = "Encodes"
			}
			line += " | " + verdict(enc, oc.encoded, colorize)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []fileResult, colorize bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	header := table.Row{"File"}
	for _, oc := range results[0].outcomes {
		header = append(header, oc.flavor.String())
	}
	t.AppendHeader(header)
	for _, fr := range results {
		row := table.Row{fr.name}
		for _, oc := range fr.outcomes {
			row = append(row, cell(oc, colorize))
		}
		t.AppendRow(row)
	}
	t.Render()
	return nil
}

// cell is the short table form: L / No L for loading, E / No E for
// encoding. A load failure leaves no encode verdict to report.
func cell(oc outcome, colorize bool) string {
	if !oc.loaded {
		return verdict("No L", false, colorize)
	}
	enc := verdict("E", true, colorize)
	if !oc.encoded {
		enc = verdict("No E", false, colorize)
	}
	return verdict("L", true, colorize) + " " + enc
}

func verdict(s string, ok bool, colorize bool) string {
	if !colorize || s == "" {
		return s
	}
	if ok {
		return color.GreenString("%s", s)
	}
	return color.RedString("%s", s)
}
