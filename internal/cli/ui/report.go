// Package ui renders validation reports and tables for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/docsascode/doclint/lint/findings"
)

// FormatFinding formats one finding as a diagnostic line with a colored
// severity marker.
func FormatFinding(f findings.Finding, noColor bool) string {
	marker := color.New(color.FgRed, color.Bold)
	symbol := "✗"
	if f.IsWarning() {
		marker = color.New(color.FgYellow, color.Bold)
		symbol = "⚠"
	}
	if noColor {
		marker.DisableColor()
	}

	loc := f.Path
	if f.Field != "" {
		loc += ": " + f.Field
	}
	return fmt.Sprintf("%s %s: %s", marker.Sprint(symbol), loc, f.Message)
}

// WriteReport writes the full structured report: counts per finding kind,
// every warning, and full detail for errors.
func WriteReport(w io.Writer, list []findings.Finding, noColor bool) {
	errs := findings.Errors(list)
	warns := findings.Warnings(list)

	bold := color.New(color.Bold)
	if noColor {
		bold.DisableColor()
	}

	bold.Fprintf(w, "Findings: %d error(s), %d warning(s)\n\n", len(errs), len(warns))

	counts := findings.Count(list)
	table := NewTable(w, []string{"Kind", "Count"}, noColor)
	for _, kind := range findings.Kinds {
		if counts[kind] > 0 {
			table.AddRow(string(kind), fmt.Sprintf("%d", counts[kind]))
		}
	}
	table.Render()

	if len(warns) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Warnings:")
		for _, f := range warns {
			fmt.Fprintf(w, "  %s\n", FormatFinding(f, noColor))
		}
	}

	if len(errs) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Errors:")
		for _, f := range errs {
			fmt.Fprintf(w, "  %s\n", FormatFinding(f, noColor))
			if f.Target != "" {
				fmt.Fprintf(w, "      target: %s\n", f.Target)
			}
			if f.DocID != "" {
				fmt.Fprintf(w, "      document: %s\n", f.DocID)
			}
		}
	}
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	green.Fprintf(w, "✓ %s\n", message)
}
