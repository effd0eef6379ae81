package matrix

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsascode/doclint/lint/doc"
)

// ArtifactName is the matrix file written under the traceability folder
const ArtifactName = "matrix.md"

// Headers are the fixed matrix columns, one per traceability level
var Headers = []string{"Screen", "Component", "Requirement", "Rule", "Flow", "Message"}

// Markdown serializes the ordered rows as the matrix artifact. Output is a
// pure function of the rows, which the builder already ordered, so the bytes
// are reproducible run over run.
func Markdown(rows []Row) []byte {
	var b strings.Builder

	b.WriteString("# Traceability matrix (generated)\n\n")
	b.WriteString("| " + strings.Join(Headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(Headers)) + "\n")

	for _, row := range rows {
		cells := row.Cells()
		parts := make([]string, len(cells))
		for i, c := range cells {
			if c != "" {
				parts[i] = "`" + c + "`"
			}
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(parts, " | "))
	}

	return []byte(b.String())
}

// DefaultPath is the conventional artifact location for a system subtree
func DefaultPath(root, system string) string {
	return SystemPath(root, system, filepath.Join(doc.TraceabilityDir, ArtifactName))
}

// SystemPath resolves a path relative to one system's subtree
func SystemPath(root, system, rel string) string {
	return filepath.Join(root, doc.SystemsDir, system, rel)
}

// Write serializes the rows to path, creating the traceability folder if
// the corpus does not have one yet.
func Write(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create matrix directory: %w", err)
	}
	if err := os.WriteFile(path, Markdown(rows), 0644); err != nil {
		return fmt.Errorf("failed to write matrix: %w", err)
	}
	return nil
}
