// Package resolver checks every declared cross-reference against the
// registry, producing resolved edges for the matrix builder and one broken
// reference finding per unresolved occurrence.
package resolver

import (
	"fmt"

	"github.com/docsascode/doclint/lint/doc"
	"github.com/docsascode/doclint/lint/findings"
	"github.com/docsascode/doclint/lint/registry"
)

// Edge is one resolved directed reference: source document -> target
// document, through the named reference field.
type Edge struct {
	Source string
	Field  string
	Target string
}

// Resolve walks every reference field of every document in order. Duplicate
// dangling mentions of the same ID are not deduplicated: a field listing the
// same missing target twice yields two findings.
func Resolve(docs []*doc.Document, reg *registry.Registry) ([]Edge, []findings.Finding) {
	var edges []Edge
	var fs []findings.Finding

	for _, d := range docs {
		for _, field := range d.RefFields() {
			for _, target := range d.Refs(field) {
				if _, ok := reg.Resolve(target); !ok {
					fs = append(fs, findings.Finding{
						Phase:    "resolve",
						Kind:     findings.BrokenReference,
						Severity: findings.Error,
						Message:  fmt.Sprintf("%s references %s, which does not exist", d.ID, target),
						Path:     d.SourcePath,
						DocID:    d.ID,
						Field:    field,
						Target:   target,
					})
					continue
				}
				edges = append(edges, Edge{Source: d.ID, Field: field, Target: target})
			}
		}
	}

	return edges, fs
}
