// Package validator applies the structural corpus rules: ID format per
// document type, required metadata fields, and orphan detection for
// requirements and rules with no link to the UI. Violations are findings;
// the validator never mutates documents and never stops early.
package validator

import (
	"fmt"

	"github.com/docsascode/doclint/lint/doc"
	"github.com/docsascode/doclint/lint/findings"
	"github.com/docsascode/doclint/lint/registry"
	"github.com/docsascode/doclint/lint/resolver"
)

// Validate checks every document against the structural rules. The resolved
// edge set feeds the orphan check; everything else is per-document.
func Validate(docs []*doc.Document, reg *registry.Registry, edges []resolver.Edge) []findings.Finding {
	var fs []findings.Finding

	linked := uiLinked(reg, edges)

	for _, d := range docs {
		fs = append(fs, checkID(d)...)
		fs = append(fs, checkFields(d)...)

		if d.Type == doc.Requirement || d.Type == doc.Rule {
			if !linked[d.ID] {
				fs = append(fs, findings.Finding{
					Phase:    "validate",
					Kind:     findings.Orphan,
					Severity: findings.Warning,
					Message:  fmt.Sprintf("%s %s has no resolved link to any screen or component", d.Type, d.ID),
					Path:     d.SourcePath,
					DocID:    d.ID,
				})
			}
		}
	}

	return fs
}

// checkID verifies the ID pattern for the document's type and that any
// declared type agrees with the folder the file lives in.
func checkID(d *doc.Document) []findings.Finding {
	var fs []findings.Finding

	if !d.Type.MatchID(d.ID) {
		fs = append(fs, findings.Finding{
			Phase:    "validate",
			Kind:     findings.PatternMismatch,
			Severity: findings.Error,
			Message:  fmt.Sprintf("id %s does not match the %s pattern", d.ID, d.Type),
			Path:     d.SourcePath,
			DocID:    d.ID,
			Field:    "id",
		})
	}

	// The folder decides the document type; an explicit type key must agree.
	// Keys like a component's widget type that do not name a document type
	// are plain metadata.
	if declared, ok := doc.ParseType(d.Fields["type"]); ok && declared != d.Type {
		fs = append(fs, findings.Finding{
			Phase:    "validate",
			Kind:     findings.PatternMismatch,
			Severity: findings.Error,
			Message:  fmt.Sprintf("%s declares type %s but lives in the %s folder", d.ID, declared, d.Type),
			Path:     d.SourcePath,
			DocID:    d.ID,
			Field:    "type",
		})
	}

	return fs
}

// checkFields verifies the minimal field set for the document's type
func checkFields(d *doc.Document) []findings.Finding {
	var fs []findings.Finding

	for _, field := range doc.Schemas[d.Type].Required {
		value := d.Fields[field]
		if field == "title" {
			value = d.Title
		}
		if value == "" {
			fs = append(fs, findings.Finding{
				Phase:    "validate",
				Kind:     findings.MissingField,
				Severity: findings.Error,
				Message:  fmt.Sprintf("%s %s has no %s", d.Type, d.ID, field),
				Path:     d.SourcePath,
				DocID:    d.ID,
				Field:    field,
			})
		}
	}

	return fs
}

// uiLinked collects the requirement and rule IDs that have at least one
// resolved edge, in either direction, touching a screen or component.
func uiLinked(reg *registry.Registry, edges []resolver.Edge) map[string]bool {
	isUI := func(id string) bool {
		d, ok := reg.Resolve(id)
		return ok && (d.Type == doc.Screen || d.Type == doc.Component)
	}
	isTraced := func(id string) bool {
		d, ok := reg.Resolve(id)
		return ok && (d.Type == doc.Requirement || d.Type == doc.Rule)
	}

	linked := make(map[string]bool)
	for _, e := range edges {
		if isTraced(e.Source) && isUI(e.Target) {
			linked[e.Source] = true
		}
		if isTraced(e.Target) && isUI(e.Source) {
			linked[e.Target] = true
		}
	}
	return linked
}
