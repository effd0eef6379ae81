// Package doc defines the corpus document model: typed documents with stable
// IDs, scalar metadata fields, and ordered cross-reference lists. Documents
// are created by the loader and never mutated afterwards.
package doc

import "sort"

// Type discriminates the document kinds in the corpus
type Type int

const (
	Screen Type = iota
	Component
	Requirement
	Rule
	Flow
	Message
)

// String returns the lowercase name used in metadata blocks and reports
func (t Type) String() string {
	switch t {
	case Screen:
		return "screen"
	case Component:
		return "component"
	case Requirement:
		return "requirement"
	case Rule:
		return "rule"
	case Flow:
		return "flow"
	case Message:
		return "message"
	default:
		return "unknown"
	}
}

// ParseType parses a declared type name from a metadata block
func ParseType(s string) (Type, bool) {
	switch s {
	case "screen":
		return Screen, true
	case "component":
		return Component, true
	case "requirement":
		return Requirement, true
	case "rule":
		return Rule, true
	case "flow":
		return Flow, true
	case "message":
		return Message, true
	default:
		return 0, false
	}
}

// Types lists every document type in traceability order: each matrix column
// is one level, Screen first, Message last.
var Types = []Type{Screen, Component, Requirement, Rule, Flow, Message}

// Document is one corpus entry, produced from a single file (or one entry of
// a messages block). Immutable after the loader returns it.
type Document struct {
	ID         string
	Type       Type
	Title      string
	SourcePath string

	// Fields holds the scalar metadata keys declared in the file, including
	// the raw declared type when present.
	Fields map[string]string

	// References maps a field name to the ordered IDs it references.
	References map[string][]string
}

// RefFields returns the document's reference field names in sorted order so
// that resolution and reporting walk fields deterministically.
func (d *Document) RefFields() []string {
	fields := make([]string, 0, len(d.References))
	for name := range d.References {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// Refs returns the referenced IDs for one field, in declaration order
func (d *Document) Refs(field string) []string {
	return d.References[field]
}
