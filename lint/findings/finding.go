// Package findings defines the validation outcomes produced by the lint
// pipeline. A Finding is data, not a Go error: phases accumulate findings and
// keep going, and the reporter decides the process outcome at the end.
package findings

import (
	"fmt"
	"sort"
)

// Severity represents the severity level of a finding
type Severity int

const (
	Warning Severity = iota
	Error
	Fatal
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity
func (s *Severity) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	switch str {
	case "warning":
		*s = Warning
	case "error":
		*s = Error
	case "fatal":
		*s = Fatal
	default:
		*s = Error
	}
	return nil
}

// Kind identifies the class of validation failure
type Kind string

const (
	ParseError      Kind = "parse_error"
	MissingID       Kind = "missing_id"
	DuplicateID     Kind = "duplicate_id"
	BrokenReference Kind = "broken_reference"
	PatternMismatch Kind = "pattern_mismatch"
	MissingField    Kind = "missing_field"
	Orphan          Kind = "orphan"
)

// Kinds lists every finding kind in report order
var Kinds = []Kind{
	ParseError,
	MissingID,
	DuplicateID,
	BrokenReference,
	PatternMismatch,
	MissingField,
	Orphan,
}

// Finding represents a single validation outcome
type Finding struct {
	Phase    string   `json:"phase"` // "load", "register", "resolve", "validate"
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`             // source file of the offending document
	DocID    string   `json:"doc_id,omitempty"` // offending document ID, when known
	Field    string   `json:"field,omitempty"`  // offending field, when known
	Target   string   `json:"target,omitempty"` // referenced ID, for broken references
}

// String formats the finding as a single diagnostic line
func (f Finding) String() string {
	loc := f.Path
	if f.Field != "" {
		loc = fmt.Sprintf("%s: %s", f.Path, f.Field)
	}
	return fmt.Sprintf("%s: [%s] %s: %s", loc, f.Kind, f.Severity, f.Message)
}

// IsError returns true if the finding is at Error or Fatal severity
func (f Finding) IsError() bool {
	return f.Severity == Error || f.Severity == Fatal
}

// IsWarning returns true if the finding is at Warning severity
func (f Finding) IsWarning() bool {
	return f.Severity == Warning
}

// Sort orders findings by source path, then field, then message. The pipeline
// appends findings phase by phase; sorting before reporting keeps output
// stable across runs for diff-friendly reports.
func Sort(list []Finding) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		return a.Message < b.Message
	})
}

// Count tallies findings per kind
func Count(list []Finding) map[Kind]int {
	counts := make(map[Kind]int)
	for _, f := range list {
		counts[f.Kind]++
	}
	return counts
}

// Errors returns only the error-severity findings
func Errors(list []Finding) []Finding {
	var out []Finding
	for _, f := range list {
		if f.IsError() {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns only the warning-severity findings
func Warnings(list []Finding) []Finding {
	var out []Finding
	for _, f := range list {
		if f.IsWarning() {
			out = append(out, f)
		}
	}
	return out
}
