// Package loader walks a docs-as-code corpus and turns each document file
// into an in-memory Document. Malformed files become findings, never aborts:
// the loader keeps going so a single bad document cannot hide the rest of
// the diagnostics.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/docsascode/doclint/lint/doc"
	"github.com/docsascode/doclint/lint/findings"
)

// Options selects which corpus subtree to load
type Options struct {
	// Root is the corpus root directory (conventionally "docs").
	Root string

	// System scopes loading to one subtree under 20-systems/.
	System string
}

// Result holds everything the loader produced: one Document per well-formed
// file plus the findings for the files that were not.
type Result struct {
	Documents []*doc.Document
	Findings  []findings.Finding
}

// Load reads the scoped corpus subtree and returns its documents. The only
// error conditions are an unreadable root or a system with no subtree; every
// per-file problem is a finding in the result instead.
func Load(opts Options, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("corpus root %s: %w", opts.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus root %s is not a directory", opts.Root)
	}

	base := filepath.Join(opts.Root, doc.SystemsDir, opts.System)
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("system %q has no subtree at %s", opts.System, base)
	}

	l := &loader{base: base, log: log, result: &Result{}}

	l.loadScreens()
	for _, t := range []doc.Type{doc.Component, doc.Requirement, doc.Rule, doc.Flow} {
		l.loadFolder(t)
	}

	log.Debug("corpus loaded",
		zap.String("system", opts.System),
		zap.Int("documents", len(l.result.Documents)),
		zap.Int("findings", len(l.result.Findings)))

	return l.result, nil
}

type loader struct {
	base   string
	log    *zap.Logger
	result *Result
}

// glob matches document files for one schema, sorted so that load order (and
// with it finding and registration order) is stable across runs.
func (l *loader) glob(s doc.Schema) []string {
	pattern := filepath.Join(l.base, s.Dir, s.Glob)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		// Patterns are fixed in the schema table; a bad one is a programming
		// error, not a corpus problem.
		panic(fmt.Sprintf("bad document glob %q: %v", pattern, err))
	}
	sort.Strings(matches)
	return matches
}

// loadScreens walks 21-screens/*/screen.yml and also picks up the optional
// messages.yml next to each screen file. Messages have no folder of their
// own in the corpus convention.
func (l *loader) loadScreens() {
	for _, path := range l.glob(doc.Schemas[doc.Screen]) {
		if raw, ok := l.parse(path); ok {
			l.add(path, doc.Screen, raw, extractScreen(raw))
		}

		// messages.yml is its own file; a malformed screen.yml must not
		// take the sibling messages down with it.
		msgPath := filepath.Join(filepath.Dir(path), "messages.yml")
		if _, err := os.Stat(msgPath); err == nil {
			l.loadMessages(msgPath)
		}
	}
}

// loadMessages loads every entry of a messages.yml block as its own Message
// document sharing the file's source path.
func (l *loader) loadMessages(path string) {
	raw, ok := l.parse(path)
	if !ok {
		return
	}
	for _, entry := range asList(raw["messages"]) {
		m, ok := entry.(map[string]any)
		if !ok {
			l.finding(findings.Finding{
				Phase:    "load",
				Kind:     findings.ParseError,
				Severity: findings.Error,
				Message:  "message entry is not a mapping",
				Path:     path,
				Field:    "messages",
			})
			continue
		}
		l.add(path, doc.Message, m, nil)
	}
}

// loadFolder loads one numbered folder of single-document files
func (l *loader) loadFolder(t doc.Type) {
	extract := extractors[t]
	for _, path := range l.glob(doc.Schemas[t]) {
		raw, ok := l.parse(path)
		if !ok {
			continue
		}
		l.add(path, t, raw, extract(raw))
	}
}

// parse reads and unmarshals one YAML file. A failure yields a ParseError
// finding and ok=false.
func (l *loader) parse(path string) (map[string]any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.finding(findings.Finding{
			Phase:    "load",
			Kind:     findings.ParseError,
			Severity: findings.Error,
			Message:  fmt.Sprintf("cannot read file: %v", err),
			Path:     path,
		})
		return nil, false
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		l.finding(findings.Finding{
			Phase:    "load",
			Kind:     findings.ParseError,
			Severity: findings.Error,
			Message:  fmt.Sprintf("malformed metadata block: %v", err),
			Path:     path,
		})
		return nil, false
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, true
}

// add builds a Document from parsed metadata and appends it to the result.
// A document without a declared ID is recorded as a finding and dropped.
func (l *loader) add(path string, t doc.Type, raw map[string]any, refs map[string][]string) {
	id := scalar(raw["id"])
	if id == "" {
		l.finding(findings.Finding{
			Phase:    "load",
			Kind:     findings.MissingID,
			Severity: findings.Error,
			Message:  fmt.Sprintf("%s document has no id", t),
			Path:     path,
		})
		return
	}

	d := &doc.Document{
		ID:         id,
		Type:       t,
		Title:      title(raw),
		SourcePath: path,
		Fields:     scalarFields(raw),
		References: refs,
	}
	l.result.Documents = append(l.result.Documents, d)

	l.log.Debug("loaded document",
		zap.String("id", d.ID),
		zap.Stringer("type", d.Type),
		zap.String("path", path))
}

func (l *loader) finding(f findings.Finding) {
	l.result.Findings = append(l.result.Findings, f)
}

// title reads the document title, accepting the older "name" key that parts
// of the corpus still use.
func title(raw map[string]any) string {
	if t := scalar(raw["title"]); t != "" {
		return t
	}
	return scalar(raw["name"])
}

// scalarFields keeps the top-level scalar metadata keys of a document.
// Nested structures are reference material handled by the extractors.
func scalarFields(raw map[string]any) map[string]string {
	fields := make(map[string]string)
	for k, v := range raw {
		if s := scalar(v); s != "" {
			fields[k] = s
		}
	}
	if t, ok := fields["title"]; !ok || t == "" {
		if n := fields["name"]; n != "" {
			fields["title"] = n
		}
	}
	return fields
}
