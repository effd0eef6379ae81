// Package registry indexes loaded documents by ID. The registry is built
// once during loading and read-only afterwards; later phases only resolve.
package registry

import (
	"fmt"
	"sort"

	"github.com/docsascode/doclint/lint/doc"
	"github.com/docsascode/doclint/lint/findings"
)

// Registry maps each corpus ID to its document
type Registry struct {
	docs map[string]*doc.Document
}

// New creates an empty registry
func New() *Registry {
	return &Registry{docs: make(map[string]*doc.Document)}
}

// Build registers every document in order and returns the registry together
// with one DuplicateID finding per extra registration.
func Build(docs []*doc.Document) (*Registry, []findings.Finding) {
	r := New()
	var fs []findings.Finding
	for _, d := range docs {
		if f := r.Register(d); f != nil {
			fs = append(fs, *f)
		}
	}
	return r, fs
}

// Register inserts the document under its ID. First registration wins: a
// duplicate is reported and does not overwrite the existing entry, keeping
// resolution deterministic regardless of which file carried the collision.
func (r *Registry) Register(d *doc.Document) *findings.Finding {
	if existing, ok := r.docs[d.ID]; ok {
		return &findings.Finding{
			Phase:    "register",
			Kind:     findings.DuplicateID,
			Severity: findings.Error,
			Message: fmt.Sprintf("id %s already declared in %s",
				d.ID, existing.SourcePath),
			Path:  d.SourcePath,
			DocID: d.ID,
		}
	}
	r.docs[d.ID] = d
	return nil
}

// IDs returns every registered ID of the given type in sorted order
func (r *Registry) IDs(t doc.Type) []string {
	var ids []string
	for id, d := range r.docs {
		if d.Type == t {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Resolve looks up a document by ID
func (r *Registry) Resolve(id string) (*doc.Document, bool) {
	d, ok := r.docs[id]
	return d, ok
}

// Len returns the number of registered documents
func (r *Registry) Len() int {
	return len(r.docs)
}
