// Package matrix builds the traceability matrix from the resolved reference
// graph: every maximal chain from a screen down through components,
// requirements, rules and flows to messages, plus partial rows for entities
// no screen reaches. Row order is fully deterministic so regenerating from
// unchanged input reproduces the artifact byte for byte.
package matrix

import (
	"sort"

	"github.com/docsascode/doclint/lint/doc"
	"github.com/docsascode/doclint/lint/registry"
	"github.com/docsascode/doclint/lint/resolver"
)

// Row is one traceability chain. Cells are empty where the chain has no
// link at that level.
type Row struct {
	Screen      string
	Component   string
	Requirement string
	Rule        string
	Flow        string
	Message     string
}

// Cells returns the row in column order
func (r Row) Cells() [6]string {
	return [6]string{r.Screen, r.Component, r.Requirement, r.Rule, r.Flow, r.Message}
}

// Leading returns the first non-empty cell, the row's primary sort key
func (r Row) Leading() string {
	for _, c := range r.Cells() {
		if c != "" {
			return c
		}
	}
	return ""
}

func level(t doc.Type) int {
	for i, lt := range doc.Types {
		if lt == t {
			return i
		}
	}
	return -1
}

// Build enumerates the matrix rows from the resolved edge set. Edges are
// treated as undirected adjacency between levels: a screen listing a
// requirement and a requirement scoped to a screen both link the pair.
func Build(reg *registry.Registry, edges []resolver.Edge) []Row {
	b := &builder{
		reg:     reg,
		adj:     adjacency(edges),
		covered: make(map[string]bool),
	}

	// Full chains first: every maximal descending path from every screen.
	for _, id := range reg.IDs(doc.Screen) {
		b.chains(id)
	}

	// Partial rows for whatever no screen chain touched, front-filled with
	// empty cells. Walking levels in order lets an unreached component's
	// chain cover its own downstream entities.
	for _, t := range doc.Types[1:] {
		for _, id := range reg.IDs(t) {
			if !b.covered[id] {
				b.chains(id)
			}
		}
	}

	sort.Slice(b.rows, func(i, j int) bool {
		a, c := b.rows[i], b.rows[j]
		if la, lc := a.Leading(), c.Leading(); la != lc {
			return la < lc
		}
		return less(a.Cells(), c.Cells())
	})

	return b.rows
}

func less(a, b [6]string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func adjacency(edges []resolver.Edge) map[string][]string {
	seen := make(map[string]map[string]bool)
	add := func(a, b string) {
		if a == b {
			return
		}
		if seen[a] == nil {
			seen[a] = make(map[string]bool)
		}
		seen[a][b] = true
	}
	for _, e := range edges {
		add(e.Source, e.Target)
		add(e.Target, e.Source)
	}

	adj := make(map[string][]string, len(seen))
	for id, neighbors := range seen {
		list := make([]string, 0, len(neighbors))
		for n := range neighbors {
			list = append(list, n)
		}
		sort.Strings(list)
		adj[id] = list
	}
	return adj
}

type builder struct {
	reg     *registry.Registry
	adj     map[string][]string
	covered map[string]bool
	rows    []Row
}

// chains emits every maximal descending chain starting at id
func (b *builder) chains(id string) {
	b.walk([]string{id})
}

// walk extends the chain to every neighbor at a strictly deeper level. The
// level ordering guarantees termination even when the raw reference graph is
// cyclic; the on-path check guards any future same-level links.
func (b *builder) walk(path []string) {
	last := path[len(path)-1]
	lastLevel := b.levelOf(last)

	extended := false
	for _, next := range b.adj[last] {
		if b.levelOf(next) <= lastLevel || onPath(path, next) {
			continue
		}
		b.walk(append(path, next))
		extended = true
	}

	if !extended {
		b.emit(path)
	}
}

func (b *builder) levelOf(id string) int {
	d, ok := b.reg.Resolve(id)
	if !ok {
		return -1
	}
	return level(d.Type)
}

func (b *builder) emit(path []string) {
	var cells [6]string
	for _, id := range path {
		if l := b.levelOf(id); l >= 0 {
			cells[l] = id
		}
		b.covered[id] = true
	}
	b.rows = append(b.rows, Row{
		Screen:      cells[0],
		Component:   cells[1],
		Requirement: cells[2],
		Rule:        cells[3],
		Flow:        cells[4],
		Message:     cells[5],
	})
}

func onPath(path []string, id string) bool {
	for _, p := range path {
		if p == id {
			return true
		}
	}
	return false
}
