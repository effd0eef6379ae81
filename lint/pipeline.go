// Package lint runs the documentation validation pipeline: load the corpus
// snapshot, register IDs, resolve cross-references, apply structural rules,
// and build the traceability matrix. Findings accumulate across all phases;
// only an unreadable corpus aborts a run.
package lint

import (
	"go.uber.org/zap"

	"github.com/docsascode/doclint/lint/doc"
	"github.com/docsascode/doclint/lint/findings"
	"github.com/docsascode/doclint/lint/loader"
	"github.com/docsascode/doclint/lint/matrix"
	"github.com/docsascode/doclint/lint/registry"
	"github.com/docsascode/doclint/lint/resolver"
	"github.com/docsascode/doclint/lint/validator"
)

// Options configures one pipeline run
type Options struct {
	// Root is the corpus root directory.
	Root string

	// System scopes the run to one subtree under 20-systems/.
	System string

	// Logger receives debug-level phase and document events. Nil means no
	// logging.
	Logger *zap.Logger
}

// Result is the outcome of one run over a corpus snapshot
type Result struct {
	Documents []*doc.Document
	Registry  *registry.Registry
	Edges     []resolver.Edge
	Matrix    []matrix.Row

	// Findings from every phase, sorted by source path then field for
	// stable, diff-friendly reports.
	Findings []findings.Finding
}

// HasErrors reports whether any error-severity finding was produced
func (r *Result) HasErrors() bool {
	for _, f := range r.Findings {
		if f.IsError() {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any warning-severity finding was produced
func (r *Result) HasWarnings() bool {
	for _, f := range r.Findings {
		if f.IsWarning() {
			return true
		}
	}
	return false
}

// Run executes the full pipeline over the scoped corpus. The returned error
// is fatal (unreadable root or unknown system); every document-level problem
// is a finding in the result instead.
func Run(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Debug("loading corpus", zap.String("root", opts.Root), zap.String("system", opts.System))
	loaded, err := loader.Load(loader.Options{Root: opts.Root, System: opts.System}, log)
	if err != nil {
		return nil, err
	}

	res := &Result{Documents: loaded.Documents}
	res.Findings = append(res.Findings, loaded.Findings...)

	log.Debug("registering ids", zap.Int("documents", len(loaded.Documents)))
	reg, dupes := registry.Build(loaded.Documents)
	res.Registry = reg
	res.Findings = append(res.Findings, dupes...)

	log.Debug("resolving references")
	edges, broken := resolver.Resolve(loaded.Documents, reg)
	res.Edges = edges
	res.Findings = append(res.Findings, broken...)

	log.Debug("validating documents")
	res.Findings = append(res.Findings, validator.Validate(loaded.Documents, reg, edges)...)

	log.Debug("building matrix", zap.Int("edges", len(edges)))
	res.Matrix = matrix.Build(reg, edges)

	findings.Sort(res.Findings)

	log.Debug("run complete",
		zap.Int("rows", len(res.Matrix)),
		zap.Int("findings", len(res.Findings)))

	return res, nil
}
