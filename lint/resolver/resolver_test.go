package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsascode/doclint/lint/doc"
	"github.com/docsascode/doclint/lint/findings"
	"github.com/docsascode/doclint/lint/registry"
)

func TestResolveEdges(t *testing.T) {
	docs := []*doc.Document{
		{ID: "TELA_LOGIN", Type: doc.Screen, SourcePath: "screen.yml",
			References: map[string][]string{"requirements": {"RF-001"}}},
		{ID: "RF-001", Type: doc.Requirement, SourcePath: "RF-001.yml",
			References: map[string][]string{"scope.screen": {"TELA_LOGIN"}}},
	}
	reg, _ := registry.Build(docs)

	edges, fs := Resolve(docs, reg)
	require.Empty(t, fs)
	assert.Equal(t, []Edge{
		{Source: "TELA_LOGIN", Field: "requirements", Target: "RF-001"},
		{Source: "RF-001", Field: "scope.screen", Target: "TELA_LOGIN"},
	}, edges)
}

func TestBrokenReference(t *testing.T) {
	docs := []*doc.Document{
		{ID: "RF-003", Type: doc.Requirement, SourcePath: "RF-003.yml",
			References: map[string][]string{"scope.screen": {"TELA_MISSING"}}},
	}
	reg, _ := registry.Build(docs)

	edges, fs := Resolve(docs, reg)
	assert.Empty(t, edges)
	require.Len(t, fs, 1)

	f := fs[0]
	assert.Equal(t, findings.BrokenReference, f.Kind)
	assert.Equal(t, findings.Error, f.Severity)
	assert.Equal(t, "RF-003", f.DocID)
	assert.Equal(t, "scope.screen", f.Field)
	assert.Equal(t, "TELA_MISSING", f.Target)
}

func TestDuplicateDanglingMentionsAreNotDeduplicated(t *testing.T) {
	docs := []*doc.Document{
		{ID: "TELA_LOGIN", Type: doc.Screen, SourcePath: "screen.yml",
			References: map[string][]string{"rules": {"RN-999", "RN-999"}}},
	}
	reg, _ := registry.Build(docs)

	_, fs := Resolve(docs, reg)
	require.Len(t, fs, 2, "each occurrence yields its own finding")
	assert.Equal(t, fs[0].Target, fs[1].Target)
}

func TestSelfReferenceResolves(t *testing.T) {
	docs := []*doc.Document{
		{ID: "UC-001-login", Type: doc.Flow, SourcePath: "UC-001-login.yml",
			References: map[string][]string{"steps.refs": {"UC-001-login"}}},
	}
	reg, _ := registry.Build(docs)

	edges, fs := Resolve(docs, reg)
	assert.Empty(t, fs)
	require.Len(t, edges, 1)
}
