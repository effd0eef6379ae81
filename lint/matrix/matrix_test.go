package matrix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsascode/doclint/lint/doc"
	"github.com/docsascode/doclint/lint/registry"
	"github.com/docsascode/doclint/lint/resolver"
)

func corpus(docs []*doc.Document) (*registry.Registry, []resolver.Edge) {
	reg, _ := registry.Build(docs)
	edges, _ := resolver.Resolve(docs, reg)
	return reg, edges
}

func d(id string, t doc.Type, refs map[string][]string) *doc.Document {
	return &doc.Document{ID: id, Type: t, Title: id, SourcePath: id + ".yml", References: refs}
}

func TestScreenToRequirementRow(t *testing.T) {
	reg, edges := corpus([]*doc.Document{
		d("TELA_LOGIN", doc.Screen, nil),
		d("RF-001", doc.Requirement, map[string][]string{"scope.screen": {"TELA_LOGIN"}}),
	})

	rows := Build(reg, edges)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Screen: "TELA_LOGIN", Requirement: "RF-001"}, rows[0])
}

func TestFullChain(t *testing.T) {
	reg, edges := corpus([]*doc.Document{
		d("TELA_LOGIN", doc.Screen, map[string][]string{"components": {"INP_EMAIL"}}),
		d("INP_EMAIL", doc.Component, map[string][]string{"validations": {"RF-001"}}),
		d("RF-001", doc.Requirement, map[string][]string{"links.rules": {"RN-001"}}),
		d("RN-001", doc.Rule, map[string][]string{"message.ref": {"MSG-ERRO"}}),
		d("UC-001-login", doc.Flow, map[string][]string{"steps.refs": {"RN-001"}}),
		d("MSG-ERRO", doc.Message, nil),
	})

	rows := Build(reg, edges)

	// RN-001 links both deeper neighbors, so two maximal chains pass
	// through the full screen prefix
	require.Len(t, rows, 2)
	assert.Equal(t, Row{
		Screen: "TELA_LOGIN", Component: "INP_EMAIL", Requirement: "RF-001",
		Rule: "RN-001", Message: "MSG-ERRO",
	}, rows[0])
	assert.Equal(t, Row{
		Screen: "TELA_LOGIN", Component: "INP_EMAIL", Requirement: "RF-001",
		Rule: "RN-001", Flow: "UC-001-login",
	}, rows[1])
}

func TestIsolatedScreenGetsARow(t *testing.T) {
	reg, edges := corpus([]*doc.Document{
		d("TELA_MENU", doc.Screen, nil),
	})

	rows := Build(reg, edges)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Screen: "TELA_MENU"}, rows[0])
}

func TestUnreachableEntitiesGetPartialRows(t *testing.T) {
	reg, edges := corpus([]*doc.Document{
		d("TELA_LOGIN", doc.Screen, nil),
		// linked to each other but to no screen
		d("RF-009", doc.Requirement, map[string][]string{"links.rules": {"RN-009"}}),
		d("RN-009", doc.Rule, nil),
		// fully isolated
		d("MSG-SOLTO", doc.Message, nil),
	})

	rows := Build(reg, edges)
	require.Len(t, rows, 3)

	assert.Contains(t, rows, Row{Screen: "TELA_LOGIN"})
	assert.Contains(t, rows, Row{Requirement: "RF-009", Rule: "RN-009"})
	assert.Contains(t, rows, Row{Message: "MSG-SOLTO"})
}

func TestEntityCoveredByPartialRowIsNotRepeated(t *testing.T) {
	reg, edges := corpus([]*doc.Document{
		d("INP_SOLTO", doc.Component, map[string][]string{"validations": {"RF-009"}}),
		d("RF-009", doc.Requirement, nil),
	})

	rows := Build(reg, edges)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Component: "INP_SOLTO", Requirement: "RF-009"}, rows[0])
}

func TestRowOrderByLeadingID(t *testing.T) {
	reg, edges := corpus([]*doc.Document{
		d("TELA_MENU", doc.Screen, nil),
		d("TELA_LOGIN", doc.Screen, nil),
		// partial row whose leading ID sorts before the screens
		d("RF-001", doc.Requirement, nil),
	})

	rows := Build(reg, edges)
	require.Len(t, rows, 3)
	assert.Equal(t, "RF-001", rows[0].Leading())
	assert.Equal(t, "TELA_LOGIN", rows[1].Leading())
	assert.Equal(t, "TELA_MENU", rows[2].Leading())
}

func TestCyclicReferencesTerminate(t *testing.T) {
	// a flow referencing a rule whose message loops back via the flow's
	// own refs must not hang chain enumeration
	reg, edges := corpus([]*doc.Document{
		d("TELA_LOGIN", doc.Screen, map[string][]string{"flows": {"UC-001-login"}}),
		d("UC-001-login", doc.Flow, map[string][]string{"steps.refs": {"RN-001", "UC-001-login"}}),
		d("RN-001", doc.Rule, map[string][]string{"applies_to.screens": {"TELA_LOGIN"}}),
	})

	rows := Build(reg, edges)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Equal(t, "TELA_LOGIN", row.Screen)
	}
}

func TestMarkdownArtifact(t *testing.T) {
	rows := []Row{
		{Screen: "TELA_LOGIN", Requirement: "RF-001"},
	}

	md := string(Markdown(rows))
	assert.Contains(t, md, "| Screen | Component | Requirement | Rule | Flow | Message |")
	assert.Contains(t, md, "| `TELA_LOGIN` |  | `RF-001` |  |  |  |")
}

func TestMarkdownIsDeterministic(t *testing.T) {
	docs := []*doc.Document{
		d("TELA_LOGIN", doc.Screen, map[string][]string{"components": {"INP_EMAIL", "BTN_ENTRAR"}}),
		d("INP_EMAIL", doc.Component, map[string][]string{"validations": {"RN-001"}}),
		d("BTN_ENTRAR", doc.Component, nil),
		d("RN-001", doc.Rule, nil),
	}

	reg, edges := corpus(docs)
	first := Markdown(Build(reg, edges))

	reg2, edges2 := corpus(docs)
	second := Markdown(Build(reg2, edges2))

	assert.True(t, bytes.Equal(first, second), "matrix artifact must be byte-identical across runs")
	assert.Equal(t, 2, strings.Count(string(first), "TELA_LOGIN"))
}
