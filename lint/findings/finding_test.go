package findings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(Warning)
	require.NoError(t, err)
	assert.Equal(t, `"warning"`, string(data))

	var s Severity
	require.NoError(t, json.Unmarshal([]byte(`"error"`), &s))
	assert.Equal(t, Error, s)

	require.NoError(t, json.Unmarshal([]byte(`"bogus"`), &s))
	assert.Equal(t, Error, s, "unknown severities default to error")
}

func TestSortIsStableByPathFieldMessage(t *testing.T) {
	list := []Finding{
		{Path: "b.yml", Field: "scope", Message: "z"},
		{Path: "a.yml", Field: "links", Message: "y"},
		{Path: "a.yml", Field: "links", Message: "x"},
		{Path: "a.yml", Field: "id", Message: "w"},
	}

	Sort(list)

	assert.Equal(t, "a.yml", list[0].Path)
	assert.Equal(t, "id", list[0].Field)
	assert.Equal(t, "x", list[1].Message)
	assert.Equal(t, "y", list[2].Message)
	assert.Equal(t, "b.yml", list[3].Path)
}

func TestCountAndFilters(t *testing.T) {
	list := []Finding{
		{Kind: BrokenReference, Severity: Error},
		{Kind: BrokenReference, Severity: Error},
		{Kind: Orphan, Severity: Warning},
	}

	counts := Count(list)
	assert.Equal(t, 2, counts[BrokenReference])
	assert.Equal(t, 1, counts[Orphan])

	assert.Len(t, Errors(list), 2)
	assert.Len(t, Warnings(list), 1)
}

func TestFindingString(t *testing.T) {
	f := Finding{
		Kind:     BrokenReference,
		Severity: Error,
		Message:  "RF-003 references TELA_MISSING, which does not exist",
		Path:     "docs/RF-003.yml",
		Field:    "scope.screen",
	}

	s := f.String()
	assert.Contains(t, s, "docs/RF-003.yml")
	assert.Contains(t, s, "scope.screen")
	assert.Contains(t, s, "broken_reference")
}
