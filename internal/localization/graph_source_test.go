package localization

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryParents(t *testing.T) {
	tests := []struct {
		category string
		want     map[string]string
	}{
		{"map", map[string]string{}},
		{"gem.activegem", map[string]string{"gem.activegem": "gem"}},
		{"a.b.c", map[string]string{"a.b.c": "a.b", "a.b": "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, maps.Collect(categoryParents(tt.category)))
		})
	}
}

func TestSeedStatementsReplacePreviousSeed(t *testing.T) {
	tables := NewTables()
	tables.Set(English, BaseItemTypes, NewTable([]Entry{
		{ID: "SkillGrace", Text: "Grace"},
		{ID: "MapStrand", Text: "Strand Map"},
	}))
	tables.SetCategories(map[string]string{
		"SkillGrace": "gem.activegem",
		"SkillHaste": "gem.activegem",
		"MapStrand":  "map",
	})

	statements, total := seedStatements(tables)
	assert.Equal(t, 2, total)

	require.GreaterOrEqual(t, len(statements), 3)
	assert.Contains(t, statements[0].cypher, "DETACH DELETE e")
	assert.Contains(t, statements[1].cypher, "[r:IN_CATEGORY]")
	assert.Contains(t, statements[1].cypher, "DELETE r")
	assert.Contains(t, statements[2].cypher, "[r:SUBCATEGORY_OF]")

	var categoryLinks, parentLinks []map[string]any
	for _, st := range statements[3:] {
		switch {
		case st.params["id"] != nil:
			categoryLinks = append(categoryLinks, st.params)
		case st.params["parent"] != nil:
			parentLinks = append(parentLinks, st.params)
		}
	}
	assert.Equal(t, []map[string]any{
		{"id": "MapStrand", "category": "map"},
		{"id": "SkillGrace", "category": "gem.activegem"},
		{"id": "SkillHaste", "category": "gem.activegem"},
	}, categoryLinks)
	assert.Equal(t, []map[string]any{
		{"category": "gem.activegem", "parent": "gem"},
	}, parentLinks)
}
