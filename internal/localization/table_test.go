package localization

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFirstMatchWins(t *testing.T) {
	table := NewTable([]Entry{
		{ID: "MapStrand", Text: "Strand Map"},
		{ID: "MapStrandLegacy", Text: "Strand Map"},
		{ID: "MapStrand", Text: "Shadowed"},
	})

	assert.Equal(t, 2, table.Len())

	id, ok := table.ID("Strand Map")
	require.True(t, ok)
	assert.Equal(t, "MapStrand", id)

	text, ok := table.Text("MapStrand")
	require.True(t, ok)
	assert.Equal(t, "Strand Map", text, "repeated id keeps its first text")
}

func TestTableStatTemplatesCompiledOnce(t *testing.T) {
	entries := make([]Entry, 0, 6000)
	for i := range 6000 {
		entries = append(entries, Entry{ID: fmt.Sprintf("stat_%d", i), Text: fmt.Sprintf("<<set:MS>>#%% increased Stat %d", i)})
	}
	table := NewTable(entries)

	first := table.StatTemplates()
	require.Len(t, first, 6000)
	second := table.StatTemplates()
	for i := range first {
		require.Same(t, first[i].Pattern, second[i].Pattern)
	}

	last := first[len(first)-1]
	assert.Equal(t, "stat_5999", last.ID)
	assert.Equal(t, "#% increased Stat 5999", last.Pattern.Source())
	values, ok := last.Pattern.Values("12% increased Stat 5999")
	require.True(t, ok)
	assert.Equal(t, []float64{12}, values)
}

func TestLoadJSONSource(t *testing.T) {
	src, err := NewJSONSource("testdata")
	require.NoError(t, err)

	tables, err := Load(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, []Language{English, German, Korean}, tables.Languages())

	_, ok := tables.Table(German, Words)
	assert.False(t, ok)

	words, ok := tables.Table(Korean, Words)
	require.True(t, ok)
	id, ok := words.ID("헤드헌터")
	require.True(t, ok)
	assert.Equal(t, "Headhunter", id)

	base, ok := tables.Table(English, BaseItemTypes)
	require.True(t, ok)
	id, ok = base.ID("Leather Belt")
	require.True(t, ok, "markup in table text is stripped for reverse lookup")
	assert.Equal(t, "BeltLeather", id)

	c, ok := tables.Category("BeltLeather")
	require.True(t, ok)
	assert.Equal(t, "accessory.belt", c)

	collisions := Check(NewResolver(tables))
	require.Len(t, collisions, 1)
	assert.Equal(t, "Dup2", collisions[0].ID)
	assert.Equal(t, "Dup1", collisions[0].Winner)
	assert.Equal(t, ClientStrings, collisions[0].Domain)
}

func TestLoadRequiresEnglish(t *testing.T) {
	src, err := NewJSONSource(t.TempDir())
	require.NoError(t, err)

	_, err = Load(context.Background(), src)
	assert.True(t, errors.Is(err, ErrMissingEnglish))
}

type failingSource struct{}

func (failingSource) LoadTable(context.Context, Language, Domain) (*Table, error) {
	return nil, errors.New("connection refused")
}

func (failingSource) LoadCategories(context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

func TestLoadPropagatesSourceErrors(t *testing.T) {
	_, err := Load(context.Background(), failingSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
