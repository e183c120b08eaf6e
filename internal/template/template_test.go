package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		args []string
		want string
	}{
		{"single", "Blighted {0}", []string{"Strand Map"}, "Blighted Strand Map"},
		{"two", "{0}'s {1}", []string{"Fenumus", "Lung"}, "Fenumus's Lung"},
		{"partial", "{0}'s {1}", []string{"Fenumus"}, "Fenumus's {1}"},
		{"no placeholder", "Corrupted", nil, "Corrupted"},
		{"stat marker untouched", "#% increased {0}", []string{"Damage"}, "#% increased Damage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.tpl, tt.args...))
		})
	}
}

func TestPatternArgs(t *testing.T) {
	p := Compile("Anomalous {0}")

	args, ok := p.Args("Anomalous Added Fire Damage Support")
	require.True(t, ok)
	assert.Equal(t, []string{"Added Fire Damage Support"}, args)

	_, ok = p.Args("Divergent Added Fire Damage Support")
	assert.False(t, ok)

	reordered := Compile("{1} von {0}")
	args, ok = reordered.Args("Lunge von Fenumus")
	require.True(t, ok)
	assert.Equal(t, []string{"Fenumus", "Lunge"}, args)
}

func TestPatternQuotesLiterals(t *testing.T) {
	p := Compile("{0} (Einhar)")
	args, ok := p.Args("The Pale Court (Einhar)")
	require.True(t, ok)
	assert.Equal(t, "The Pale Court", args[0])

	_, ok = p.Args("The Pale Court Einhar")
	assert.False(t, ok)
}

func TestPatternValues(t *testing.T) {
	tests := []struct {
		name  string
		tpl   string
		line  string
		want  []float64
		match bool
	}{
		{"percent", "#% increased Physical Damage", "120% increased Physical Damage", []float64{120}, true},
		{"range", "Adds # to # Fire Damage", "Adds 12 to 24 Fire Damage", []float64{12, 24}, true},
		{"signed", "# to maximum Life", "+85 to maximum Life", []float64{85}, true},
		{"decimal", "#% of Physical Attack Damage Leeched as Life", "0.4% of Physical Attack Damage Leeched as Life", []float64{0.4}, true},
		{"mismatch", "# to maximum Life", "+85 to maximum Mana", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compile(tt.tpl).Values(tt.line)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileIsCached(t *testing.T) {
	a := Compile("# to Strength")
	b := Compile("# to Strength")
	assert.Same(t, a, b)
	assert.Equal(t, "# to Strength", a.Source())
}
