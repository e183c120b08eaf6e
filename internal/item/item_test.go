package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIsGem(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryGem, true},
		{"gem.supportgem", true},
		{"gem.activegem", true},
		{"gemstone", false},
		{CategoryMap, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.IsGem())
		})
	}
}

func TestCategoryIsMap(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryMap, true},
		{"map.fragment", true},
		{"mapping", false},
		{"gem.activegem", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.IsMap())
		})
	}
}

func TestLinks(t *testing.T) {
	it := &Item{Sockets: []SocketGroup{
		{Colors: []string{"R", "G"}},
		{Colors: []string{"B", "B", "W"}},
		{Colors: []string{"A"}},
	}}
	assert.Equal(t, 3, it.Links())
	assert.Equal(t, 0, (&Item{}).Links())
}

func TestEnsureProperties(t *testing.T) {
	it := &Item{}
	p := it.EnsureProperties()
	p.Quality = 20
	assert.Same(t, p, it.EnsureProperties())
	assert.Equal(t, 20, it.Properties.Quality)
}
