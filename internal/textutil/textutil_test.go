package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no markup", "Brine King's Reef Map", "Brine King's Reef Map"},
		{"leading token", "<<set:MS>><<set:M>><<set:S>>Bloodstained Sands", "Bloodstained Sands"},
		{"inner token", "Added <<set:S>>Fire Damage Support", "Added Fire Damage Support"},
		{"unterminated", "<<set:MS Map", "<<set:MS Map"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a\nb\nc", Normalize("a\r\nb\rc"))
	// U+0065 U+0301 composes to U+00E9.
	assert.Equal(t, "\u00e9", Normalize("e\u0301"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Gegenstands...", Truncate("Gegenstandsklasse", 11))
	assert.Equal(t, "Maps", Truncate("Maps", 11))
	assert.Equal(t, "희귀...", Truncate("희귀도입니다", 2))
}

func TestHashStable(t *testing.T) {
	assert.Equal(t, Hash("Rarity: Rare"), Hash("Rarity: Rare"))
	assert.NotEqual(t, Hash("Rarity: Rare"), Hash("Rarity: Magic"))
	assert.Len(t, Hash(""), 64)
}
