package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"item-parser/internal/dump"
	"item-parser/internal/item"
	"item-parser/internal/localization"
	"item-parser/internal/localization/localizationtest"
)

// stubParser consumes every section whose first line equals line.
type stubParser struct {
	kind     item.SectionKind
	optional bool
	line     string
	seen     []int
}

func (p *stubParser) Kind() item.SectionKind { return p.kind }

func (p *stubParser) Optional() bool { return p.optional }

func (p *stubParser) Parse(_ *localization.Localizer, exported *item.ExportedItem, _ *item.Item) ([]*item.Section, error) {
	var out []*item.Section
	for _, s := range exported.Sections {
		p.seen = append(p.seen, s.Index)
		if s.Lines[0] == p.line {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestNewChain_Order(t *testing.T) {
	tests := []struct {
		name    string
		parsers []SectionParser
		wantErr bool
	}{
		{"default", DefaultParsers(), false},
		{"empty", nil, true},
		{"stats first", []SectionParser{&StatsParser{}, &RarityParser{}}, true},
		{"duplicate", []SectionParser{&RarityParser{}, &StatsParser{}, &StatsParser{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChain(tt.parsers...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.Panics(t, func() { MustNewChain(&StatsParser{}) })
}

func TestChain_Kinds(t *testing.T) {
	c := MustNewChain(DefaultParsers()...)

	assert.Equal(t, []item.SectionKind{
		item.SectionRarity,
		item.SectionProperties,
		item.SectionRequirements,
		item.SectionSockets,
		item.SectionItemLevel,
		item.SectionInfluences,
		item.SectionCorrupted,
		item.SectionUnidentified,
		item.SectionStats,
	}, c.Kinds())
}

func TestChain_ConsumedSectionsAreHidden(t *testing.T) {
	first := &stubParser{kind: item.SectionCorrupted, optional: true, line: "A"}
	second := &stubParser{kind: item.SectionStats, optional: true, line: "A"}
	c := MustNewChain(&RarityParser{}, first, second)

	exported := dump.Split("Item Class: Maps\nRarity: Normal\nStrand Map\n--------\nA\n--------\nB")
	used, err := c.Run(localizationtest.Resolver().For(localization.English), exported, &item.Item{}, nil)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, first.seen)
	assert.Equal(t, []int{2}, second.seen)
	require.Len(t, used, 2)
	assert.Equal(t, 0, used[0].Index)
	assert.Equal(t, 1, used[1].Index)
}

func TestChain_RequiredMissIsFatal(t *testing.T) {
	required := &stubParser{kind: item.SectionSockets, line: "nothing"}
	c := MustNewChain(&RarityParser{}, required)

	target := &item.Item{}
	exported := dump.Split("Item Class: Maps\nRarity: Normal\nStrand Map")
	_, err := c.Run(localizationtest.Resolver().For(localization.English), exported, target, nil)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, RequiredSectionParseFailed, pe.Kind)
	assert.Equal(t, item.SectionSockets, pe.Section)
	assert.Equal(t, "MapStrand", target.TypeID)
}

func TestChain_FilterSkipsOptionalParsers(t *testing.T) {
	skipped := &stubParser{kind: item.SectionCorrupted, optional: true, line: "A"}
	c := MustNewChain(&RarityParser{}, skipped)

	exported := dump.Split("Item Class: Maps\nRarity: Normal\nStrand Map\n--------\nA")
	target := &item.Item{}
	_, err := c.Run(localizationtest.Resolver().For(localization.English), exported, target, map[item.SectionKind]bool{item.SectionStats: true})

	require.NoError(t, err)
	assert.Empty(t, skipped.seen)
	assert.Equal(t, "MapStrand", target.TypeID)
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"+20% (augmented)", []int{20}},
		{"3/10", []int{3, 10}},
		{"-5", []int{-5}},
		{"20 (Max)", []int{20}},
		{"none", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNumbers(tt.in))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "UnknownBaseType", UnknownBaseType.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())

	err := &ParseError{Kind: UnrecognizedRarity, Section: item.SectionRarity, Detail: `"Legendary"`}
	assert.Equal(t, `UnrecognizedRarity in rarity: "Legendary"`, err.Error())
}
