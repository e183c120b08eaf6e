package parser

import (
	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
)

// FlagParser matches a section consisting of a single marker line, such as
// "Corrupted", and sets a flag on the item.
type FlagParser struct {
	kind   item.SectionKind
	textID string
	set    func(*item.Item)
}

// NewFlagParser creates a parser for the marker with client string textID.
func NewFlagParser(kind item.SectionKind, textID string, set func(*item.Item)) *FlagParser {
	return &FlagParser{kind: kind, textID: textID, set: set}
}

func (p *FlagParser) Kind() item.SectionKind { return p.kind }

func (p *FlagParser) Optional() bool { return true }

func (p *FlagParser) Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error) {
	marker, err := loc.ClientString(p.textID)
	if err != nil {
		log.Warn().Err(err).Str("section", string(p.kind)).Msg("Marker unavailable")
		return nil, nil
	}

	for _, s := range exported.Sections {
		if len(s.Lines) == 1 && s.Lines[0] == marker {
			p.set(target)
			return []*item.Section{s}, nil
		}
	}
	return nil, nil
}
