package parser

import (
	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
)

const idItemLevel = "ItemDisplayStringItemLevel"

// ItemLevelParser reads the "Item Level: N" line.
type ItemLevelParser struct{}

func (p *ItemLevelParser) Kind() item.SectionKind { return item.SectionItemLevel }

func (p *ItemLevelParser) Optional() bool { return true }

func (p *ItemLevelParser) Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error) {
	label, err := loc.ClientString(idItemLevel)
	if err != nil {
		log.Warn().Err(err).Msg("Item level label unavailable")
		return nil, nil
	}

	for _, s := range exported.Sections {
		for _, line := range s.Lines {
			value, ok := labelValue(line, label)
			if !ok {
				continue
			}
			if n, ok := parseNumber(value); ok {
				target.Level = n
				return []*item.Section{s}, nil
			}
		}
	}
	return nil, nil
}
