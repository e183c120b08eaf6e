package parser

import (
	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
)

const (
	idStrength     = "ItemDisplayStringStrength"
	idDexterity    = "ItemDisplayStringDexterity"
	idIntelligence = "ItemDisplayStringIntelligence"
)

// RequirementsParser reads the section headed "Requirements:".
type RequirementsParser struct{}

func (p *RequirementsParser) Kind() item.SectionKind { return item.SectionRequirements }

func (p *RequirementsParser) Optional() bool { return true }

func (p *RequirementsParser) Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error) {
	labels, err := clientStrings(loc, idRequirements, idLevel, idStrength, idDexterity, idIntelligence)
	if err != nil {
		log.Warn().Err(err).Msg("Requirements labels unavailable")
		return nil, nil
	}

	for _, s := range exported.Sections {
		if s.Lines[0] != labels[idRequirements]+":" {
			continue
		}

		req := &item.Requirements{}
		fields := map[string]*int{
			labels[idLevel]:        &req.Level,
			labels[idStrength]:     &req.Strength,
			labels[idDexterity]:    &req.Dexterity,
			labels[idIntelligence]: &req.Intelligence,
		}
		for _, line := range s.Lines[1:] {
			for label, field := range fields {
				if value, ok := labelValue(line, label); ok {
					if n, ok := parseNumber(value); ok {
						*field = n
					}
					break
				}
			}
		}
		target.Requirements = req
		return []*item.Section{s}, nil
	}
	return nil, nil
}
