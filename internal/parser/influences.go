package parser

import (
	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
)

var influenceIDs = []struct {
	id        string
	influence item.Influence
}{
	{"ItemPopupShaperItem", item.InfluenceShaper},
	{"ItemPopupElderItem", item.InfluenceElder},
	{"ItemPopupCrusaderItem", item.InfluenceCrusader},
	{"ItemPopupRedeemerItem", item.InfluenceRedeemer},
	{"ItemPopupHunterItem", item.InfluenceHunter},
	{"ItemPopupWarlordItem", item.InfluenceWarlord},
	{"ItemPopupSynthesisedItem", item.InfluenceSynthesised},
	{"ItemPopupFracturedItem", item.InfluenceFractured},
}

// InfluencesParser reads the section made only of influence markers such as
// "Shaper Item".
type InfluencesParser struct{}

func (p *InfluencesParser) Kind() item.SectionKind { return item.SectionInfluences }

func (p *InfluencesParser) Optional() bool { return true }

func (p *InfluencesParser) Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error) {
	markers := make(map[string]item.Influence, len(influenceIDs))
	for _, in := range influenceIDs {
		text, err := loc.ClientString(in.id)
		if err != nil {
			log.Warn().Err(err).Msg("Influence labels unavailable")
			return nil, nil
		}
		markers[text] = in.influence
	}

	for _, s := range exported.Sections {
		var found []item.Influence
		for _, line := range s.Lines {
			in, ok := markers[line]
			if !ok {
				found = nil
				break
			}
			found = append(found, in)
		}
		if len(found) > 0 {
			target.Influences = found
			return []*item.Section{s}, nil
		}
	}
	return nil, nil
}
