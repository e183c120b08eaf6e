package parser

import (
	"strings"

	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
	"item-parser/internal/textutil"
)

var statSuffixIDs = []struct {
	id       string
	statType item.StatType
}{
	{"ItemPopupImplicit", item.StatImplicit},
	{"ItemPopupCrafted", item.StatCrafted},
	{"ItemPopupEnchant", item.StatEnchant},
	{"ItemPopupFractured", item.StatFractured},
}

type statSuffix struct {
	text     string
	statType item.StatType
}

// StatsParser matches mod lines against the stat templates of the game
// language, then English. A section is consumed when any of its lines
// matched.
type StatsParser struct{}

func (p *StatsParser) Kind() item.SectionKind { return item.SectionStats }

func (p *StatsParser) Optional() bool { return true }

func (p *StatsParser) Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error) {
	var suffixes []statSuffix
	for _, sfx := range statSuffixIDs {
		text, err := loc.ClientString(sfx.id)
		if err != nil {
			log.Warn().Err(err).Msg("Stat suffix unavailable")
			continue
		}
		suffixes = append(suffixes, statSuffix{text: text, statType: sfx.statType})
	}

	groups := loc.StatTemplates()
	if len(groups) == 0 {
		return nil, nil
	}

	var used []*item.Section
	for _, s := range exported.Sections {
		matched := false
		for _, line := range s.Lines {
			stat, ok := matchStat(groups, suffixes, line)
			if !ok {
				continue
			}
			target.Stats = append(target.Stats, stat)
			matched = true
		}
		if matched {
			used = append(used, s)
		}
	}
	return used, nil
}

func matchStat(groups [][]localization.StatTemplate, suffixes []statSuffix, line string) (*item.ItemStat, bool) {
	text := textutil.StripMarkup(line)
	statType := item.StatExplicit
	for _, sfx := range suffixes {
		if trimmed, ok := strings.CutSuffix(text, " "+sfx.text); ok {
			text = strings.TrimSpace(trimmed)
			statType = sfx.statType
			break
		}
	}

	for _, templates := range groups {
		for _, st := range templates {
			values, ok := st.Pattern.Values(text)
			if !ok {
				continue
			}
			return &item.ItemStat{ID: st.ID, Type: statType, Text: text, Values: values}, true
		}
	}
	return nil, false
}
