package parser

import (
	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
)

const (
	idQuality      = "ItemDisplayStringQuality"
	idLevel        = "ItemDisplayStringLevel"
	idMapTier      = "ItemDisplayMapTier"
	idStackSize    = "ItemDisplayStringStackSize"
	idMapQuantity  = "ItemDisplayMapQuantityIncrease"
	idMapRarity    = "ItemDisplayMapRarityIncrease"
	idMapPackSize  = "ItemDisplayMapPackSizeIncrease"
	idRequirements = "ItemDisplayStringRequirements"
)

// PropertiesParser reads the labelled values under the classification:
// quality, gem level, map modifiers and stack size.
type PropertiesParser struct{}

func (p *PropertiesParser) Kind() item.SectionKind { return item.SectionProperties }

func (p *PropertiesParser) Optional() bool { return true }

func (p *PropertiesParser) Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error) {
	labels, err := clientStrings(loc, idQuality, idLevel, idMapTier, idStackSize, idMapQuantity, idMapRarity, idMapPackSize, idRequirements)
	if err != nil {
		log.Warn().Err(err).Msg("Properties labels unavailable")
		return nil, nil
	}

	setters := map[string]func(*item.Properties, string) bool{
		labels[idQuality]:     intSetter(func(pr *item.Properties, n int) { pr.Quality = n }),
		labels[idMapTier]:     intSetter(func(pr *item.Properties, n int) { pr.MapTier = n }),
		labels[idMapQuantity]: intSetter(func(pr *item.Properties, n int) { pr.MapQuantity = n }),
		labels[idMapRarity]:   intSetter(func(pr *item.Properties, n int) { pr.MapRarity = n }),
		labels[idMapPackSize]: intSetter(func(pr *item.Properties, n int) { pr.MapPackSize = n }),
		labels[idStackSize]: func(pr *item.Properties, v string) bool {
			n := parseNumbers(v)
			if len(n) == 0 {
				return false
			}
			pr.StackSize = n[0]
			if len(n) > 1 {
				pr.StackSizeMax = n[1]
			}
			return true
		},
	}
	if target.Category.IsGem() {
		setters[labels[idLevel]] = intSetter(func(pr *item.Properties, n int) { pr.GemLevel = n })
	}

	for _, s := range exported.Sections {
		if s.Lines[0] == labels[idRequirements]+":" {
			continue
		}

		matched := false
		for _, line := range s.Lines {
			for label, set := range setters {
				value, ok := labelValue(line, label)
				if !ok {
					continue
				}
				if set(target.EnsureProperties(), value) {
					matched = true
				}
				break
			}
		}
		if matched {
			return []*item.Section{s}, nil
		}
	}
	return nil, nil
}

func intSetter(set func(*item.Properties, int)) func(*item.Properties, string) bool {
	return func(pr *item.Properties, v string) bool {
		n, ok := parseNumber(v)
		if ok {
			set(pr, n)
		}
		return ok
	}
}
