package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
	"item-parser/internal/template"
	"item-parser/internal/textutil"
)

const (
	idItemClass       = "ItemDisplayStringClass"
	idRarity          = "ItemDisplayStringRarity"
	idInfectedMap     = "InfectedMap"
	idUberInfectedMap = "UberInfectedMap"
	idMetamorphSample = "MetamorphosisItemisedMapBoss"
	idMetamorphName   = "MetamorphosisItemisedBossDisplayText"
)

type rarityID struct {
	id     string
	rarity item.Rarity
}

// Rarity labels in lookup order.
var rarityIDs = []rarityID{
	{"ItemDisplayStringNormal", item.RarityNormal},
	{"ItemDisplayStringMagic", item.RarityMagic},
	{"ItemDisplayStringRare", item.RarityRare},
	{"ItemDisplayStringUnique", item.RarityUnique},
	{"ItemDisplayStringCurrency", item.RarityCurrency},
	{"ItemDisplayStringGem", item.RarityGem},
	{"ItemDisplayStringDivinationCard", item.RarityDivinationCard},
	{"ItemDisplayStringQuest", item.RarityQuest},
}

// Item classes whose rarity is implied; their dumps have no rarity line.
var classRarityIDs = []rarityID{
	{"ItemClassQuestItems", item.RarityQuest},
}

// Prophecy tracker lines and the masters they name.
var masterMissionIDs = []mission{
	{"ProphecyQuestTrackerEinhar", "MasterNameEinhar"},
	{"ProphecyQuestTrackerAlva", "MasterNameAlva"},
	{"ProphecyQuestTrackerNiko", "MasterNameNiko"},
	{"ProphecyQuestTrackerZana", "MasterNameZana"},
	{"ProphecyQuestTrackerJun", "MasterNameJun"},
}

type bodyPart struct {
	label  string
	typeID string
}

var bodyPartIDs = []bodyPart{
	{"MetamorphBodyPart1", "MetamorphosisBrain"},
	{"MetamorphBodyPart2", "MetamorphosisEye"},
	{"MetamorphBodyPart3", "MetamorphosisLung"},
	{"MetamorphBodyPart4", "MetamorphosisHeart"},
	{"MetamorphBodyPart5", "MetamorphosisLiver"},
}

type gemQuality struct {
	affix   string
	quality item.GemQualityType
}

var gemQualityIDs = []gemQuality{
	{"GemAlternateQuality1Affix", item.GemQualityAnomalous},
	{"GemAlternateQuality2Affix", item.GemQualityDivergent},
	{"GemAlternateQuality3Affix", item.GemQualityPhantasmal},
}

// rarityPhrases are the client strings the classification step needs,
// translated into one language.
type rarityPhrases struct {
	class        string
	rarity       string
	rarities     map[string]item.Rarity
	classRarity  map[string]item.Rarity
	missions     []mission
	infected     string
	uberInfected string
	sample       string
	sampleName   string
	bodyParts    []bodyPart
	qualities    []gemQuality
}

// mission pairs a prophecy tracker line with the master it names.
type mission struct {
	tracker string
	master  string
}

func loadRarityPhrases(loc *localization.Localizer) (*rarityPhrases, error) {
	ids := []string{idItemClass, idRarity, idInfectedMap, idUberInfectedMap, idMetamorphSample, idMetamorphName}
	for _, r := range rarityIDs {
		ids = append(ids, r.id)
	}
	for _, r := range classRarityIDs {
		ids = append(ids, r.id)
	}
	for _, m := range masterMissionIDs {
		ids = append(ids, m.tracker, m.master)
	}
	for _, b := range bodyPartIDs {
		ids = append(ids, b.label)
	}
	for _, q := range gemQualityIDs {
		ids = append(ids, q.affix)
	}

	s, err := clientStrings(loc, ids...)
	if err != nil {
		return nil, err
	}

	p := &rarityPhrases{
		class:        s[idItemClass],
		rarity:       s[idRarity],
		rarities:     make(map[string]item.Rarity, len(rarityIDs)),
		classRarity:  make(map[string]item.Rarity, len(classRarityIDs)),
		infected:     s[idInfectedMap],
		uberInfected: s[idUberInfectedMap],
		sample:       s[idMetamorphSample],
		sampleName:   s[idMetamorphName],
	}
	for _, r := range rarityIDs {
		if _, dup := p.rarities[s[r.id]]; !dup {
			p.rarities[s[r.id]] = r.rarity
		}
	}
	for _, r := range classRarityIDs {
		p.classRarity[s[r.id]] = r.rarity
	}
	for _, m := range masterMissionIDs {
		p.missions = append(p.missions, mission{tracker: s[m.tracker], master: s[m.master]})
	}
	for _, b := range bodyPartIDs {
		p.bodyParts = append(p.bodyParts, bodyPart{label: s[b.label], typeID: b.typeID})
	}
	for _, q := range gemQualityIDs {
		p.qualities = append(p.qualities, gemQuality{affix: s[q.affix], quality: q.quality})
	}
	return p, nil
}

// affixKind tells which decoration a type line was resolved through.
type affixKind int

const (
	affixNone affixKind = iota
	affixBlight
	affixGemQuality
	affixSample
)

type affix struct {
	template string
	kind     affixKind
}

// affixes are the decorations a client puts around a base type name. Each
// has {0} as the base type placeholder.
func (p *rarityPhrases) affixes() []affix {
	out := []affix{
		{p.infected, affixBlight},
		{p.uberInfected, affixBlight},
	}
	for _, q := range p.qualities {
		out = append(out, affix{q.affix, affixGemQuality})
	}
	for _, b := range p.bodyParts {
		out = append(out, affix{template.Format(p.sampleName, "{0}", b.label), affixSample})
	}
	return out
}

// RarityParser classifies the item: rarity, name, base type, category and the
// variant flags derived from them. It is the only required parser.
type RarityParser struct{}

func (p *RarityParser) Kind() item.SectionKind { return item.SectionRarity }

func (p *RarityParser) Optional() bool { return false }

func (p *RarityParser) Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error) {
	phrases, err := loadRarityPhrases(loc)
	if err != nil {
		return nil, &ParseError{Kind: UnknownID, Detail: "classification phrases", Err: err}
	}

	var section *item.Section
	for _, s := range exported.Sections {
		if strings.HasPrefix(s.Content, phrases.class+":") {
			section = s
			break
		}
	}
	if section == nil {
		return nil, newError(MissingClassSection, "no section starts with %q", phrases.class)
	}

	lines := section.Lines
	class, _ := labelValue(lines[0], phrases.class)
	idx := 1

	if r, ok := phrases.classRarity[class]; ok {
		target.Rarity = r
	} else {
		if idx >= len(lines) {
			return nil, newError(MissingRaritySection, "class %q: no %q line", class, phrases.rarity)
		}
		value, ok := labelValue(lines[idx], phrases.rarity)
		if !ok {
			return nil, newError(MissingRaritySection, "class %q: no %q line, got %q", class, phrases.rarity, lines[idx])
		}
		r, ok := phrases.rarities[value]
		if !ok {
			return nil, newError(UnrecognizedRarity, "class %q: rarity %q in %q", class, value, lines[idx])
		}
		target.Rarity = r
		idx++
	}

	var via affixKind
	rest := lines[idx:]
	switch len(rest) {
	case 1:
		via = p.setType(loc, phrases, target, rest[0])
	case 2:
		target.Name = textutil.StripMarkup(rest[0])
		target.NameID, _ = loc.SearchWord(target.Name)
		via = p.setType(loc, phrases, target, rest[1])
	default:
		return nil, newError(UnexpectedSectionShape, "%d lines after rarity, want 1 or 2", len(rest))
	}

	for _, m := range phrases.missions {
		if otherSectionContains(exported, section, m.tracker) {
			target.Type = fmt.Sprintf("%s (%s)", target.Type, m.master)
			target.TypeID, _ = loc.SearchBaseItemType(target.Type)
			via = affixNone
			break
		}
	}

	if target.TypeID == "" {
		return nil, newError(UnknownBaseType, "%q", target.Type)
	}

	baseName, err := baseTypeName(loc, target.TypeID)
	if err != nil {
		return nil, &ParseError{Kind: UnknownID, Detail: target.TypeID, Err: err}
	}

	switch target.Type {
	case template.Format(phrases.infected, baseName):
		target.Blighted = true
	case template.Format(phrases.uberInfected, baseName):
		target.BlightRavaged = true
	}

	if otherSectionHasPrefix(exported, section, phrases.sample) {
		target.Category = item.CategoryMonsterSample
		for _, b := range phrases.bodyParts {
			if target.Type == template.Format(phrases.sampleName, baseName, b.label) {
				target.Name = target.Type
				target.TypeID = b.typeID
				break
			}
		}
	} else {
		if via == affixSample {
			return nil, newError(UnknownBaseType, "%q: sample name outside a metamorph sample", target.Type)
		}
		category, ok := loc.Category(target.TypeID)
		if !ok {
			return nil, newError(UnknownCategory, "%s", target.TypeID)
		}
		target.Category = item.Category(category)

		if !affixFits(via, target.Category) {
			return nil, newError(UnknownBaseType, "%q: affix not valid on %s base %s", target.Type, target.Category, target.TypeID)
		}
	}

	if target.Category.IsGem() {
		p.classifyGem(loc, phrases, exported, target)
	}

	log.Debug().
		Str("rarity", string(target.Rarity)).
		Str("type_id", target.TypeID).
		Str("category", string(target.Category)).
		Msg("Item classified")

	return []*item.Section{section}, nil
}

func (p *RarityParser) setType(loc *localization.Localizer, phrases *rarityPhrases, target *item.Item, line string) affixKind {
	target.Type = textutil.StripMarkup(line)
	id, via, _ := resolveTypeID(loc, phrases, target.Type)
	target.TypeID = id
	return via
}

// affixFits reports whether an item of category c can carry the decoration
// its type line was resolved through.
func affixFits(via affixKind, c item.Category) bool {
	switch via {
	case affixBlight:
		return c.IsMap()
	case affixGemQuality:
		return c.IsGem()
	default:
		return true
	}
}

// classifyGem upgrades the type to its Vaal variant when the dump carries one
// and detects alternate quality.
func (p *RarityParser) classifyGem(loc *localization.Localizer, phrases *rarityPhrases, exported *item.ExportedItem, target *item.Item) {
	props := target.EnsureProperties()

	typeLen := utf8.RuneCountInString(target.Type)
	for _, s := range exported.Sections {
		if len(s.Lines) != 1 {
			continue
		}
		line := textutil.StripMarkup(s.Lines[0])
		if utf8.RuneCountInString(line) <= typeLen {
			continue
		}
		id, ok := loc.SearchBaseItemType(line)
		if ok && strings.Contains(id, "Vaal") {
			target.Type = line
			target.TypeID = id
			break
		}
	}

	props.GemQualityType = item.GemQualityDefault
	baseName, err := baseTypeName(loc, target.TypeID)
	if err != nil {
		return
	}
	for _, q := range phrases.qualities {
		if target.Type == template.Format(q.affix, baseName) {
			props.GemQualityType = q.quality
			break
		}
	}
}

// resolveTypeID looks a type line up directly, then strips each known affix
// template and looks up what filled its {0}.
func resolveTypeID(loc *localization.Localizer, phrases *rarityPhrases, typ string) (string, affixKind, bool) {
	if id, ok := loc.SearchBaseItemType(typ); ok {
		return id, affixNone, true
	}
	for _, a := range phrases.affixes() {
		args, ok := template.Compile(a.template).Args(typ)
		if !ok || len(args) == 0 || args[0] == "" {
			continue
		}
		if id, ok := loc.SearchBaseItemType(args[0]); ok {
			return id, a.kind, true
		}
	}
	return "", affixNone, false
}

// baseTypeName translates a type id in the bound language, falling back to
// English for ids only resolved through English text.
func baseTypeName(loc *localization.Localizer, typeID string) (string, error) {
	name, err := loc.BaseItemType(typeID)
	if err == nil {
		return name, nil
	}
	if loc.Language() == localization.English {
		return "", err
	}
	return loc.Fallback().BaseItemType(typeID)
}

func otherSectionContains(exported *item.ExportedItem, skip *item.Section, text string) bool {
	for _, s := range exported.Sections {
		if s != skip && strings.Contains(s.Content, text) {
			return true
		}
	}
	return false
}

func otherSectionHasPrefix(exported *item.ExportedItem, skip *item.Section, prefix string) bool {
	for _, s := range exported.Sections {
		if s != skip && strings.HasPrefix(s.Content, prefix) {
			return true
		}
	}
	return false
}
