// Package localizationtest provides small English and German dictionaries
// for tests of packages that depend on localization.
package localizationtest

import "item-parser/internal/localization"

// Tables returns freshly built fixture tables.
func Tables() *localization.Tables {
	t := localization.NewTables()
	t.Set(localization.English, localization.ClientStrings, localization.NewTable(englishClientStrings))
	t.Set(localization.German, localization.ClientStrings, localization.NewTable(germanClientStrings))
	t.Set(localization.English, localization.Words, localization.NewTable(englishWords))
	t.Set(localization.German, localization.Words, localization.NewTable(germanWords))
	t.Set(localization.English, localization.BaseItemTypes, localization.NewTable(englishBaseItemTypes))
	t.Set(localization.German, localization.BaseItemTypes, localization.NewTable(germanBaseItemTypes))
	t.Set(localization.English, localization.Stats, localization.NewTable(englishStats))
	t.Set(localization.German, localization.Stats, localization.NewTable(germanStats))
	t.SetCategories(map[string]string{
		"MapBrineKingsReef":              "map",
		"MapStrand":                      "map",
		"BeltLeather":                    "accessory.belt",
		"BodySimpleRobe":                 "armour.chest",
		"SupportAddedFireDamage":         "gem.supportgem",
		"SkillGrace":                     "gem.activegem",
		"SkillVaalGrace":                 "gem.activegem",
		"CurrencyChaosOrb":               "currency",
		"ProphecyAMasterSeeksHelpEinhar": "prophecy",
		"ProphecyAMasterSeeksHelpAlva":   "prophecy",
		"MetamorphosisBrain":             "monster.sample",
		"MetamorphosisEye":               "monster.sample",
		"MetamorphosisLung":              "monster.sample",
		"MetamorphosisHeart":             "monster.sample",
		"MetamorphosisLiver":             "monster.sample",
		"QuestAllflameEmber":             "quest",
	})
	return t
}

// Resolver returns a resolver over Tables.
func Resolver() *localization.Resolver {
	return localization.NewResolver(Tables())
}

var englishClientStrings = []localization.Entry{
	{ID: "ItemDisplayStringClass", Text: "Item Class"},
	{ID: "ItemDisplayStringRarity", Text: "Rarity"},
	{ID: "ItemDisplayStringNormal", Text: "Normal"},
	{ID: "ItemDisplayStringMagic", Text: "Magic"},
	{ID: "ItemDisplayStringRare", Text: "Rare"},
	{ID: "ItemDisplayStringUnique", Text: "Unique"},
	{ID: "ItemDisplayStringCurrency", Text: "Currency"},
	{ID: "ItemDisplayStringGem", Text: "Gem"},
	{ID: "ItemDisplayStringDivinationCard", Text: "Divination Card"},
	{ID: "ItemDisplayStringQuest", Text: "Quest"},
	{ID: "ItemClassQuestItems", Text: "Quest Items"},
	{ID: "ProphecyQuestTrackerEinhar", Text: "Einhar, Beastmaster, seeks your help with a mission."},
	{ID: "ProphecyQuestTrackerAlva", Text: "Alva Valai seeks your help with a temporal incursion."},
	{ID: "ProphecyQuestTrackerNiko", Text: "Niko the Mad seeks your help with a Voltaxic mission."},
	{ID: "ProphecyQuestTrackerZana", Text: "Zana, Master Cartographer, seeks your help in the Atlas."},
	{ID: "ProphecyQuestTrackerJun", Text: "Jun Ortoi seeks your help against the Immortal Syndicate."},
	{ID: "MasterNameEinhar", Text: "Einhar"},
	{ID: "MasterNameAlva", Text: "Alva"},
	{ID: "MasterNameNiko", Text: "Niko"},
	{ID: "MasterNameZana", Text: "Zana"},
	{ID: "MasterNameJun", Text: "Jun"},
	{ID: "InfectedMap", Text: "Blighted {0}"},
	{ID: "UberInfectedMap", Text: "Blight-ravaged {0}"},
	{ID: "MetamorphosisItemisedMapBoss", Text: "Combine this with four other different samples in Tane's Laboratory."},
	{ID: "MetamorphosisItemisedBossDisplayText", Text: "{0}'s {1}"},
	{ID: "MetamorphBodyPart1", Text: "Brain"},
	{ID: "MetamorphBodyPart2", Text: "Eye"},
	{ID: "MetamorphBodyPart3", Text: "Lung"},
	{ID: "MetamorphBodyPart4", Text: "Heart"},
	{ID: "MetamorphBodyPart5", Text: "Liver"},
	{ID: "GemAlternateQuality1Affix", Text: "Anomalous {0}"},
	{ID: "GemAlternateQuality2Affix", Text: "Divergent {0}"},
	{ID: "GemAlternateQuality3Affix", Text: "Phantasmal {0}"},
	{ID: "ItemDisplayStringQuality", Text: "Quality"},
	{ID: "ItemDisplayStringLevel", Text: "Level"},
	{ID: "ItemDisplayMapTier", Text: "Map Tier"},
	{ID: "ItemDisplayStringStackSize", Text: "Stack Size"},
	{ID: "ItemDisplayMapQuantityIncrease", Text: "Item Quantity"},
	{ID: "ItemDisplayMapRarityIncrease", Text: "Item Rarity"},
	{ID: "ItemDisplayMapPackSizeIncrease", Text: "Monster Pack Size"},
	{ID: "ItemDisplayStringRequirements", Text: "Requirements"},
	{ID: "ItemDisplayStringStrength", Text: "Str"},
	{ID: "ItemDisplayStringDexterity", Text: "Dex"},
	{ID: "ItemDisplayStringIntelligence", Text: "Int"},
	{ID: "ItemDisplayStringSockets", Text: "Sockets"},
	{ID: "ItemDisplayStringItemLevel", Text: "Item Level"},
	{ID: "ItemPopupShaperItem", Text: "Shaper Item"},
	{ID: "ItemPopupElderItem", Text: "Elder Item"},
	{ID: "ItemPopupCrusaderItem", Text: "Crusader Item"},
	{ID: "ItemPopupRedeemerItem", Text: "Redeemer Item"},
	{ID: "ItemPopupHunterItem", Text: "Hunter Item"},
	{ID: "ItemPopupWarlordItem", Text: "Warlord Item"},
	{ID: "ItemPopupSynthesisedItem", Text: "Synthesised Item"},
	{ID: "ItemPopupFracturedItem", Text: "Fractured Item"},
	{ID: "ItemPopupCorrupted", Text: "Corrupted"},
	{ID: "ItemPopupUnidentified", Text: "Unidentified"},
	{ID: "ItemPopupImplicit", Text: "(implicit)"},
	{ID: "ItemPopupCrafted", Text: "(crafted)"},
	{ID: "ItemPopupEnchant", Text: "(enchant)"},
	{ID: "ItemPopupFractured", Text: "(fractured)"},
}

var germanClientStrings = []localization.Entry{
	{ID: "ItemDisplayStringClass", Text: "Gegenstandsklasse"},
	{ID: "ItemDisplayStringRarity", Text: "Seltenheit"},
	{ID: "ItemDisplayStringNormal", Text: "Normal"},
	{ID: "ItemDisplayStringMagic", Text: "Magisch"},
	{ID: "ItemDisplayStringRare", Text: "Selten"},
	{ID: "ItemDisplayStringUnique", Text: "Einzigartig"},
	{ID: "ItemDisplayStringCurrency", Text: "Währung"},
	{ID: "ItemDisplayStringGem", Text: "Gemme"},
	{ID: "ItemDisplayStringDivinationCard", Text: "Weissagungskarte"},
	{ID: "ItemDisplayStringQuest", Text: "Quest"},
	{ID: "ItemClassQuestItems", Text: "Questgegenstände"},
	{ID: "ProphecyQuestTrackerEinhar", Text: "Einhar, der Bestienmeister, bittet Euch um Hilfe bei einer Mission."},
	{ID: "ProphecyQuestTrackerAlva", Text: "Alva Valai bittet Euch um Hilfe bei einem zeitlichen Einfall."},
	{ID: "ProphecyQuestTrackerNiko", Text: "Niko der Verrückte bittet Euch um Hilfe bei einer Voltax-Mission."},
	{ID: "ProphecyQuestTrackerZana", Text: "Zana, die Meisterkartografin, bittet Euch um Hilfe im Atlas."},
	{ID: "ProphecyQuestTrackerJun", Text: "Jun Ortoi bittet Euch um Hilfe gegen das Unsterbliche Syndikat."},
	{ID: "MasterNameEinhar", Text: "Einhar"},
	{ID: "MasterNameAlva", Text: "Alva"},
	{ID: "MasterNameNiko", Text: "Niko"},
	{ID: "MasterNameZana", Text: "Zana"},
	{ID: "MasterNameJun", Text: "Jun"},
	{ID: "InfectedMap", Text: "Verseuchte {0}"},
	{ID: "UberInfectedMap", Text: "Von der Seuche verwüstete {0}"},
	{ID: "MetamorphosisItemisedMapBoss", Text: "Kombiniert dies mit vier anderen Proben in Tanes Labor."},
	{ID: "MetamorphosisItemisedBossDisplayText", Text: "{1} von {0}"},
	{ID: "MetamorphBodyPart1", Text: "Gehirn"},
	{ID: "MetamorphBodyPart2", Text: "Auge"},
	{ID: "MetamorphBodyPart3", Text: "Lunge"},
	{ID: "MetamorphBodyPart4", Text: "Herz"},
	{ID: "MetamorphBodyPart5", Text: "Leber"},
	{ID: "GemAlternateQuality1Affix", Text: "Anomale {0}"},
	{ID: "GemAlternateQuality2Affix", Text: "Abweichende {0}"},
	{ID: "GemAlternateQuality3Affix", Text: "Phantasmagorische {0}"},
	{ID: "ItemDisplayStringQuality", Text: "Qualität"},
	{ID: "ItemDisplayStringLevel", Text: "Stufe"},
	{ID: "ItemDisplayMapTier", Text: "Kartenstufe"},
	{ID: "ItemDisplayStringStackSize", Text: "Stapelgröße"},
	{ID: "ItemDisplayMapQuantityIncrease", Text: "Gegenstandsmenge"},
	{ID: "ItemDisplayMapRarityIncrease", Text: "Gegenstandsseltenheit"},
	{ID: "ItemDisplayMapPackSizeIncrease", Text: "Monstergruppengröße"},
	{ID: "ItemDisplayStringRequirements", Text: "Anforderungen"},
	{ID: "ItemDisplayStringStrength", Text: "Stä"},
	{ID: "ItemDisplayStringDexterity", Text: "Ges"},
	{ID: "ItemDisplayStringIntelligence", Text: "Int"},
	{ID: "ItemDisplayStringSockets", Text: "Fassungen"},
	{ID: "ItemDisplayStringItemLevel", Text: "Gegenstandsstufe"},
	{ID: "ItemPopupShaperItem", Text: "Schöpfer-Gegenstand"},
	{ID: "ItemPopupElderItem", Text: "Ältester-Gegenstand"},
	{ID: "ItemPopupCrusaderItem", Text: "Kreuzritter-Gegenstand"},
	{ID: "ItemPopupRedeemerItem", Text: "Erlöser-Gegenstand"},
	{ID: "ItemPopupHunterItem", Text: "Jäger-Gegenstand"},
	{ID: "ItemPopupWarlordItem", Text: "Kriegsherren-Gegenstand"},
	{ID: "ItemPopupSynthesisedItem", Text: "Synthetisierter Gegenstand"},
	{ID: "ItemPopupFracturedItem", Text: "Gebrochener Gegenstand"},
	{ID: "ItemPopupCorrupted", Text: "Verderbt"},
	{ID: "ItemPopupUnidentified", Text: "Nicht identifiziert"},
	{ID: "ItemPopupImplicit", Text: "(implizit)"},
	{ID: "ItemPopupCrafted", Text: "(handwerklich)"},
	{ID: "ItemPopupEnchant", Text: "(verzaubert)"},
	{ID: "ItemPopupFractured", Text: "(gebrochen)"},
}

var englishWords = []localization.Entry{
	{ID: "Headhunter", Text: "Headhunter"},
	{ID: "TabulaRasa", Text: "Tabula Rasa"},
	{ID: "Einhar", Text: "Einhar"},
	{ID: "Fenumus", Text: "Fenumus"},
}

var germanWords = []localization.Entry{
	{ID: "Headhunter", Text: "Kopfjäger"},
	{ID: "TabulaRasa", Text: "Tabula Rasa"},
	{ID: "Einhar", Text: "Einhar"},
	{ID: "Fenumus", Text: "Fenumus"},
}

var englishBaseItemTypes = []localization.Entry{
	{ID: "MapBrineKingsReef", Text: "Brine King's Reef Map"},
	{ID: "MapStrand", Text: "Strand Map"},
	{ID: "BeltLeather", Text: "Leather Belt"},
	{ID: "BodySimpleRobe", Text: "Simple Robe"},
	{ID: "SupportAddedFireDamage", Text: "Added Fire Damage Support"},
	{ID: "SkillGrace", Text: "Grace"},
	{ID: "SkillVaalGrace", Text: "Vaal Grace"},
	{ID: "CurrencyChaosOrb", Text: "Chaos Orb"},
	{ID: "ProphecyAMasterSeeksHelpEinhar", Text: "A Master Seeks Help (Einhar)"},
	{ID: "ProphecyAMasterSeeksHelpAlva", Text: "A Master Seeks Help (Alva)"},
	{ID: "MetamorphosisBossFenumus", Text: "Fenumus"},
	{ID: "MetamorphosisBrain", Text: "Metamorph Brain"},
	{ID: "MetamorphosisEye", Text: "Metamorph Eye"},
	{ID: "MetamorphosisLung", Text: "Metamorph Lung"},
	{ID: "MetamorphosisHeart", Text: "Metamorph Heart"},
	{ID: "MetamorphosisLiver", Text: "Metamorph Liver"},
	{ID: "QuestAllflameEmber", Text: "Allflame Ember"},
}

var germanBaseItemTypes = []localization.Entry{
	{ID: "MapBrineKingsReef", Text: "Karte: Riff des Salzkönigs"},
	{ID: "MapStrand", Text: "Strandkarte"},
	{ID: "BeltLeather", Text: "Ledergürtel"},
	{ID: "BodySimpleRobe", Text: "Schlichte Robe"},
	{ID: "SupportAddedFireDamage", Text: "Unterstützung: Zusätzlicher Feuerschaden"},
	{ID: "SkillGrace", Text: "Anmut"},
	{ID: "SkillVaalGrace", Text: "Vaal-Anmut"},
	{ID: "CurrencyChaosOrb", Text: "Chaoskugel"},
	{ID: "ProphecyAMasterSeeksHelpEinhar", Text: "Ein Meister sucht Hilfe (Einhar)"},
	{ID: "ProphecyAMasterSeeksHelpAlva", Text: "Ein Meister sucht Hilfe (Alva)"},
	{ID: "MetamorphosisBossFenumus", Text: "Fenumus"},
	{ID: "MetamorphosisBrain", Text: "Metamorph-Gehirn"},
	{ID: "MetamorphosisEye", Text: "Metamorph-Auge"},
	{ID: "MetamorphosisLung", Text: "Metamorph-Lunge"},
	{ID: "MetamorphosisHeart", Text: "Metamorph-Herz"},
	{ID: "MetamorphosisLiver", Text: "Metamorph-Leber"},
	{ID: "QuestAllflameEmber", Text: "Glut der Allflamme"},
}

var englishStats = []localization.Entry{
	{ID: "stat_3299347043", Text: "# to maximum Life"},
	{ID: "stat_1509134228", Text: "#% increased Physical Damage"},
	{ID: "stat_709508406", Text: "Adds # to # Fire Damage"},
	{ID: "stat_4080418644", Text: "# to Strength"},
	{ID: "stat_3372524247", Text: "#% to Fire Resistance"},
}

var germanStats = []localization.Entry{
	{ID: "stat_3299347043", Text: "# zu maximalem Leben"},
	{ID: "stat_1509134228", Text: "#% erhöhter physischer Schaden"},
	{ID: "stat_709508406", Text: "Fügt # bis # Feuerschaden hinzu"},
	{ID: "stat_4080418644", Text: "# zu Stärke"},
	{ID: "stat_3372524247", Text: "#% zu Feuerwiderstand"},
}
