package item

import "strings"

// Rarity is the coarse item power classification shown on the tooltip.
type Rarity string

const (
	RarityNormal         Rarity = "normal"
	RarityMagic          Rarity = "magic"
	RarityRare           Rarity = "rare"
	RarityUnique         Rarity = "unique"
	RarityCurrency       Rarity = "currency"
	RarityGem            Rarity = "gem"
	RarityDivinationCard Rarity = "divinationcard"
	RarityQuest          Rarity = "quest"
)

// Category is a hierarchical classification such as "gem.supportgem".
type Category string

const (
	CategoryGem           Category = "gem"
	CategoryMap           Category = "map"
	CategoryMonsterSample Category = "monster.sample"
)

// IsGem reports whether c is the gem category or one of its sub-categories.
func (c Category) IsGem() bool {
	return c == CategoryGem || strings.HasPrefix(string(c), string(CategoryGem)+".")
}

// IsMap reports whether c is the map category or one of its sub-categories.
func (c Category) IsMap() bool {
	return c == CategoryMap || strings.HasPrefix(string(c), string(CategoryMap)+".")
}

// GemQualityType is the quality variant of a skill gem.
type GemQualityType string

const (
	GemQualityDefault    GemQualityType = "default"
	GemQualityAnomalous  GemQualityType = "anomalous"
	GemQualityDivergent  GemQualityType = "divergent"
	GemQualityPhantasmal GemQualityType = "phantasmal"
)

// Influence marks an influenced or special base.
type Influence string

const (
	InfluenceShaper      Influence = "shaper"
	InfluenceElder       Influence = "elder"
	InfluenceCrusader    Influence = "crusader"
	InfluenceRedeemer    Influence = "redeemer"
	InfluenceHunter      Influence = "hunter"
	InfluenceWarlord     Influence = "warlord"
	InfluenceSynthesised Influence = "synthesised"
	InfluenceFractured   Influence = "fractured"
)

// StatType is the origin of a mod line.
type StatType string

const (
	StatExplicit  StatType = "explicit"
	StatImplicit  StatType = "implicit"
	StatCrafted   StatType = "crafted"
	StatEnchant   StatType = "enchant"
	StatFractured StatType = "fractured"
)

// Item is the record built by the section parsers. It is mutated while a
// dump is parsed and treated as read-only once returned.
type Item struct {
	Rarity        Rarity        `json:"rarity,omitempty"`
	Name          string        `json:"name,omitempty"`
	NameID        string        `json:"nameId,omitempty"`
	Type          string        `json:"type,omitempty"`
	TypeID        string        `json:"typeId,omitempty"`
	Category      Category      `json:"category,omitempty"`
	Level         int           `json:"level,omitempty"`
	Corrupted     bool          `json:"corrupted,omitempty"`
	Unidentified  bool          `json:"unidentified,omitempty"`
	Blighted      bool          `json:"blighted,omitempty"`
	BlightRavaged bool          `json:"blightRavaged,omitempty"`
	Influences    []Influence   `json:"influences,omitempty"`
	Properties    *Properties   `json:"properties,omitempty"`
	Requirements  *Requirements `json:"requirements,omitempty"`
	Sockets       []SocketGroup `json:"sockets,omitempty"`
	Stats         []*ItemStat   `json:"stats,omitempty"`
}

// Properties holds the well-known values of the properties section.
type Properties struct {
	GemQualityType GemQualityType `json:"gemQualityType,omitempty"`
	Quality        int            `json:"quality,omitempty"`
	GemLevel       int            `json:"gemLevel,omitempty"`
	MapTier        int            `json:"mapTier,omitempty"`
	MapQuantity    int            `json:"mapQuantity,omitempty"`
	MapRarity      int            `json:"mapRarity,omitempty"`
	MapPackSize    int            `json:"mapPackSize,omitempty"`
	StackSize      int            `json:"stackSize,omitempty"`
	StackSizeMax   int            `json:"stackSizeMax,omitempty"`
}

// Requirements holds the requirements section.
type Requirements struct {
	Level        int `json:"level,omitempty"`
	Strength     int `json:"str,omitempty"`
	Dexterity    int `json:"dex,omitempty"`
	Intelligence int `json:"int,omitempty"`
}

// SocketGroup is a run of linked sockets, one colour letter per socket.
type SocketGroup struct {
	Colors []string `json:"colors"`
}

// Links returns the size of the largest linked group.
func (it *Item) Links() int {
	max := 0
	for _, g := range it.Sockets {
		if len(g.Colors) > max {
			max = len(g.Colors)
		}
	}
	return max
}

// ItemStat is one mod line resolved against the stat templates.
type ItemStat struct {
	ID     string    `json:"id"`
	Type   StatType  `json:"type"`
	Text   string    `json:"text"`
	Values []float64 `json:"values,omitempty"`
}

// EnsureProperties returns the properties, allocating them on first use.
func (it *Item) EnsureProperties() *Properties {
	if it.Properties == nil {
		it.Properties = &Properties{}
	}
	return it.Properties
}
