package item

// Section is one delimiter-bounded block of a dump.
type Section struct {
	// Index is the position of the section in the dump.
	Index int
	// Content is the block text with surrounding whitespace trimmed.
	Content string
	// Lines are the trimmed, non-empty lines of the block.
	Lines []string
}

// ExportedItem is the read-only segmented view of a dump.
type ExportedItem struct {
	Sections []*Section
}

// SectionKind names a section parser.
type SectionKind string

const (
	SectionRarity       SectionKind = "rarity"
	SectionProperties   SectionKind = "properties"
	SectionRequirements SectionKind = "requirements"
	SectionSockets      SectionKind = "sockets"
	SectionItemLevel    SectionKind = "itemLevel"
	SectionInfluences   SectionKind = "influences"
	SectionCorrupted    SectionKind = "corrupted"
	SectionUnidentified SectionKind = "unidentified"
	SectionStats        SectionKind = "stats"
)
