package parser

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
	"item-parser/internal/textutil"
)

// Chain runs section parsers in a fixed order over one dump.
type Chain struct {
	parsers []SectionParser
}

// NewChain validates the order of parsers. Classification must run first
// because category and base type gate the parsers after it, and each kind
// may appear only once.
func NewChain(parsers ...SectionParser) (*Chain, error) {
	if len(parsers) == 0 || parsers[0].Kind() != item.SectionRarity {
		return nil, fmt.Errorf("parser chain must start with %s", item.SectionRarity)
	}
	if parsers[0].Optional() {
		return nil, fmt.Errorf("%s parser must not be optional", item.SectionRarity)
	}

	seen := make(map[item.SectionKind]bool, len(parsers))
	for _, p := range parsers {
		if seen[p.Kind()] {
			return nil, fmt.Errorf("duplicate %s parser in chain", p.Kind())
		}
		seen[p.Kind()] = true
	}

	return &Chain{parsers: parsers}, nil
}

// MustNewChain is NewChain for chains built at startup.
func MustNewChain(parsers ...SectionParser) *Chain {
	c, err := NewChain(parsers...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultParsers returns the standard parser order.
func DefaultParsers() []SectionParser {
	return []SectionParser{
		&RarityParser{},
		&PropertiesParser{},
		&RequirementsParser{},
		&SocketsParser{},
		&ItemLevelParser{},
		&InfluencesParser{},
		NewFlagParser(item.SectionCorrupted, "ItemPopupCorrupted", func(it *item.Item) { it.Corrupted = true }),
		NewFlagParser(item.SectionUnidentified, "ItemPopupUnidentified", func(it *item.Item) { it.Unidentified = true }),
		&StatsParser{},
	}
}

// Kinds returns the section kinds in chain order.
func (c *Chain) Kinds() []item.SectionKind {
	out := make([]item.SectionKind, 0, len(c.parsers))
	for _, p := range c.parsers {
		out = append(out, p.Kind())
	}
	return out
}

// Run threads target through every parser and returns the consumed sections.
// Each parser only sees sections no earlier parser consumed. filter limits
// the optional parsers that run; classification always runs. On a fatal
// failure target holds whatever was parsed so far.
func (c *Chain) Run(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item, filter map[item.SectionKind]bool) ([]*item.Section, error) {
	consumed := make(map[int]bool, len(exported.Sections))
	var used []*item.Section

	for _, p := range c.parsers {
		kind := p.Kind()
		if len(filter) > 0 && kind != item.SectionRarity && !filter[kind] {
			continue
		}

		view := &item.ExportedItem{}
		for _, s := range exported.Sections {
			if !consumed[s.Index] {
				view.Sections = append(view.Sections, s)
			}
		}

		sections, err := p.Parse(loc, view, target)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				pe = &ParseError{Kind: RequiredSectionParseFailed, Err: err}
			}
			if pe.Section == "" {
				pe.Section = kind
			}
			log.Warn().Str("kind", pe.Kind.String()).Str("section", string(kind)).Str("detail", textutil.Truncate(pe.Detail, 120)).Msg("Item parse aborted")
			return used, pe
		}

		if len(sections) == 0 {
			if !p.Optional() {
				log.Warn().Str("section", string(kind)).Msg("Required section not found")
				return used, &ParseError{Kind: RequiredSectionParseFailed, Section: kind, Detail: "no matching section"}
			}
			log.Debug().Str("section", string(kind)).Msg("Optional section not present")
			continue
		}

		for _, s := range sections {
			consumed[s.Index] = true
		}
		used = append(used, sections...)
	}

	return used, nil
}
