package parser

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"item-parser/internal/dump"
	"item-parser/internal/item"
	"item-parser/internal/localization"
	"item-parser/internal/textutil"
)

// Options select the languages and sections of one parse.
type Options struct {
	// Language is the display language of the caller. Zero means English.
	Language localization.Language
	// GameLanguage is the language the dump was copied in. Zero means
	// Language.
	GameLanguage localization.Language
	// Sections restricts the optional parsers that run. Empty runs all.
	Sections []item.SectionKind
}

// ResultCode is the coarse outcome of Read.
type ResultCode int

const (
	ResultSuccess ResultCode = iota
	ResultEmpty
	ResultParserError
)

func (c ResultCode) String() string {
	switch c {
	case ResultSuccess:
		return "success"
	case ResultEmpty:
		return "empty"
	case ResultParserError:
		return "parser_error"
	default:
		return fmt.Sprintf("ResultCode(%d)", int(c))
	}
}

// Result is the outcome of Read. Item is nil unless Code is ResultSuccess.
type Result struct {
	Code ResultCode
	Item *item.Item
	Err  error
}

// Service parses clipboard dumps against loaded localization tables. It is
// safe for concurrent use.
type Service struct {
	resolver *localization.Resolver
	chain    *Chain
}

// NewService creates a service with the default parser chain.
func NewService(resolver *localization.Resolver) *Service {
	return &Service{
		resolver: resolver,
		chain:    MustNewChain(DefaultParsers()...),
	}
}

// NewServiceWithChain creates a service with a custom parser chain.
func NewServiceWithChain(resolver *localization.Resolver, chain *Chain) *Service {
	return &Service{resolver: resolver, chain: chain}
}

// Parse parses raw into an item. On failure the partially built item is
// returned alongside the error.
func (s *Service) Parse(raw string, opts Options) (*item.Item, error) {
	exported := dump.Split(raw)
	if len(exported.Sections) == 0 {
		return nil, ErrEmptyInput
	}

	lang := opts.Language
	if lang == 0 {
		lang = localization.English
	}
	gameLang := opts.GameLanguage
	if gameLang == 0 {
		gameLang = lang
	}

	var filter map[item.SectionKind]bool
	if len(opts.Sections) > 0 {
		filter = make(map[item.SectionKind]bool, len(opts.Sections))
		for _, k := range opts.Sections {
			filter[k] = true
		}
	}

	target := &item.Item{}
	used, err := s.chain.Run(s.resolver.For(gameLang), exported, target, filter)
	if err != nil {
		return target, err
	}

	log.Debug().
		Str("dump", textutil.Hash(raw)[:12]).
		Str("game_language", gameLang.String()).
		Int("sections", len(exported.Sections)).
		Int("consumed", len(used)).
		Msg("Item parsed")

	return target, nil
}

// Read parses raw and reports the outcome as a Result.
func (s *Service) Read(raw string, opts Options) Result {
	it, err := s.Parse(raw, opts)
	switch {
	case err == nil:
		return Result{Code: ResultSuccess, Item: it}
	case errors.Is(err, ErrEmptyInput):
		return Result{Code: ResultEmpty, Err: err}
	default:
		return Result{Code: ResultParserError, Err: err}
	}
}

// NameType renders the display title of an item in lang: the translated name
// and type joined by a space, or the type alone when nameID is empty.
func (s *Service) NameType(nameID, typeID string, lang localization.Language) (string, error) {
	loc := s.resolver.For(lang)
	typ, err := baseTypeName(loc, typeID)
	if err != nil {
		return "", err
	}
	if nameID == "" {
		return typ, nil
	}
	name, err := loc.Word(nameID)
	if err != nil {
		if lang == localization.English {
			return "", err
		}
		if name, err = loc.Fallback().Word(nameID); err != nil {
			return "", err
		}
	}
	return name + " " + typ, nil
}
