package localization

import (
	"fmt"

	"item-parser/internal/textutil"
)

// Resolver performs id→text and text→id lookups over loaded tables.
type Resolver struct {
	tables *Tables
}

// NewResolver creates a resolver over fully loaded tables.
func NewResolver(tables *Tables) *Resolver {
	return &Resolver{tables: tables}
}

// Tables exposes the underlying tables.
func (r *Resolver) Tables() *Tables { return r.tables }

// Translate returns the display text of id in lang.
func (r *Resolver) Translate(d Domain, id string, lang Language) (string, error) {
	t, ok := r.tables.Table(lang, d)
	if !ok {
		return "", fmt.Errorf("%w: %s %q (no %s table)", ErrUnknownID, d, id, lang)
	}
	text, ok := t.Text(id)
	if !ok {
		return "", fmt.Errorf("%w: %s %q in %s", ErrUnknownID, d, id, lang)
	}
	return text, nil
}

// Search returns the first id whose text in lang equals text. A miss is not
// an error; callers retry in English with SearchWithFallback.
func (r *Resolver) Search(d Domain, text string, lang Language) (string, bool) {
	t, ok := r.tables.Table(lang, d)
	if !ok {
		return "", false
	}
	return t.ID(text)
}

// SearchWithFallback searches lang first and English second. Clients ship
// partially translated data, so untranslated text is still resolved.
func (r *Resolver) SearchWithFallback(d Domain, text string, lang Language) (string, bool) {
	if id, ok := r.Search(d, text, lang); ok {
		return id, true
	}
	if lang == English {
		return "", false
	}
	return r.Search(d, text, English)
}

// Category returns the category metadata of a base item type.
func (r *Resolver) Category(typeID string) (string, bool) {
	return r.tables.Category(typeID)
}

// For binds the resolver to a language.
func (r *Resolver) For(lang Language) *Localizer {
	return &Localizer{resolver: r, lang: lang}
}

// Localizer is a Resolver bound to the game language of one dump.
type Localizer struct {
	resolver *Resolver
	lang     Language
}

// Language returns the bound language.
func (l *Localizer) Language() Language { return l.lang }

// ClientString translates a client string id. Like every Localizer lookup it
// returns plain text, with markup removed, as it appears in a dump.
func (l *Localizer) ClientString(id string) (string, error) {
	return l.plain(ClientStrings, id)
}

// BaseItemType translates a base item type id.
func (l *Localizer) BaseItemType(id string) (string, error) {
	return l.plain(BaseItemTypes, id)
}

// Word translates a word id.
func (l *Localizer) Word(id string) (string, error) {
	return l.plain(Words, id)
}

func (l *Localizer) plain(d Domain, id string) (string, error) {
	text, err := l.resolver.Translate(d, id, l.lang)
	if err != nil {
		return "", err
	}
	return textutil.StripMarkup(text), nil
}

// SearchBaseItemType resolves a type line to a base item type id.
func (l *Localizer) SearchBaseItemType(text string) (string, bool) {
	return l.resolver.SearchWithFallback(BaseItemTypes, text, l.lang)
}

// SearchWord resolves a name line to a word id.
func (l *Localizer) SearchWord(text string) (string, bool) {
	return l.resolver.SearchWithFallback(Words, text, l.lang)
}

// Category returns the category metadata of a base item type.
func (l *Localizer) Category(typeID string) (string, bool) {
	return l.resolver.Category(typeID)
}

// StatTemplates returns the stat templates to try for a line: the bound
// language first, then English.
func (l *Localizer) StatTemplates() [][]StatTemplate {
	var out [][]StatTemplate
	if t, ok := l.resolver.tables.Table(l.lang, Stats); ok {
		out = append(out, t.StatTemplates())
	}
	if l.lang != English {
		if t, ok := l.resolver.tables.Table(English, Stats); ok {
			out = append(out, t.StatTemplates())
		}
	}
	return out
}

// Fallback returns the English localizer.
func (l *Localizer) Fallback() *Localizer {
	return l.resolver.For(English)
}
