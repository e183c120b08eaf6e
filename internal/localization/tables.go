package localization

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownID is returned when an id is not defined for a language.
	// Ids are expected to be exhaustive, so this indicates bad data.
	ErrUnknownID = errors.New("unknown id")

	// ErrMissingEnglish is returned when the fallback tables are not loaded.
	ErrMissingEnglish = errors.New("english tables are required")
)

// Tables holds every loaded dictionary. It is built once and never mutated
// afterwards, so concurrent reads need no locking.
type Tables struct {
	languages  map[Language]*[domainCount]*Table
	categories map[string]string
}

const domainCount = 4

// NewTables creates an empty set of tables. Use Set before handing the value
// to a Resolver.
func NewTables() *Tables {
	return &Tables{
		languages:  make(map[Language]*[domainCount]*Table),
		categories: make(map[string]string),
	}
}

// Set installs the table for a language and domain.
func (ts *Tables) Set(lang Language, d Domain, t *Table) {
	slots, ok := ts.languages[lang]
	if !ok {
		slots = new([domainCount]*Table)
		ts.languages[lang] = slots
	}
	slots[d] = t
}

// SetCategories installs the language independent base type categories.
func (ts *Tables) SetCategories(categories map[string]string) {
	for id, c := range categories {
		ts.categories[id] = c
	}
}

// Table returns the table for a language and domain.
func (ts *Tables) Table(lang Language, d Domain) (*Table, bool) {
	slots, ok := ts.languages[lang]
	if !ok || slots[d] == nil {
		return nil, false
	}
	return slots[d], true
}

// Category returns the category of a base item type.
func (ts *Tables) Category(typeID string) (string, bool) {
	c, ok := ts.categories[typeID]
	return c, ok
}

// Categories returns a copy of the category metadata.
func (ts *Tables) Categories() map[string]string {
	out := make(map[string]string, len(ts.categories))
	for k, v := range ts.categories {
		out[k] = v
	}
	return out
}

// Languages returns the loaded languages in declaration order.
func (ts *Tables) Languages() []Language {
	out := make([]Language, 0, len(ts.languages))
	for l := range ts.languages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks that the English fallback is complete.
func (ts *Tables) Validate() error {
	for _, d := range Domains {
		if _, ok := ts.Table(English, d); !ok {
			return fmt.Errorf("%w: missing %s", ErrMissingEnglish, d)
		}
	}
	return nil
}
