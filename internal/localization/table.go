package localization

import (
	"sync"

	"item-parser/internal/template"
	"item-parser/internal/textutil"
)

// Domain selects one of the four dictionaries kept per language.
type Domain int

const (
	ClientStrings Domain = iota
	Words
	BaseItemTypes
	Stats
)

// Domains lists every domain in load order.
var Domains = []Domain{ClientStrings, Words, BaseItemTypes, Stats}

func (d Domain) String() string {
	switch d {
	case ClientStrings:
		return "client-strings"
	case Words:
		return "words"
	case BaseItemTypes:
		return "base-item-types"
	case Stats:
		return "stats"
	default:
		return "unknown"
	}
}

// Entry is one id/text pair of a dictionary.
type Entry struct {
	ID   string
	Text string
}

// Table is an immutable dictionary for one language and domain.
// Display texts are not unique; reverse lookup returns the first entry in
// table order.
type Table struct {
	entries []Entry
	text    map[string]string
	reverse map[string]string

	patternsOnce sync.Once
	patterns     []StatTemplate
}

// StatTemplate is a stat entry with its compiled, markup free template.
type StatTemplate struct {
	ID      string
	Pattern *template.Pattern
}

// NewTable builds a table from entries in document order. A repeated id keeps
// its first text.
func NewTable(entries []Entry) *Table {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		text:    make(map[string]string, len(entries)),
		reverse: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.text[e.ID]; dup {
			continue
		}
		t.entries = append(t.entries, e)
		t.text[e.ID] = e.Text

		key := textutil.StripMarkup(e.Text)
		if _, taken := t.reverse[key]; !taken {
			t.reverse[key] = e.ID
		}
	}
	return t
}

// Text returns the display text of id.
func (t *Table) Text(id string) (string, bool) {
	s, ok := t.text[id]
	return s, ok
}

// ID returns the first id whose text equals text after markup stripping.
func (t *Table) ID(text string) (string, bool) {
	id, ok := t.reverse[textutil.StripMarkup(text)]
	return id, ok
}

// Entries returns the entries in table order. The slice must not be modified.
func (t *Table) Entries() []Entry { return t.entries }

// Len returns the number of ids in the table.
func (t *Table) Len() int { return len(t.entries) }

// StatTemplates compiles every entry as a stat template on first use and
// returns the same patterns afterwards, in table order.
func (t *Table) StatTemplates() []StatTemplate {
	t.patternsOnce.Do(func() {
		t.patterns = make([]StatTemplate, 0, len(t.entries))
		for _, e := range t.entries {
			t.patterns = append(t.patterns, StatTemplate{
				ID:      e.ID,
				Pattern: template.New(textutil.StripMarkup(e.Text)),
			})
		}
	})
	return t.patterns
}
