// Package parser turns a segmented clipboard dump into an item record by
// running an ordered chain of section parsers.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"item-parser/internal/item"
	"item-parser/internal/localization"
)

// SectionParser reads one kind of section. It returns the sections it
// consumed, or none when its section is absent. A returned error is fatal for
// the whole item.
type SectionParser interface {
	Kind() item.SectionKind
	Optional() bool
	Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error)
}

var numberPattern = regexp.MustCompile(`[+-]?[0-9]+`)

// labelValue returns the text after "<label>:" when line starts with it.
func labelValue(line, label string) (string, bool) {
	rest, ok := strings.CutPrefix(line, label+":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// parseNumbers returns every integer in s, ignoring signs of "+".
func parseNumbers(s string) []int {
	var out []int
	for _, m := range numberPattern.FindAllString(s, -1) {
		n, err := strconv.Atoi(strings.TrimPrefix(m, "+"))
		if err == nil {
			out = append(out, n)
		}
	}
	return out
}

func parseNumber(s string) (int, bool) {
	n := parseNumbers(s)
	if len(n) == 0 {
		return 0, false
	}
	return n[0], true
}

// clientStrings translates ids in the bound language, keyed by id.
func clientStrings(loc *localization.Localizer, ids ...string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		s, err := loc.ClientString(id)
		if err != nil {
			return nil, err
		}
		out[id] = s
	}
	return out, nil
}
