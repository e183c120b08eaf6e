// Package dump segments the text a game client copies to the clipboard into
// sections of lines.
package dump

import (
	"regexp"
	"strings"

	"item-parser/internal/item"
	"item-parser/internal/textutil"
)

// delimiterPattern matches the separator line between sections.
var delimiterPattern = regexp.MustCompile(`^-{2,}$`)

// Split divides raw into sections. Empty input yields an exported item with
// no sections; deciding whether that is fatal is left to the caller.
func Split(raw string) *item.ExportedItem {
	exported := &item.ExportedItem{}

	var block []string
	flush := func() {
		if s := newSection(len(exported.Sections), block); s != nil {
			exported.Sections = append(exported.Sections, s)
		}
		block = block[:0]
	}

	for _, line := range strings.Split(textutil.Normalize(raw), "\n") {
		if delimiterPattern.MatchString(strings.TrimSpace(line)) {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	return exported
}

func newSection(index int, block []string) *item.Section {
	var lines []string
	for _, l := range block {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	return &item.Section{
		Index:   index,
		Content: strings.TrimSpace(strings.Join(block, "\n")),
		Lines:   lines,
	}
}
