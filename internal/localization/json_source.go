package localization

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Asset file names inside a dictionary directory.
const (
	CategoriesFile = "base-item-type-categories.json"
)

var domainFiles = map[Domain]string{
	ClientStrings: "client-strings.json",
	Words:         "words.json",
	BaseItemTypes: "base-item-types.json",
	Stats:         "stats.json",
}

// FileName returns the asset file name of a domain.
func (d Domain) FileName() string { return domainFiles[d] }

// JSONSource serves dictionaries from JSON assets shaped
// {"<Language>": {"<id>": "<text>"}}. Object order is kept, which is what
// first-match reverse lookup relies on.
type JSONSource struct {
	dir   string
	files map[string][]byte
}

// NewJSONSource reads and validates every asset in dir. A missing domain file
// simply yields no tables for that domain.
func NewJSONSource(dir string) (*JSONSource, error) {
	s := &JSONSource{dir: dir, files: make(map[string][]byte)}

	names := []string{CategoriesFile}
	for _, d := range Domains {
		names = append(names, d.FileName())
	}

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("invalid json in %s", name)
		}
		s.files[name] = data
	}

	return s, nil
}

// LoadTable implements Source.
func (s *JSONSource) LoadTable(_ context.Context, lang Language, d Domain) (*Table, error) {
	data, ok := s.files[d.FileName()]
	if !ok {
		return nil, nil
	}

	res := gjson.GetBytes(data, gjson.Escape(lang.String()))
	if !res.Exists() {
		return nil, nil
	}
	if !res.IsObject() {
		return nil, fmt.Errorf("%s: %s is not an object", d.FileName(), lang)
	}

	var entries []Entry
	res.ForEach(func(key, value gjson.Result) bool {
		entries = append(entries, Entry{ID: key.String(), Text: value.String()})
		return true
	})
	return NewTable(entries), nil
}

// LoadCategories implements Source.
func (s *JSONSource) LoadCategories(_ context.Context) (map[string]string, error) {
	out := make(map[string]string)
	data, ok := s.files[CategoriesFile]
	if !ok {
		return out, nil
	}

	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = value.String()
		return true
	})
	return out, nil
}
