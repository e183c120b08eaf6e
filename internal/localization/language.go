package localization

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language identifies a game client language.
type Language int

const (
	English Language = iota + 1
	Portuguese
	Russian
	Thai
	German
	French
	Spanish
	Korean
	SimplifiedChinese
	TraditionalChinese
	Japanese
)

// languageNames are the keys used by the dictionary assets.
var languageNames = map[Language]string{
	English:            "English",
	Portuguese:         "Portuguese",
	Russian:            "Russian",
	Thai:               "Thai",
	German:             "German",
	French:             "French",
	Spanish:            "Spanish",
	Korean:             "Korean",
	SimplifiedChinese:  "SimplifiedChinese",
	TraditionalChinese: "TraditionalChinese",
	Japanese:           "Japanese",
}

// languageTags are matched against user supplied BCP 47 tags. The index of a
// tag is its Language minus one.
var languageTags = []language.Tag{
	language.English,
	language.Portuguese,
	language.Russian,
	language.Thai,
	language.German,
	language.French,
	language.Spanish,
	language.Korean,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.Japanese,
}

var languageMatcher = language.NewMatcher(languageTags)

// Languages returns every supported language in declaration order.
func Languages() []Language {
	out := make([]Language, 0, len(languageTags))
	for i := range languageTags {
		out = append(out, Language(i+1))
	}
	return out
}

func (l Language) String() string {
	if n, ok := languageNames[l]; ok {
		return n
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l < English || int(l) > len(languageTags) {
		return language.Und
	}
	return languageTags[l-1]
}

// ParseLanguage accepts either an asset name ("German") or a BCP 47 tag
// ("de", "pt-BR", "zh-TW").
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for l, n := range languageNames {
		if strings.EqualFold(n, s) {
			return l, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("parse language %q: %w", s, err)
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return 0, fmt.Errorf("unsupported language %q", s)
	}
	return Language(idx + 1), nil
}
