package localization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"English", English},
		{"german", German},
		{"en", English},
		{"de-DE", German},
		{"pt-BR", Portuguese},
		{"zh-TW", TraditionalChinese},
		{"zh-CN", SimplifiedChinese},
		{"ko", Korean},
		{" ja ", Japanese},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguageRejectsUnknown(t *testing.T) {
	_, err := ParseLanguage("not a language!")
	assert.Error(t, err)
}

func TestLanguagesCoverNames(t *testing.T) {
	langs := Languages()
	assert.Len(t, langs, len(languageNames))
	for _, l := range langs {
		assert.NotContains(t, l.String(), "Language(")
		assert.NotEqual(t, "und", l.Tag().String())
	}
	assert.Equal(t, "Language(99)", Language(99).String())
}
