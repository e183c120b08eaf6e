package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"item-parser/internal/config"
	"item-parser/internal/item"
	"item-parser/internal/localization"
)

func useAssets(t *testing.T) {
	t.Helper()
	t.Setenv("ASSETS_DIR", filepath.Join("..", "..", "assets"))
	t.Setenv("TABLE_SOURCE", config.SourceJSON)
	t.Setenv("PARSER_LANGUAGE", "")
	t.Setenv("PARSER_GAME_LANGUAGE", "")
	t.Setenv("LOG_LEVEL", "disabled")
}

func TestBuildOptions(t *testing.T) {
	cfg := &config.Config{Language: "en", GameLanguage: ""}

	tests := []struct {
		name     string
		lang     string
		gameLang string
		sections []string
		wantLang localization.Language
		wantGame localization.Language
		wantErr  bool
	}{
		{name: "defaults", wantLang: localization.English, wantGame: localization.English},
		{name: "game language follows language", lang: "German", wantLang: localization.German, wantGame: localization.German},
		{name: "separate game language", lang: "en", gameLang: "de", wantLang: localization.English, wantGame: localization.German},
		{name: "sections", sections: []string{"stats", " itemLevel"}, wantLang: localization.English, wantGame: localization.English},
		{name: "bad language", lang: "Klingon", wantErr: true},
		{name: "bad section", sections: []string{"flavour"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := buildOptions(cfg, tt.lang, tt.gameLang, tt.sections)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, opts.Language)
			assert.Equal(t, tt.wantGame, opts.GameLanguage)
			assert.Len(t, opts.Sections, len(tt.sections))
		})
	}
}

func TestParseCommand(t *testing.T) {
	useAssets(t)

	raw := "Gegenstandsklasse: Gürtel\nSeltenheit: Einzigartig\nKopfjäger\nLedergürtel\n--------\nGegenstandsstufe: 86\n"
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(raw))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"parse", "--game-language", "de"})

	require.NoError(t, cmd.Execute())

	var it item.Item
	require.NoError(t, json.Unmarshal(out.Bytes(), &it))
	assert.Equal(t, "BeltLeather", it.TypeID)
	assert.Equal(t, "Headhunter", it.NameID)
	assert.Equal(t, item.RarityUnique, it.Rarity)
	assert.Equal(t, 86, it.Level)
}

func TestParseCommand_Failure(t *testing.T) {
	useAssets(t)

	path := filepath.Join(t.TempDir(), "dump.txt")
	require.NoError(t, os.WriteFile(path, []byte("Item Class: Maps\nRarity: Legendary\nStrand Map"), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"parse", path})

	assert.ErrorContains(t, cmd.Execute(), "parser_error")
}

func TestParseDirCommand(t *testing.T) {
	useAssets(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Item Class: Maps\nRarity: Normal\nStrand Map"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte(""), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"parse-dir", dir})

	assert.NoError(t, cmd.Execute())
}

func TestCheckTablesCommand(t *testing.T) {
	useAssets(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"check-tables"})

	assert.NoError(t, cmd.Execute())
}

func TestLoadResolver_UnknownSource(t *testing.T) {
	_, _, err := loadResolver(t.Context(), &config.Config{TableSource: "redis"})

	assert.ErrorContains(t, err, "unknown TABLE_SOURCE")
}

func TestSeedTablesCommand_UnknownTarget(t *testing.T) {
	useAssets(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed-tables", "redis"})

	assert.ErrorContains(t, cmd.Execute(), "unknown seed target")
}

func TestInvalidConfigurationIsRejected(t *testing.T) {
	useAssets(t)
	t.Setenv("WORKER_COUNT", "0")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check-tables"})

	assert.ErrorContains(t, cmd.Execute(), "WORKER_COUNT")
}
