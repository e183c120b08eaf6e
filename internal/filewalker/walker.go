package filewalker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultExtensions lists the file types treated as saved clipboard dumps.
var DefaultExtensions = map[string]bool{
	".txt": true,
}

// Walker discovers dump files under a directory.
type Walker struct {
	extensions map[string]bool
}

// NewWalker creates a Walker for DefaultExtensions.
func NewWalker() *Walker {
	return &Walker{extensions: DefaultExtensions}
}

// FileEntry is a discovered dump file.
type FileEntry struct {
	Path string
	// Rel is Path relative to the walked root.
	Rel string
}

// Walk returns every dump file under root sorted by relative path.
// Unreadable subdirectories are logged and skipped.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if d.IsDir() || !w.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, FileEntry{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Rel < entries[j].Rel })

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered dumps")
	return entries, nil
}

// ReadFile returns the content of a discovered dump.
func (w *Walker) ReadFile(entry FileEntry) (string, error) {
	b, err := os.ReadFile(entry.Path)
	if err != nil {
		return "", fmt.Errorf("read dump %s: %w", entry.Rel, err)
	}
	return string(b), nil
}
