package localization

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Source provides dictionaries from some storage. LoadTable returns a nil
// table without error when the language is absent for that domain.
type Source interface {
	LoadTable(ctx context.Context, lang Language, d Domain) (*Table, error)
	LoadCategories(ctx context.Context) (map[string]string, error)
}

// Seeder stores dictionaries so a Source over the same storage can serve them.
type Seeder interface {
	Seed(ctx context.Context, tables *Tables) error
}

const loadConcurrency = 8

// Load reads every language and domain from src. It must complete before any
// parse starts; the returned tables are never mutated again.
func Load(ctx context.Context, src Source) (*Tables, error) {
	tables := NewTables()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)

	for _, lang := range Languages() {
		for _, d := range Domains {
			g.Go(func() error {
				t, err := src.LoadTable(gctx, lang, d)
				if err != nil {
					return fmt.Errorf("load %s %s: %w", lang, d, err)
				}
				if t == nil {
					return nil
				}

				if d == Stats {
					t.StatTemplates()
				}

				mu.Lock()
				tables.Set(lang, d, t)
				mu.Unlock()

				log.Debug().Str("language", lang.String()).Str("domain", d.String()).Int("entries", t.Len()).Msg("Loaded table")
				return nil
			})
		}
	}

	g.Go(func() error {
		categories, err := src.LoadCategories(gctx)
		if err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		mu.Lock()
		tables.SetCategories(categories)
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}

	log.Info().Int("languages", len(tables.Languages())).Int("categories", len(tables.categories)).Msg("Localization tables loaded")
	return tables, nil
}
