package localization

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// GraphSource serves and stores dictionaries in Neo4j. Texts are
// (:LocalizedText) nodes; base types link to a category hierarchy
// (:BaseItemType)-[:IN_CATEGORY]->(:Category)-[:SUBCATEGORY_OF]->(:Category).
type GraphSource struct {
	driver neo4j.DriverWithContext
}

// NewGraphSource creates a source over a connected driver.
func NewGraphSource(driver neo4j.DriverWithContext) *GraphSource {
	return &GraphSource{driver: driver}
}

// EnsureSchema creates uniqueness constraints.
func (s *GraphSource) EnsureSchema(ctx context.Context) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	constraints := []string{
		"CREATE CONSTRAINT IF NOT EXISTS FOR (e:LocalizedText) REQUIRE (e.language, e.domain, e.id) IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (b:BaseItemType) REQUIRE b.id IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (c:Category) REQUIRE c.name IS UNIQUE",
	}
	for _, c := range constraints {
		if _, err := session.Run(ctx, c, nil); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	log.Info().Msg("Graph localization schema ensured")
	return nil
}

// LoadTable implements Source.
func (s *GraphSource) LoadTable(ctx context.Context, lang Language, d Domain) (*Table, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (e:LocalizedText {language: $language, domain: $domain})
		RETURN e.id AS id, e.text AS text
		ORDER BY e.position
	`, map[string]any{"language": lang.String(), "domain": d.String()})
	if err != nil {
		return nil, fmt.Errorf("query %s %s: %w", lang, d, err)
	}

	var entries []Entry
	for result.Next(ctx) {
		record := result.Record()
		id, _ := record.Get("id")
		text, _ := record.Get("text")
		entries = append(entries, Entry{ID: fmt.Sprintf("%v", id), Text: fmt.Sprintf("%v", text)})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read %s %s: %w", lang, d, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return NewTable(entries), nil
}

// LoadCategories implements Source.
func (s *GraphSource) LoadCategories(ctx context.Context) (map[string]string, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (b:BaseItemType)-[:IN_CATEGORY]->(c:Category)
		RETURN b.id AS id, c.name AS category
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	out := make(map[string]string)
	for result.Next(ctx) {
		record := result.Record()
		id, _ := record.Get("id")
		category, _ := record.Get("category")
		out[fmt.Sprintf("%v", id)] = fmt.Sprintf("%v", category)
	}
	return out, result.Err()
}

// graphStatement is one parameterised Cypher statement of a seed run.
type graphStatement struct {
	cypher string
	params map[string]any
}

// Seed replaces the stored texts and category links with tables. The whole
// run is one write transaction, so readers never observe a partial seed.
func (s *GraphSource) Seed(ctx context.Context, tables *Tables) error {
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	statements, total := seedStatements(tables)
	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, st := range statements {
			if _, err := tx.Run(ctx, st.cypher, st.params); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("seed graph: %w", err)
	}

	log.Info().Int("entries", total).Msg("Seeded localization tables into Neo4j")
	return nil
}

// seedStatements clears the previous seed, then upserts every entry, every
// base type category and the full chain of parent categories.
func seedStatements(tables *Tables) ([]graphStatement, int) {
	statements := []graphStatement{
		{cypher: "MATCH (e:LocalizedText) DETACH DELETE e"},
		{cypher: "MATCH (:BaseItemType)-[r:IN_CATEGORY]->() DELETE r"},
		{cypher: "MATCH (:Category)-[r:SUBCATEGORY_OF]->() DELETE r"},
	}

	total := 0
	for _, lang := range tables.Languages() {
		for _, d := range Domains {
			t, ok := tables.Table(lang, d)
			if !ok {
				continue
			}
			rows := make([]map[string]any, 0, t.Len())
			for i, e := range t.Entries() {
				rows = append(rows, map[string]any{"id": e.ID, "text": e.Text, "position": i})
			}
			statements = append(statements, graphStatement{
				cypher: `
					UNWIND $rows AS row
					MERGE (e:LocalizedText {language: $language, domain: $domain, id: row.id})
					SET e.text = row.text, e.position = row.position
				`,
				params: map[string]any{"language": lang.String(), "domain": d.String(), "rows": rows},
			})
			total += len(rows)
		}
	}

	categories := tables.Categories()
	ids := make([]string, 0, len(categories))
	for id := range categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	linked := make(map[string]bool)
	for _, id := range ids {
		category := categories[id]
		statements = append(statements, graphStatement{
			cypher: `
				MERGE (b:BaseItemType {id: $id})
				MERGE (c:Category {name: $category})
				MERGE (b)-[:IN_CATEGORY]->(c)
			`,
			params: map[string]any{"id": id, "category": category},
		})

		for child, parent := range categoryParents(category) {
			if linked[child] {
				continue
			}
			linked[child] = true
			statements = append(statements, graphStatement{
				cypher: `
					MERGE (c:Category {name: $category})
					MERGE (p:Category {name: $parent})
					MERGE (c)-[:SUBCATEGORY_OF]->(p)
				`,
				params: map[string]any{"category": child, "parent": parent},
			})
		}
	}
	return statements, total
}

// categoryParents yields each dotted category paired with its direct parent,
// from the leaf upwards: "a.b.c" gives ("a.b.c", "a.b") then ("a.b", "a").
func categoryParents(category string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for c := category; ; {
			i := strings.LastIndexByte(c, '.')
			if i < 0 {
				return
			}
			if !yield(c, c[:i]) {
				return
			}
			c = c[:i]
		}
	}
}
