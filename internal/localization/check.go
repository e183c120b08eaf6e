package localization

// Collision reports an id whose display text resolves back to another id.
type Collision struct {
	Language Language
	Domain   Domain
	ID       string
	Text     string
	Winner   string
}

// Check verifies search(translate(id)) == id for every id of every loaded
// table and returns the ids that lose the first-match tie.
func Check(r *Resolver) []Collision {
	var out []Collision
	for _, lang := range r.tables.Languages() {
		for _, d := range Domains {
			t, ok := r.tables.Table(lang, d)
			if !ok {
				continue
			}
			for _, e := range t.Entries() {
				got, _ := r.Search(d, e.Text, lang)
				if got != e.ID {
					out = append(out, Collision{
						Language: lang,
						Domain:   d,
						ID:       e.ID,
						Text:     e.Text,
						Winner:   got,
					})
				}
			}
		}
	}
	return out
}
