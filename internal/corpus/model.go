// Package corpus holds the morpheme data model and the loaders that build
// the immutable in-memory corpus and word index from static source files.
package corpus

// Position says where a morpheme attaches inside a word.
type Position string

const (
	PositionPrefix Position = "prefix"
	PositionRoot   Position = "root"
	PositionSuffix Position = "suffix"
)

// Translation is a fragment's meaning rendered in another language.
type Translation struct {
	Meaning     string   `json:"meaning"`
	Explanation string   `json:"explanation,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// Fragment is a single morpheme record (root, prefix or suffix).
type Fragment struct {
	ID           string                 `json:"id"`
	Forms        []string               `json:"forms"`
	Meaning      string                 `json:"meaning"`
	Synonyms     []string               `json:"synonyms,omitempty"`
	Examples     []string               `json:"examples,omitempty"`
	Origin       string                 `json:"origin,omitempty"`
	Position     Position               `json:"position,omitempty"`
	Explanation  string                 `json:"explanation,omitempty"`
	Translations map[string]Translation `json:"translations,omitempty"`

	// Source is derived from the file the fragment was loaded from.
	Source string `json:"-"`
}

// Translation returns the fragment's translation for lang, if any.
func (f *Fragment) Translation(lang string) (Translation, bool) {
	t, ok := f.Translations[lang]
	return t, ok
}

// RootRef points from a word to one of its morphemes.
type RootRef struct {
	Morpheme   string   `json:"morpheme"`
	Type       Position `json:"type"`
	Position   int      `json:"position"`
	FragmentID string   `json:"fragment_id"`
}

// WordEntry lists the morphemes of a single word.
type WordEntry struct {
	MorphemeCount int       `json:"morpheme_count"`
	Roots         []RootRef `json:"roots"`
}

// Corpus is the merged, deduplicated fragment collection. It is never
// mutated after LoadCorpus returns.
type Corpus struct {
	fragments []Fragment
	byID      map[string]int
	sources   []SourceStatus
}

// SourceStatus records what a single source contributed to the corpus.
type SourceStatus struct {
	Name      string `json:"name"`
	Tag       string `json:"tag"`
	Fragments int    `json:"fragments"`
	Error     string `json:"error,omitempty"`
}

// NewCorpus builds a corpus from already merged fragments. Later duplicates are dropped.
func NewCorpus(fragments []Fragment) *Corpus {
	c := &Corpus{byID: make(map[string]int, len(fragments))}
	for _, f := range fragments {
		c.add(f)
	}
	return c
}

func (c *Corpus) add(f Fragment) bool {
	if _, seen := c.byID[f.ID]; seen {
		return false
	}
	c.byID[f.ID] = len(c.fragments)
	c.fragments = append(c.fragments, f)
	return true
}

// All returns the fragments in load order. Callers must not modify the slice.
func (c *Corpus) All() []Fragment {
	return c.fragments
}

// Get looks up a fragment by exact id.
func (c *Corpus) Get(id string) (*Fragment, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.fragments[i], true
}

func (c *Corpus) Len() int {
	return len(c.fragments)
}

// Sources reports per-source load results in configured order.
func (c *Corpus) Sources() []SourceStatus {
	return c.sources
}
