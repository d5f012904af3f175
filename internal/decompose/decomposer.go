// Package decompose breaks words into their morphemes by joining the word
// index against the fragment corpus, and renders the result as plain text.
package decompose

import (
	"encoding/json"
	"strings"

	"github.com/radix-engine/backend/internal/config"
	"github.com/radix-engine/backend/internal/corpus"
)

// UnknownMeaning is reported for a morpheme whose fragment is missing from the corpus.
const UnknownMeaning = "unknown"

// DataProvider hands out the loaded word index and corpus. *corpus.Store satisfies it.
type DataProvider interface {
	Corpus() *corpus.Corpus
	Words() *corpus.WordIndex
}

// RootDetail is one morpheme of a decomposed word enriched with fragment data.
// Only Morpheme, Type, Position and Meaning are set when the fragment is missing.
type RootDetail struct {
	Morpheme    string          `json:"morpheme"`
	Type        corpus.Position `json:"type"`
	Position    int             `json:"position"`
	FragmentID  string          `json:"fragment_id,omitempty"`
	Meaning     string          `json:"meaning"`
	Origin      string          `json:"origin,omitempty"`
	Forms       []string        `json:"forms,omitempty"`
	Examples    []string        `json:"examples,omitempty"`
	Translation string          `json:"translation,omitempty"`
}

// MarshalJSON always writes examples for a resolved root, as an empty array
// when the fragment has none.
func (r RootDetail) MarshalJSON() ([]byte, error) {
	type plain RootDetail
	if r.FragmentID == "" {
		return json.Marshal(plain(r))
	}
	examples := r.Examples
	if examples == nil {
		examples = []string{}
	}
	return json.Marshal(struct {
		plain
		Examples []string `json:"examples"`
	}{plain(r), examples})
}

// Decomposition is the ordered breakdown of a word. Roots follow the word
// index order, not necessarily position order.
type Decomposition struct {
	Word          string       `json:"word"`
	MorphemeCount int          `json:"morpheme_count"`
	Roots         []RootDetail `json:"roots"`
}

type Decomposer struct {
	data   DataProvider
	config config.QueryConfig
}

func NewDecomposer(data DataProvider, cfg config.QueryConfig) *Decomposer {
	return &Decomposer{
		data:   data,
		config: cfg,
	}
}

// Decompose looks the word up and resolves each of its morphemes. It reports
// false for words missing from the index. A morpheme pointing at an unknown
// fragment degrades to an "unknown" meaning instead of failing the word.
func (d *Decomposer) Decompose(word, lang string) (*Decomposition, bool) {
	w := corpus.Normalize(word)
	entry, ok := d.data.Words().Get(w)
	if !ok {
		return nil, false
	}

	fragments := d.data.Corpus()
	roots := make([]RootDetail, 0, len(entry.Roots))
	for _, ref := range entry.Roots {
		f, ok := fragments.Get(ref.FragmentID)
		if !ok {
			roots = append(roots, RootDetail{
				Morpheme: ref.Morpheme,
				Type:     ref.Type,
				Position: ref.Position,
				Meaning:  UnknownMeaning,
			})
			continue
		}

		detail := RootDetail{
			Morpheme:   ref.Morpheme,
			Type:       ref.Type,
			Position:   ref.Position,
			FragmentID: ref.FragmentID,
			Meaning:    f.Meaning,
			Origin:     f.Origin,
			Forms:      f.Forms,
			Examples:   firstN(f.Examples, d.config.ExampleLimit),
		}
		if lang != d.config.DefaultLang {
			if tr, ok := f.Translation(lang); ok {
				detail.Translation = tr.Meaning
			}
		}
		roots = append(roots, detail)
	}

	return &Decomposition{
		Word:          w,
		MorphemeCount: entry.MorphemeCount,
		Roots:         roots,
	}, true
}

// SearchWords returns index words containing the query, in index order.
func (d *Decomposer) SearchWords(query string) []string {
	q := corpus.Normalize(query)
	matches := make([]string, 0)
	for _, word := range d.data.Words().Keys() {
		if len(matches) >= d.config.WordSearchLimit {
			break
		}
		lower := strings.ToLower(word)
		if strings.HasPrefix(lower, q) || strings.Contains(lower, q) {
			matches = append(matches, word)
		}
	}
	return matches
}

// WordCount is the size of the word index as declared by its file.
func (d *Decomposer) WordCount() int {
	return d.data.Words().WordCount()
}

func firstN(list []string, n int) []string {
	if n >= 0 && len(list) > n {
		return list[:n]
	}
	return list
}
