package search

import (
	"sort"
	"strings"

	"github.com/radix-engine/backend/internal/config"
	"github.com/radix-engine/backend/internal/corpus"
)

// CorpusProvider hands out the loaded corpus. *corpus.Store satisfies it.
type CorpusProvider interface {
	Corpus() *corpus.Corpus
}

// Searcher answers fragment queries over the corpus
type Searcher struct {
	corpus CorpusProvider
	config config.QueryConfig
}

func NewSearcher(provider CorpusProvider, cfg config.QueryConfig) *Searcher {
	return &Searcher{
		corpus: provider,
		config: cfg,
	}
}

// Format turns a fragment into its presentation record for lang
func (s *Searcher) Format(f *corpus.Fragment, lang string) FragmentView {
	view := FragmentView{
		ID:          f.ID,
		Forms:       orEmpty(f.Forms),
		Meaning:     f.Meaning,
		Synonyms:    orEmpty(f.Synonyms),
		Examples:    orEmpty(f.Examples),
		Origin:      f.Origin,
		Position:    f.Position,
		Explanation: f.Explanation,
		Source:      f.Source,
	}
	if lang != s.config.DefaultLang {
		if tr, ok := f.Translation(lang); ok {
			view.Translation = &tr
		}
	}
	return view
}

// Lookup finds a fragment by exact id
func (s *Searcher) Lookup(id, lang string) (FragmentView, bool) {
	f, ok := s.corpus.Corpus().Get(id)
	if !ok {
		return FragmentView{}, false
	}
	return s.Format(f, lang), true
}

// Search matches the query against fragment forms first (exact or prefix),
// then against meanings and synonyms (substring). Form matches rank first.
func (s *Searcher) Search(query, lang string) []FragmentView {
	q := corpus.Normalize(query)
	fragments := s.corpus.Corpus().All()

	var byForm, byMeaning []*corpus.Fragment
	for i := range fragments {
		f := &fragments[i]
		if matchesForm(f, q) {
			byForm = append(byForm, f)
		}
		if matchesMeaning(f, q) {
			byMeaning = append(byMeaning, f)
		}
	}

	seen := make(map[string]bool)
	results := make([]FragmentView, 0)
	for _, f := range append(byForm, byMeaning...) {
		if len(results) >= s.config.SearchLimit {
			break
		}
		if seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		results = append(results, s.Format(f, lang))
	}
	return results
}

func matchesForm(f *corpus.Fragment, q string) bool {
	for _, form := range f.Forms {
		if strings.HasPrefix(strings.ToLower(form), q) {
			return true
		}
	}
	return false
}

func matchesMeaning(f *corpus.Fragment, q string) bool {
	if strings.Contains(strings.ToLower(f.Meaning), q) {
		return true
	}
	for _, syn := range f.Synonyms {
		if strings.Contains(strings.ToLower(syn), q) {
			return true
		}
	}
	return false
}

// FindRelated ranks other fragments by how many example words they share with
// the fragment id. Ties keep corpus order. Unknown ids yield an empty list.
func (s *Searcher) FindRelated(id string) []RelatedFragment {
	c := s.corpus.Corpus()
	related := make([]RelatedFragment, 0)

	target, ok := c.Get(id)
	if !ok {
		return related
	}

	targetExamples := make(map[string]bool, len(target.Examples))
	for _, e := range target.Examples {
		targetExamples[e] = true
	}

	type hit struct {
		fragment *corpus.Fragment
		shared   int
	}
	var hits []hit
	fragments := c.All()
	for i := range fragments {
		f := &fragments[i]
		if f.ID == id {
			continue
		}
		if shared := sharedCount(f.Examples, targetExamples); shared > 0 {
			hits = append(hits, hit{fragment: f, shared: shared})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].shared > hits[j].shared
	})

	for _, h := range hits {
		if len(related) >= s.config.RelatedLimit {
			break
		}
		related = append(related, RelatedFragment{
			ID:             h.fragment.ID,
			Forms:          orEmpty(h.fragment.Forms),
			Meaning:        h.fragment.Meaning,
			SharedExamples: h.shared,
		})
	}
	return related
}

// sharedCount is the size of the intersection of examples with target.
func sharedCount(examples []string, target map[string]bool) int {
	counted := make(map[string]bool, len(examples))
	for _, e := range examples {
		if target[e] && !counted[e] {
			counted[e] = true
		}
	}
	return len(counted)
}
