package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/radix-engine/backend/internal/config"
	"github.com/radix-engine/backend/internal/corpus"
	"github.com/radix-engine/backend/internal/decompose"
	"github.com/radix-engine/backend/internal/search"
)

// Store is the loaded data the engine queries. *corpus.Store satisfies it.
type Store interface {
	Corpus() *corpus.Corpus
	Words() *corpus.WordIndex
}

// Engine wires the query components over one shared corpus store
type Engine struct {
	Config     *config.Config
	Logger     *logrus.Entry
	Store      Store
	Searcher   *search.Searcher
	Decomposer *decompose.Decomposer

	Stats EngineStats
}

type EngineStats struct {
	StartTime time.Time
}

// Status is a snapshot of what the engine has loaded
type Status struct {
	Fragments int                   `json:"fragments"`
	Words     int                   `json:"words"`
	Sources   []corpus.SourceStatus `json:"sources"`
	Uptime    string                `json:"uptime"`
}

// LookupResult is a fragment with its related fragments attached
type LookupResult struct {
	search.FragmentView
	Related []search.RelatedFragment `json:"related"`
}

func NewEngine(cfg *config.Config, logger *logrus.Entry, store Store) *Engine {
	return &Engine{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Searcher:   search.NewSearcher(store, cfg.Query),
		Decomposer: decompose.NewDecomposer(store, cfg.Query),
		Stats: EngineStats{
			StartTime: time.Now(),
		},
	}
}

// Lang returns lang, or the configured default when it is empty
func (e *Engine) Lang(lang string) string {
	if lang == "" {
		return e.Config.Query.DefaultLang
	}
	return lang
}

// Lookup finds a fragment by id
func (e *Engine) Lookup(id, lang string) (search.FragmentView, bool) {
	return e.Searcher.Lookup(id, e.Lang(lang))
}

// LookupWithRelated finds a fragment by id and attaches fragments sharing its examples
func (e *Engine) LookupWithRelated(id, lang string) (LookupResult, bool) {
	view, ok := e.Lookup(id, lang)
	if !ok {
		return LookupResult{}, false
	}
	return LookupResult{
		FragmentView: view,
		Related:      e.Searcher.FindRelated(id),
	}, true
}

func (e *Engine) Search(query, lang string) []search.FragmentView {
	return e.Searcher.Search(query, e.Lang(lang))
}

func (e *Engine) Decompose(word, lang string) (*decompose.Decomposition, bool) {
	return e.Decomposer.Decompose(word, e.Lang(lang))
}

func (e *Engine) Render(d *decompose.Decomposition) string {
	return e.Decomposer.Render(d)
}

func (e *Engine) SearchWords(query string) []string {
	return e.Decomposer.SearchWords(query)
}

func (e *Engine) WordCount() int {
	return e.Decomposer.WordCount()
}

// Status reports corpus and word index sizes, loading them if needed
func (e *Engine) Status() Status {
	c := e.Store.Corpus()
	sources := c.Sources()
	if sources == nil {
		sources = []corpus.SourceStatus{}
	}
	return Status{
		Fragments: c.Len(),
		Words:     e.Store.Words().Len(),
		Sources:   sources,
		Uptime:    time.Since(e.Stats.StartTime).Round(time.Second).String(),
	}
}
