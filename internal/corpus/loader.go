package corpus

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// Reader reads the static backing files. storage.FileStorage is the production implementation.
type Reader interface {
	ReadFragments(name string) ([]Fragment, error)
	ReadWords(name string) (*WordIndex, error)
}

type loadOptions struct {
	workers int
	logger  *logrus.Entry
}

// LoadOption configures LoadCorpus and LoadWords.
type LoadOption func(*loadOptions)

// WithWorkers sets how many sources are read in parallel.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithWorkers(n int) LoadOption {
	return func(o *loadOptions) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

func WithLogger(logger *logrus.Entry) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newLoadOptions(opts []LoadOption) *loadOptions {
	o := &loadOptions{
		workers: runtime.NumCPU(),
		logger:  logrus.WithField("component", "corpus_loader"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type sourceResult struct {
	fragments []Fragment
	err       error
}

// LoadCorpus reads every source and merges them in the given order. A fragment
// whose id was already seen is dropped, so earlier sources win. A source that
// can't be read or parsed is logged and contributes nothing; LoadCorpus never fails.
func LoadCorpus(r Reader, sources []string, opts ...LoadOption) *Corpus {
	o := newLoadOptions(opts)
	results := readSources(r, sources, o)

	c := &Corpus{byID: make(map[string]int)}
	for i, name := range sources {
		status := SourceStatus{Name: name, Tag: SourceTag(name)}
		if err := results[i].err; err != nil {
			o.logger.WithError(err).WithField("source", name).Warn("Failed to load corpus source")
			status.Error = err.Error()
			c.sources = append(c.sources, status)
			continue
		}
		for _, f := range results[i].fragments {
			f.Source = status.Tag
			if c.add(f) {
				status.Fragments++
			}
		}
		c.sources = append(c.sources, status)
	}

	o.logger.WithFields(logrus.Fields{
		"sources":   len(sources),
		"fragments": c.Len(),
	}).Info("Corpus loaded")
	return c
}

// readSources reads all sources on an ants pool. Results are slotted by index
// so the merge order never depends on scheduling.
func readSources(r Reader, sources []string, o *loadOptions) []sourceResult {
	results := make([]sourceResult, len(sources))
	read := func(i int) {
		fragments, err := r.ReadFragments(sources[i])
		results[i] = sourceResult{fragments: fragments, err: err}
	}

	if len(sources) < 2 || o.workers < 2 {
		for i := range sources {
			read(i)
		}
		return results
	}

	pool, err := ants.NewPool(o.workers)
	if err != nil {
		o.logger.WithError(err).Warn("Worker pool unavailable, reading sources sequentially")
		for i := range sources {
			read(i)
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range sources {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			read(i)
		}); err != nil {
			wg.Done()
			read(i)
		}
	}
	wg.Wait()
	return results
}

// LoadWords reads the word index. Failure yields an empty index, never an error.
func LoadWords(r Reader, name string, opts ...LoadOption) *WordIndex {
	o := newLoadOptions(opts)
	words, err := r.ReadWords(name)
	if err != nil || words == nil {
		o.logger.WithError(err).WithField("source", name).Warn("Failed to load word index")
		return EmptyWordIndex()
	}
	o.logger.WithFields(logrus.Fields{
		"source": name,
		"words":  words.Len(),
	}).Info("Word index loaded")
	return words
}
