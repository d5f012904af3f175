package corpus

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/radix-engine/backend/internal/config"
)

// Store owns the single corpus and word index snapshot for a process.
// Both are loaded on first use and then shared read-only; concurrent first
// calls are collapsed into one load.
type Store struct {
	reader    Reader
	sources   []string
	wordsFile string
	opts      []LoadOption
	logger    *logrus.Entry

	group  singleflight.Group
	corpus atomic.Pointer[Corpus]
	words  atomic.Pointer[WordIndex]
}

// NewStore creates a store reading from r. Nothing is read until first use or Warm.
func NewStore(r Reader, cfg config.CorpusConfig, logger *logrus.Entry) *Store {
	if logger == nil {
		logger = logrus.WithField("component", "corpus_store")
	}
	return &Store{
		reader:    r,
		sources:   append([]string(nil), cfg.Sources...),
		wordsFile: cfg.WordsFile,
		opts:      []LoadOption{WithWorkers(cfg.LoadWorkers), WithLogger(logger)},
		logger:    logger,
	}
}

// Corpus returns the merged fragment collection, loading it on first call.
func (s *Store) Corpus() *Corpus {
	if c := s.corpus.Load(); c != nil {
		return c
	}
	v, _, _ := s.group.Do("corpus", func() (interface{}, error) {
		if c := s.corpus.Load(); c != nil {
			return c, nil
		}
		c := LoadCorpus(s.reader, s.sources, s.opts...)
		s.corpus.Store(c)
		return c, nil
	})
	return v.(*Corpus)
}

// Words returns the word index, loading it on first call.
func (s *Store) Words() *WordIndex {
	if w := s.words.Load(); w != nil {
		return w
	}
	v, _, _ := s.group.Do("words", func() (interface{}, error) {
		if w := s.words.Load(); w != nil {
			return w, nil
		}
		w := LoadWords(s.reader, s.wordsFile, s.opts...)
		s.words.Store(w)
		return w, nil
	})
	return v.(*WordIndex)
}

// Warm loads both collections up front.
func (s *Store) Warm() {
	c := s.Corpus()
	w := s.Words()
	s.logger.WithFields(logrus.Fields{
		"fragments": c.Len(),
		"words":     w.Len(),
	}).Info("Corpus store warmed")
}

// Loaded reports whether both collections are in memory.
func (s *Store) Loaded() bool {
	return s.corpus.Load() != nil && s.words.Load() != nil
}
