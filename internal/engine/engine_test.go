package engine_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radix-engine/backend/internal/config"
	"github.com/radix-engine/backend/internal/corpus"
	"github.com/radix-engine/backend/internal/engine"
)

type staticStore struct {
	fragments *corpus.Corpus
	words     *corpus.WordIndex
}

func (s staticStore) Corpus() *corpus.Corpus { return s.fragments }
func (s staticStore) Words() *corpus.WordIndex { return s.words }

func setupEngine() *engine.Engine {
	store := staticStore{
		fragments: corpus.NewCorpus([]corpus.Fragment{
			{ID: "bene", Forms: []string{"bene"}, Meaning: "good", Examples: []string{"benefit"},
				Translations: map[string]corpus.Translation{"vi": {Meaning: "tốt"}}},
			{ID: "fic", Forms: []string{"fic"}, Meaning: "to make", Examples: []string{"benefit"}},
		}),
		words: corpus.NewWordIndex([]string{"benefit"}, map[string]corpus.WordEntry{
			"benefit": {MorphemeCount: 2, Roots: []corpus.RootRef{
				{Morpheme: "bene", Type: corpus.PositionRoot, Position: 0, FragmentID: "bene"},
				{Morpheme: "fit", Type: corpus.PositionRoot, Position: 1, FragmentID: "fic"},
			}},
		}),
	}

	cfg := config.Load()
	cfg.Query.DefaultLang = "en"
	return engine.NewEngine(cfg, logrus.New().WithField("test", "engine"), store)
}

func TestLangDefault(t *testing.T) {
	eng := setupEngine()

	assert.Equal(t, "en", eng.Lang(""))
	assert.Equal(t, "ko", eng.Lang("ko"))
}

func TestLookupWithRelated(t *testing.T) {
	eng := setupEngine()

	result, ok := eng.LookupWithRelated("bene", "vi")
	require.True(t, ok)
	assert.Equal(t, "bene", result.ID)
	require.NotNil(t, result.Translation)
	assert.Equal(t, "tốt", result.Translation.Meaning)
	require.Len(t, result.Related, 1)
	assert.Equal(t, "fic", result.Related[0].ID)

	_, ok = eng.LookupWithRelated("nope", "")
	assert.False(t, ok)
}

func TestDecomposeDefaultsLang(t *testing.T) {
	eng := setupEngine()

	dec, ok := eng.Decompose("BENEFIT", "")
	require.True(t, ok)
	assert.Empty(t, dec.Roots[0].Translation)
	assert.Contains(t, eng.Render(dec), "[BENE] + [FIT]")
}

func TestStatus(t *testing.T) {
	eng := setupEngine()

	status := eng.Status()
	assert.Equal(t, 2, status.Fragments)
	assert.Equal(t, 1, status.Words)
	assert.NotNil(t, status.Sources)
	assert.NotEmpty(t, status.Uptime)
}
