package decompose_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radix-engine/backend/internal/config"
	"github.com/radix-engine/backend/internal/corpus"
	"github.com/radix-engine/backend/internal/decompose"
)

type staticData struct {
	fragments *corpus.Corpus
	words     *corpus.WordIndex
}

func (s staticData) Corpus() *corpus.Corpus { return s.fragments }
func (s staticData) Words() *corpus.WordIndex { return s.words }

func queryConfig() config.QueryConfig {
	return config.QueryConfig{
		DefaultLang:        "en",
		WordSearchLimit:    20,
		ExampleLimit:       5,
		RenderExampleLimit: 3,
	}
}

func fixture() staticData {
	fragments := corpus.NewCorpus([]corpus.Fragment{
		{
			ID: "F1", Forms: []string{"bene", "ben"}, Meaning: "good", Origin: "Latin",
			Examples:     []string{"benefit", "benevolent", "benign", "benediction", "benefactor", "beneficiary"},
			Translations: map[string]corpus.Translation{"ko": {Meaning: "좋은"}},
		},
		{ID: "F2", Forms: []string{"fic", "fact"}, Meaning: "to make"},
		{ID: "F3", Forms: []string{"ial"}, Meaning: "relating to", Position: corpus.PositionSuffix},
	})

	words := corpus.NewWordIndex(
		[]string{"beneficial", "benefit", "misbelief", "abduct"},
		map[string]corpus.WordEntry{
			"beneficial": {MorphemeCount: 3, Roots: []corpus.RootRef{
				{Morpheme: "ial", Type: corpus.PositionSuffix, Position: 2, FragmentID: "F3"},
				{Morpheme: "bene", Type: corpus.PositionRoot, Position: 0, FragmentID: "F1"},
				{Morpheme: "fic", Type: corpus.PositionRoot, Position: 1, FragmentID: "F2"},
			}},
			"benefit": {MorphemeCount: 2, Roots: []corpus.RootRef{
				{Morpheme: "bene", Type: corpus.PositionRoot, Position: 0, FragmentID: "F1"},
				{Morpheme: "fit", Type: corpus.PositionRoot, Position: 1, FragmentID: "GONE"},
			}},
			"misbelief": {MorphemeCount: 0},
			"abduct":    {MorphemeCount: 2},
		},
	)
	return staticData{fragments: fragments, words: words}
}

func TestDecompose(t *testing.T) {
	d := decompose.NewDecomposer(fixture(), queryConfig())

	dec, ok := d.Decompose("  Beneficial ", "en")
	require.True(t, ok)
	assert.Equal(t, "beneficial", dec.Word)
	assert.Equal(t, 3, dec.MorphemeCount)
	require.Len(t, dec.Roots, 3)

	// roots stay in index order
	assert.Equal(t, "ial", dec.Roots[0].Morpheme)

	bene := dec.Roots[1]
	assert.Equal(t, "F1", bene.FragmentID)
	assert.Equal(t, "good", bene.Meaning)
	assert.Equal(t, "Latin", bene.Origin)
	assert.Equal(t, []string{"bene", "ben"}, bene.Forms)
	assert.Len(t, bene.Examples, 5)
	assert.Empty(t, bene.Translation)
}

func TestDecomposeTranslation(t *testing.T) {
	d := decompose.NewDecomposer(fixture(), queryConfig())

	dec, ok := d.Decompose("beneficial", "ko")
	require.True(t, ok)
	assert.Equal(t, "좋은", dec.Roots[1].Translation)
	assert.Empty(t, dec.Roots[2].Translation)
}

func TestDecomposeUnknownWord(t *testing.T) {
	d := decompose.NewDecomposer(fixture(), queryConfig())

	dec, ok := d.Decompose("zzz", "en")
	assert.False(t, ok)
	assert.Nil(t, dec)
}

func TestDecomposeMissingFragment(t *testing.T) {
	d := decompose.NewDecomposer(fixture(), queryConfig())

	dec, ok := d.Decompose("benefit", "en")
	require.True(t, ok)
	require.Len(t, dec.Roots, 2)

	missing := dec.Roots[1]
	assert.Equal(t, "fit", missing.Morpheme)
	assert.Equal(t, "unknown", missing.Meaning)
	assert.Equal(t, 1, missing.Position)

	data, err := json.Marshal(missing)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.NotContains(t, payload, "fragment_id")
	assert.NotContains(t, payload, "forms")
	assert.NotContains(t, payload, "examples")
}

func TestDecomposeFoundRootWithoutExamples(t *testing.T) {
	d := decompose.NewDecomposer(fixture(), queryConfig())

	dec, ok := d.Decompose("beneficial", "en")
	require.True(t, ok)

	fic := dec.Roots[2]
	require.Equal(t, "F2", fic.FragmentID)

	data, err := json.Marshal(fic)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, []interface{}{}, payload["examples"])
	assert.Equal(t, "to make", payload["meaning"])
	assert.Equal(t, []interface{}{"fic", "fact"}, payload["forms"])
	assert.NotContains(t, payload, "origin")
}

func TestRenderBreakdown(t *testing.T) {
	d := decompose.NewDecomposer(fixture(), queryConfig())
	dec, ok := d.Decompose("beneficial", "en")
	require.True(t, ok)

	expected := strings.Join([]string{
		"Word: BENEFICIAL",
		"",
		"Morpheme Breakdown:",
		"  [BENE] + [FIC] + [IAL]",
		"  good + to make + relating to",
		"",
		"Root Details:",
		"  | BENE (Latin)",
		`    Meaning: "good"`,
		"    Also in: benefit, benevolent, benign",
		"  | FIC (Latin/Greek)",
		`    Meaning: "to make"`,
		"  < IAL (Latin/Greek)",
		`    Meaning: "relating to"`,
	}, "\n")

	assert.Equal(t, expected, d.Render(dec))
	assert.Equal(t, expected, decompose.Render(dec))
}

func TestRenderTwoRoots(t *testing.T) {
	dec := &decompose.Decomposition{
		Word: "beneficial",
		Roots: []decompose.RootDetail{
			{Morpheme: "fic", Type: corpus.PositionRoot, Position: 1, Meaning: "to make"},
			{Morpheme: "bene", Type: corpus.PositionPrefix, Position: 0, Meaning: "good"},
		},
	}

	lines := strings.Split(decompose.Render(dec), "\n")
	assert.Equal(t, "  [BENE] + [FIC]", lines[3])
	assert.Equal(t, "  good + to make", lines[4])
	assert.Equal(t, "  > BENE (Latin/Greek)", lines[7])
}

func TestRenderNoRoots(t *testing.T) {
	assert.Equal(t, "[MISBELIEF] - No roots found",
		decompose.Render(&decompose.Decomposition{Word: "misbelief"}))
	assert.Equal(t, "[unknown] - No roots found", decompose.Render(nil))
	assert.Equal(t, "[unknown] - No roots found", decompose.Render(&decompose.Decomposition{}))
}

func TestSearchWords(t *testing.T) {
	d := decompose.NewDecomposer(fixture(), queryConfig())

	assert.Equal(t, []string{"beneficial", "benefit"}, d.SearchWords("BENE"))
	assert.Equal(t, []string{"beneficial", "benefit", "misbelief"}, d.SearchWords("ef"))
	assert.Equal(t, []string{}, d.SearchWords("xyz"))
}

func TestSearchWordsCapsAtLimit(t *testing.T) {
	keys := make([]string, 0, 30)
	entries := make(map[string]corpus.WordEntry, 30)
	for i := 0; i < 30; i++ {
		key := fmt.Sprintf("word%02d", i)
		keys = append(keys, key)
		entries[key] = corpus.WordEntry{MorphemeCount: 1}
	}
	data := staticData{fragments: corpus.NewCorpus(nil), words: corpus.NewWordIndex(keys, entries)}
	d := decompose.NewDecomposer(data, queryConfig())

	matches := d.SearchWords("word")
	require.Len(t, matches, 20)
	assert.Equal(t, "word00", matches[0])
	assert.Equal(t, "word19", matches[19])
	for _, m := range matches {
		assert.Contains(t, m, "word")
	}
	assert.Equal(t, 30, d.WordCount())
}
