package decompose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/radix-engine/backend/internal/corpus"
)

const (
	defaultOrigin         = "Latin/Greek"
	defaultRenderExamples = 3
	unknownWord           = "unknown"
)

// Render draws the decomposition as plain text with up to three examples per root.
func Render(d *Decomposition) string {
	return renderTree(d, defaultRenderExamples)
}

// Render draws the decomposition using the configured example limit.
func (d *Decomposer) Render(dec *Decomposition) string {
	return renderTree(dec, d.config.RenderExampleLimit)
}

func renderTree(d *Decomposition, exampleLimit int) string {
	if d == nil || len(d.Roots) == 0 {
		word := unknownWord
		if d != nil && d.Word != "" {
			word = strings.ToUpper(d.Word)
		}
		return fmt.Sprintf("[%s] - No roots found", word)
	}

	sorted := make([]RootDetail, len(d.Roots))
	copy(sorted, d.Roots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	morphemes := make([]string, len(sorted))
	meanings := make([]string, len(sorted))
	for i, r := range sorted {
		morphemes[i] = "[" + strings.ToUpper(r.Morpheme) + "]"
		meanings[i] = r.Meaning
	}

	lines := []string{
		"Word: " + strings.ToUpper(d.Word),
		"",
		"Morpheme Breakdown:",
		"  " + strings.Join(morphemes, " + "),
		"  " + strings.Join(meanings, " + "),
		"",
		"Root Details:",
	}

	for _, r := range sorted {
		origin := r.Origin
		if origin == "" {
			origin = defaultOrigin
		}
		lines = append(lines,
			fmt.Sprintf("  %s %s (%s)", marker(r.Type), strings.ToUpper(r.Morpheme), origin),
			`    Meaning: "`+r.Meaning+`"`,
		)
		if len(r.Examples) > 0 {
			lines = append(lines, "    Also in: "+strings.Join(firstN(r.Examples, exampleLimit), ", "))
		}
	}

	return strings.Join(lines, "\n")
}

func marker(t corpus.Position) string {
	switch t {
	case corpus.PositionPrefix:
		return ">"
	case corpus.PositionSuffix:
		return "<"
	default:
		return "|"
	}
}
