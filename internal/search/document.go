package search

import (
	"github.com/radix-engine/backend/internal/corpus"
)

// FragmentView is the plain record a fragment is presented as.
// Optional lists default to empty; Translation is omitted unless one was requested and exists.
type FragmentView struct {
	ID          string              `json:"id"`
	Forms       []string            `json:"forms"`
	Meaning     string              `json:"meaning"`
	Synonyms    []string            `json:"synonyms"`
	Examples    []string            `json:"examples"`
	Origin      string              `json:"origin,omitempty"`
	Position    corpus.Position     `json:"position,omitempty"`
	Explanation string              `json:"explanation,omitempty"`
	Source      string              `json:"source"`
	Translation *corpus.Translation `json:"translation,omitempty"`
}

// RelatedFragment is a fragment that shares example words with another one
type RelatedFragment struct {
	ID             string   `json:"id"`
	Forms          []string `json:"forms"`
	Meaning        string   `json:"meaning"`
	SharedExamples int      `json:"sharedExamples"`
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
