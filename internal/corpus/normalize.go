package corpus

import (
	"strings"
)

// Normalize is applied to every user query before matching: trim, then lowercase.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// SourceTag derives a fragment's source tag from its file name,
// e.g. "corpus-medical.json" becomes "medical".
func SourceTag(name string) string {
	return strings.TrimSuffix(strings.TrimPrefix(name, "corpus-"), ".json")
}
