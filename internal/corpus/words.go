package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WordIndex maps words to their morphemes and keeps the key order of the
// source file, which is the order word search reports matches in.
type WordIndex struct {
	keys          []string
	entries       map[string]WordEntry
	declaredCount int
}

// NewWordIndex builds an index from keys in the given order.
func NewWordIndex(keys []string, entries map[string]WordEntry) *WordIndex {
	idx := &WordIndex{entries: make(map[string]WordEntry, len(keys))}
	for _, k := range keys {
		if e, ok := entries[k]; ok {
			idx.put(k, e)
		}
	}
	return idx
}

// EmptyWordIndex is the fallback used when the word file is unavailable.
func EmptyWordIndex() *WordIndex {
	return &WordIndex{entries: map[string]WordEntry{}}
}

// put keeps a repeated key at its first position but stores the last entry.
func (w *WordIndex) put(key string, e WordEntry) {
	if _, seen := w.entries[key]; !seen {
		w.keys = append(w.keys, key)
	}
	w.entries[key] = e
}

// Get looks up an already normalized word.
func (w *WordIndex) Get(word string) (WordEntry, bool) {
	e, ok := w.entries[word]
	return e, ok
}

// Keys returns the words in file order. Callers must not modify the slice.
func (w *WordIndex) Keys() []string {
	return w.keys
}

func (w *WordIndex) Len() int {
	return len(w.keys)
}

// WordCount is the count declared by the file, falling back to the number of entries.
func (w *WordIndex) WordCount() int {
	if w.declaredCount > 0 {
		return w.declaredCount
	}
	return len(w.keys)
}

// UnmarshalJSON decodes {"word_count": n, "words": {...}} while preserving key order.
func (w *WordIndex) UnmarshalJSON(data []byte) error {
	var raw struct {
		WordCount int             `json:"word_count"`
		Words     json.RawMessage `json:"words"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	w.keys = nil
	w.entries = make(map[string]WordEntry)
	w.declaredCount = raw.WordCount

	if len(raw.Words) == 0 || bytes.Equal(raw.Words, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw.Words))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("words: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("words: unexpected key %v", tok)
		}
		var entry WordEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("words: entry %q: %w", key, err)
		}
		w.put(key, entry)
	}
	_, err = dec.Token()
	return err
}
