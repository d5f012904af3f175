package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/radix-engine/backend/internal/corpus"
)

// ErrEmptySource is returned for a file that decodes but carries no records payload.
var ErrEmptySource = errors.New("source has no records")

// FileStorage reads corpus sources and the word index from a local directory.
// It never writes.
type FileStorage struct {
	baseDir string
}

// NewFileStorage creates a file-backed reader rooted at baseDir
func NewFileStorage(baseDir string) (*FileStorage, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path %q is not a directory", baseDir)
	}
	return &FileStorage{baseDir: baseDir}, nil
}

// BaseDir returns the directory files are read from
func (fs *FileStorage) BaseDir() string {
	return fs.baseDir
}

// ReadFragments decodes a {"fragments": [...]} corpus file
func (fs *FileStorage) ReadFragments(name string) ([]corpus.Fragment, error) {
	var doc struct {
		Fragments *[]corpus.Fragment `json:"fragments"`
	}
	if err := fs.readJSON(name, &doc); err != nil {
		return nil, err
	}
	if doc.Fragments == nil {
		return nil, fmt.Errorf("corpus source %q: %w", name, ErrEmptySource)
	}
	return *doc.Fragments, nil
}

// ReadWords decodes the word index file, keeping its key order
func (fs *FileStorage) ReadWords(name string) (*corpus.WordIndex, error) {
	var words corpus.WordIndex
	if err := fs.readJSON(name, &words); err != nil {
		return nil, err
	}
	return &words, nil
}

func (fs *FileStorage) readJSON(name string, v interface{}) error {
	path := filepath.Join(fs.baseDir, filepath.Clean("/"+name))

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}
