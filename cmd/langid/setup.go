package main

import (
	"fmt"
	"os"

	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/storage"
	"github.com/revelaction/langid/storage/filesystem"
	"github.com/revelaction/langid/storage/sqlite/zombiezen"
)

// NewCorpusRepository returns a filesystem store for a directory and a SQLite
// store for a file.
func NewCorpusRepository(p *Pool, path, encoding string) (storage.CorpusRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewCorpusStore(path, encoding)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewCorpusStore(pool), nil
}

// loadTestSet reads the test set from path. Without a path, a SQLite corpus
// provides its stored examples and any other corpus the built-in set.
func loadTestSet(path string, repo storage.CorpusRepository) (corpus.TestSet, error) {
	if path != "" {
		return filesystem.NewTestSetFile(path).ReadTestSet()
	}

	if r, ok := repo.(storage.TestSetReader); ok {
		ts, err := r.ReadTestSet()
		if err != nil {
			return nil, err
		}
		if len(ts) > 0 {
			return ts, nil
		}
	}

	return corpus.DefaultTestSet(), nil
}
