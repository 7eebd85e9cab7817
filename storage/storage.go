package storage

import (
	"errors"

	"github.com/revelaction/langid/corpus"
)

// ErrNotFound is returned when a language is not in the store
var ErrNotFound = errors.New("storage: language not found")

// Entry is the metadata of a stored corpus
type Entry struct {
	Lang string

	// Size of the stored text in bytes
	Size int64
}

// ProgressFunc is called before each corpus is read by ReadAll
type ProgressFunc func(current, total int, lang string)

// CorpusReader defines read operations for corpus storage
type CorpusReader interface {
	// List returns the stored languages sorted by name. Content is not loaded.
	List() ([]Entry, error)

	// Read returns the corpus of a language
	Read(lang string) (corpus.Doc, error)

	// ReadAll returns all corpora in List order. cb may be nil.
	ReadAll(cb ProgressFunc) (corpus.Library, error)
}

// CorpusWriter defines write operations for corpus storage
type CorpusWriter interface {
	// Write persists a corpus, replacing any corpus of the same language
	Write(doc corpus.Doc) error
}

// CorpusRepository combines read and write operations
type CorpusRepository interface {
	CorpusReader
	CorpusWriter
}

// TestSetReader reads labeled examples
type TestSetReader interface {
	ReadTestSet() (corpus.TestSet, error)
}

// TestSetWriter persists labeled examples
type TestSetWriter interface {
	WriteTestSet(ts corpus.TestSet) error
}
