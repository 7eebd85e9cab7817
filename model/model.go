// Package model trains per-language trigram tables from raw corpora.
//
// A Model is produced once by Train and never modified afterwards, so it can
// be shared by any number of goroutines classifying concurrently. Retraining
// means calling Train again.
package model

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/normalize"
	"github.com/revelaction/langid/trigram"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyCorpus is returned by Train when the library has no documents.
	ErrEmptyCorpus = errors.New("model: empty corpus")

	// ErrNotTrained is returned when a model without languages is used.
	ErrNotTrained = errors.New("model: not trained")

	// ErrDuplicateLanguage is returned by Train when two documents share a
	// language identifier.
	ErrDuplicateLanguage = errors.New("model: duplicate language")
)

// Language holds the trained statistics of one language.
type Language struct {
	Name        string
	Table       trigram.Table
	Transitions trigram.Transitions
}

// Model is the immutable set of trained languages.
type Model struct {
	langs []Language
	index map[string]int
}

// ProgressFunc is called once per trained language. Calls are serialized.
type ProgressFunc func(done, total int, lang string)

type options struct {
	logger   *zap.Logger
	progress ProgressFunc
	workers  int
}

// Option configures Train.
type Option func(*options)

// WithLogger sets the logger used to report training.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithProgress sets a callback invoked after each language is trained.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithWorkers bounds the number of languages trained concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Train builds a Model with one trigram table per document of lib. The order
// of lib is kept as the order of the model languages.
func Train(lib corpus.Library, opts ...Option) (*Model, error) {
	o := options{logger: zap.NewNop(), workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}

	if len(lib) == 0 {
		return nil, ErrEmptyCorpus
	}

	index := make(map[string]int, len(lib))
	for i, doc := range lib {
		if _, ok := index[doc.Lang]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLanguage, doc.Lang)
		}
		index[doc.Lang] = i
	}

	langs := make([]Language, len(lib))

	var (
		mu   sync.Mutex
		done int
	)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, doc := range lib {
		i, doc := i, doc
		g.Go(func() error {
			langs[i] = trainLanguage(doc)

			o.logger.Debug("trained language",
				zap.String("lang", doc.Lang),
				zap.Int("total", langs[i].Table.Total()),
				zap.Int("distinct", langs[i].Table.Distinct()),
			)

			if o.progress != nil {
				mu.Lock()
				done++
				o.progress(done, len(lib), doc.Lang)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.Debug("model trained", zap.Int("languages", len(langs)))

	return &Model{langs: langs, index: index}, nil
}

func trainLanguage(doc corpus.Doc) Language {
	text := normalize.Text(doc.Text)
	return Language{
		Name:        doc.Lang,
		Table:       trigram.Build(text),
		Transitions: trigram.BuildTransitions(text),
	}
}

// Len returns the number of trained languages. A nil Model has none.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.langs)
}

// Languages returns the trained language identifiers in training order.
func (m *Model) Languages() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.langs))
	for _, l := range m.langs {
		names = append(names, l.Name)
	}
	return names
}

// Language returns the statistics of the language name.
func (m *Model) Language(name string) (Language, bool) {
	if m == nil {
		return Language{}, false
	}
	i, ok := m.index[name]
	if !ok {
		return Language{}, false
	}
	return m.langs[i], true
}

// Each calls fn for every language in training order.
func (m *Model) Each(fn func(Language)) {
	if m == nil {
		return
	}
	for _, l := range m.langs {
		fn(l)
	}
}
