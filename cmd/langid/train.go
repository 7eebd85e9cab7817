package main

import (
	"sync"

	"github.com/revelaction/langid/classify"
	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/model"
	"github.com/revelaction/langid/render"
	"github.com/revelaction/langid/storage"

	"github.com/gosuri/uiprogress"
	"go.uber.org/zap"
)

// newBar starts a progress bar of total steps on the UI error stream. The
// returned update advances the bar by one and shows name. The returned stop
// function must be called before anything else is written.
func newBar(ui UI, show bool, total int) (func(current, total int, name string), func()) {
	if !show || total == 0 {
		return nil, func() {}
	}

	p := uiprogress.New()
	p.SetOut(ui.Err)

	bar := p.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()

	// read by the render goroutine
	var (
		mu          sync.Mutex
		currentName string
	)
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		mu.Lock()
		defer mu.Unlock()
		return currentName
	})

	p.Start()

	update := func(_, _ int, name string) {
		mu.Lock()
		currentName = name
		mu.Unlock()
		bar.Incr()
	}

	return update, p.Stop
}

// readLibrary loads every corpus of repo.
func readLibrary(repo storage.CorpusReader, opts Options, ui UI) (corpus.Library, error) {
	entries, err := repo.List()
	if err != nil {
		return nil, err
	}

	update, stop := newBar(ui, opts.Progress, len(entries))
	lib, err := repo.ReadAll(update)
	stop()

	return lib, err
}

// trainModel loads the corpora of repo and trains a model on them.
func trainModel(repo storage.CorpusReader, opts Options, lg *zap.Logger, ui UI) (*model.Model, error) {
	lib, err := readLibrary(repo, opts, ui)
	if err != nil {
		return nil, err
	}
	lg.Debug("corpora loaded", zap.String("corpus", opts.Corpus), zap.Int("languages", len(lib)))

	update, stop := newBar(ui, opts.Progress, len(lib))
	trainOpts := []model.Option{model.WithLogger(lg)}
	if update != nil {
		trainOpts = append(trainOpts, model.WithProgress(update))
	}
	m, err := model.Train(lib, trainOpts...)
	stop()

	return m, err
}

func newClassifier(repo storage.CorpusReader, opts Options, lg *zap.Logger, ui UI) (*classify.Classifier, error) {
	m, err := trainModel(repo, opts, lg, ui)
	if err != nil {
		return nil, err
	}
	return classify.New(m, classify.WithMethod(opts.Method))
}

func newRenderer(opts Options, ui UI) *render.Renderer {
	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	r.Format = opts.Format
	return r
}
