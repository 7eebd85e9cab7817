package main

import (
	"github.com/revelaction/langid/stat"
)

func statCommand(opts Options, top int, ui UI) error {
	lg := newLogger(opts.Verbose, ui)
	defer func() { _ = lg.Sync() }()

	var p Pool
	defer p.Close()

	repo, err := NewCorpusRepository(&p, opts.Corpus, opts.Encoding)
	if err != nil {
		return err
	}

	m, err := trainModel(repo, opts, lg, ui)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler(top)
	hdl.Aggregate(m)

	return newRenderer(opts, ui).Stats(hdl.Get())
}
