package main

import (
	"github.com/revelaction/langid/evaluate"

	"go.uber.org/zap"
)

func evalCommand(opts Options, misses bool, ui UI) error {
	lg := newLogger(opts.Verbose, ui)
	defer func() { _ = lg.Sync() }()

	var p Pool
	defer p.Close()

	repo, err := NewCorpusRepository(&p, opts.Corpus, opts.Encoding)
	if err != nil {
		return err
	}

	ts, err := loadTestSet(opts.TestSet, repo)
	if err != nil {
		return err
	}

	c, err := newClassifier(repo, opts, lg, ui)
	if err != nil {
		return err
	}

	rep, err := evaluate.Evaluate(c, ts)
	if err != nil {
		return err
	}
	lg.Debug("evaluated", zap.Int("examples", rep.Total), zap.Int("misses", len(rep.Misses)))

	r := newRenderer(opts, ui)
	r.Verbose = misses
	return r.Report(rep)
}
