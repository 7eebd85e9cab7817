package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/langid/evaluate"
	"github.com/revelaction/langid/identify"
)

// Identify command
func identifyCommand(opts Options, withEval bool, args []string, ui UI) error {
	lg := newLogger(opts.Verbose, ui)
	defer func() { _ = lg.Sync() }()

	var p Pool
	defer p.Close()

	repo, err := NewCorpusRepository(&p, opts.Corpus, opts.Encoding)
	if err != nil {
		return err
	}

	c, err := newClassifier(repo, opts, lg, ui)
	if err != nil {
		return err
	}

	r := newRenderer(opts, ui)

	if withEval {
		ts, err := loadTestSet(opts.TestSet, repo)
		if err != nil {
			return err
		}
		rep, err := evaluate.Evaluate(c, ts)
		if err != nil {
			return err
		}
		if err := r.Report(rep); err != nil {
			return err
		}
	}

	if len(args) > 0 {
		res, err := c.Classify(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return r.Result(res)
	}

	// no sentence given: present the prompt
	fmt.Fprintf(ui.Out, "Trained on %d languages with the %s scorer\n", c.Model().Len(), c.Method())
	h := identify.NewHandler(c, r, ui.Err)
	return h.Run()
}
