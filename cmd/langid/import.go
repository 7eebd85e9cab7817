package main

import (
	"fmt"

	"github.com/revelaction/langid/storage/filesystem"
	"github.com/revelaction/langid/storage/sqlite/zombiezen"

	"go.uber.org/zap"
)

func importCommand(opts TransferOptions, ui UI) error {
	lg := newLogger(opts.Verbose, ui)
	defer func() { _ = lg.Sync() }()

	src, err := filesystem.NewCorpusStore(opts.From, opts.Encoding)
	if err != nil {
		return err
	}

	var p Pool
	defer p.Close()

	pool, err := p.Open(opts.To)
	if err != nil {
		return fmt.Errorf("failed to create corpora tables: %w", err)
	}

	dst := zombiezen.NewCorpusStore(pool)

	fmt.Fprintf(ui.Out, "Reading corpora from %s...\n", opts.From)
	entries, err := src.List()
	if err != nil {
		return err
	}

	update, stop := newBar(ui, opts.Progress, len(entries))

	count := 0
	for i, e := range entries {
		if update != nil {
			update(i+1, len(entries), e.Lang)
		}

		doc, err := src.Read(e.Lang)
		if err != nil {
			stop()
			return fmt.Errorf("failed to read corpus %s: %w", e.Lang, err)
		}

		if err := dst.Write(doc); err != nil {
			stop()
			return fmt.Errorf("failed to write corpus %s: %w", e.Lang, err)
		}
		lg.Debug("imported corpus", zap.String("lang", e.Lang), zap.Int64("size", e.Size))
		count++
	}
	stop()

	if opts.TestSet != "" {
		ts, err := filesystem.NewTestSetFile(opts.TestSet).ReadTestSet()
		if err != nil {
			return err
		}
		if err := dst.WriteTestSet(ts); err != nil {
			return fmt.Errorf("failed to write test set: %w", err)
		}
		fmt.Fprintf(ui.Out, "Imported %d examples from %s\n", len(ts), opts.TestSet)
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d corpora from %s to %s\n", count, opts.From, opts.To)
	return nil
}
