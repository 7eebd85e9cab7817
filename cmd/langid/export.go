package main

import (
	"fmt"
	"os"

	"github.com/revelaction/langid/storage/filesystem"
	"github.com/revelaction/langid/storage/sqlite/zombiezen"

	"go.uber.org/zap"
)

func exportCommand(opts TransferOptions, ui UI) error {
	lg := newLogger(opts.Verbose, ui)
	defer func() { _ = lg.Sync() }()

	if _, err := os.Stat(opts.From); err != nil {
		return fmt.Errorf("repository not found: %s", opts.From)
	}

	var p Pool
	defer p.Close()

	pool, err := p.Open(opts.From)
	if err != nil {
		return err
	}
	src := zombiezen.NewCorpusStore(pool)

	// Ensure target directory exists
	if err := os.MkdirAll(opts.To, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewCorpusStore(opts.To, opts.Encoding)
	if err != nil {
		return err
	}

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
		lg.Debug("exported corpus", zap.String("lang", e.Lang), zap.Int64("size", e.Size))
		count++
	}
	stop()

	if opts.TestSet != "" {
		ts, err := src.ReadTestSet()
		if err != nil {
			return err
		}
		if err := filesystem.NewTestSetFile(opts.TestSet).WriteTestSet(ts); err != nil {
			return fmt.Errorf("failed to write test set: %w", err)
		}
		fmt.Fprintf(ui.Out, "Exported %d examples to %s\n", len(ts), opts.TestSet)
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d corpora from %s to %s\n", count, opts.From, opts.To)
	return nil
}
