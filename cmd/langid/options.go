package main

import (
	"fmt"

	"github.com/revelaction/langid/classify"
	"github.com/revelaction/langid/config"
	"github.com/revelaction/langid/logger"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Options are the settings shared by the commands that train a model.
type Options struct {
	Corpus   string
	TestSet  string
	Encoding string
	Format   string
	Method   classify.Method
	NoColor  bool
	Progress bool
	Verbose  bool
}

// TransferOptions are the settings of import and export.
type TransferOptions struct {
	From     string
	To       string
	TestSet  string
	Encoding string
	Progress bool
	Verbose  bool
}

// optionsFromContext merges the config file with the flags and environment
// variables in c. Flags and environment variables win.
func optionsFromContext(c *cli.Context) (Options, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return Options{}, err
	}

	override(c, "corpus", &cfg.Corpus)
	override(c, "testset", &cfg.TestSet)
	override(c, "encoding", &cfg.Encoding)
	override(c, "scorer", &cfg.Scorer)
	override(c, "format", &cfg.Format)

	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}

	method, err := classify.ParseMethod(cfg.Scorer)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Corpus:   cfg.Corpus,
		TestSet:  cfg.TestSet,
		Encoding: cfg.Encoding,
		Format:   cfg.Format,
		Method:   method,
		NoColor:  c.Bool("no-color") || !cfg.Color,
		Progress: !c.Bool("no-progress"),
		Verbose:  c.Bool("verbose"),
	}, nil
}

func transferOptionsFromContext(c *cli.Context) (TransferOptions, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return TransferOptions{}, err
	}
	override(c, "encoding", &cfg.Encoding)

	if err := cfg.Validate(); err != nil {
		return TransferOptions{}, err
	}

	if c.String("from") == c.String("to") {
		return TransferOptions{}, fmt.Errorf("--from and --to are the same path: %s", c.String("from"))
	}

	return TransferOptions{
		From:     c.String("from"),
		To:       c.String("to"),
		TestSet:  c.String("testset"),
		Encoding: cfg.Encoding,
		Progress: !c.Bool("no-progress"),
		Verbose:  c.Bool("verbose"),
	}, nil
}

// override replaces *v with the flag value when the flag or its environment
// variable is set.
func override(c *cli.Context, name string, v *string) {
	if c.IsSet(name) {
		*v = c.String(name)
	}
}

func newLogger(verbose bool, ui UI) *zap.Logger {
	return logger.New(ui.Err, verbose)
}
