package main

import (
	"fmt"
	"io"
	"os"

	"github.com/revelaction/langid/config"
	"github.com/revelaction/langid/render"
	"github.com/revelaction/langid/stat"

	"github.com/urfave/cli/v2"
)

// Set with -ldflags at build time
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := config.LoadEnv(""); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}

	if err := run(os.Args, ui); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "langid: %v\n", err)
}

func run(args []string, ui UI) error {
	return newApp(ui).Run(args)
}

func newApp(ui UI) *cli.App {
	app := &cli.App{
		Name:                 "langid",
		Usage:                "identify the language of a sentence with character trigrams",
		Version:              BuildTag,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		HideVersion:          true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file",
				EnvVars: []string{config.EnvConfig},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "debug logging on stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "identify",
				Usage:     "identify the language of a sentence, or start a prompt without arguments",
				ArgsUsage: "[sentence...]",
				Flags: append(modelFlags(),
					testSetFlag(),
					&cli.BoolFlag{Name: "eval", Usage: "print the accuracy on the test set first"},
				),
				Action: func(c *cli.Context) error {
					opts, err := optionsFromContext(c)
					if err != nil {
						return err
					}
					return identifyCommand(opts, c.Bool("eval"), c.Args().Slice(), ui)
				},
			},
			{
				Name:  "eval",
				Usage: "print the accuracy of the classifier on the test set",
				Flags: append(modelFlags(),
					testSetFlag(),
					&cli.BoolFlag{Name: "verbose-misses", Usage: "print every misclassified sentence"},
				),
				Action: func(c *cli.Context) error {
					opts, err := optionsFromContext(c)
					if err != nil {
						return err
					}
					return evalCommand(opts, c.Bool("verbose-misses"), ui)
				},
			},
			{
				Name:  "stat",
				Usage: "print per language trigram statistics",
				Flags: append(modelFlags(),
					&cli.IntFlag{Name: "top", Value: stat.DefaultTop, Usage: "number of most frequent trigrams per language"},
				),
				Action: func(c *cli.Context) error {
					opts, err := optionsFromContext(c)
					if err != nil {
						return err
					}
					return statCommand(opts, c.Int("top"), ui)
				},
			},
			{
				Name:  "ls",
				Usage: "list the corpus languages",
				Flags: []cli.Flag{corpusFlag(), encodingFlag(), formatFlag()},
				Action: func(c *cli.Context) error {
					opts, err := optionsFromContext(c)
					if err != nil {
						return err
					}
					return lsCommand(opts, ui)
				},
			},
			{
				Name:  "import",
				Usage: "copy a corpus directory (and a test set) into a SQLite database",
				Flags: transferFlags(),
				Action: func(c *cli.Context) error {
					opts, err := transferOptionsFromContext(c)
					if err != nil {
						return err
					}
					return importCommand(opts, ui)
				},
			},
			{
				Name:  "export",
				Usage: "copy the corpora (and test set) of a SQLite database into a directory",
				Flags: transferFlags(),
				Action: func(c *cli.Context) error {
					opts, err := transferOptionsFromContext(c)
					if err != nil {
						return err
					}
					return exportCommand(opts, ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}

	// errors are printed once, by main
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

func corpusFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "corpus",
		Aliases: []string{"c"},
		Usage:   "directory of <lang>.txt files or SQLite database (default \"data\")",
		EnvVars: []string{config.EnvCorpus},
	}
}

func encodingFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "encoding",
		Usage:   "encoding of the corpus files: utf-8 or latin1 (default \"utf-8\")",
		EnvVars: []string{config.EnvEncode},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Usage: fmt.Sprintf("output format %v (default %q)", render.SupportedFormats(), render.DefaultFormat),
	}
}

func testSetFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "testset",
		Usage:   "YAML file of labeled sentences",
		EnvVars: []string{config.EnvTestSet},
	}
}

func modelFlags() []cli.Flag {
	return []cli.Flag{
		corpusFlag(),
		encodingFlag(),
		formatFlag(),
		&cli.StringFlag{
			Name:    "scorer",
			Usage:   "scoring method: laplace or markov (default \"laplace\")",
			EnvVars: []string{config.EnvScorer},
		},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
		&cli.BoolFlag{Name: "no-progress", Usage: "do not show the progress bar"},
	}
}

func transferFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "from", Required: true, Usage: "source corpus"},
		&cli.StringFlag{Name: "to", Required: true, Usage: "target corpus"},
		&cli.StringFlag{Name: "testset", Usage: "YAML test set file to copy"},
		encodingFlag(),
		&cli.BoolFlag{Name: "no-progress", Usage: "do not show the progress bar"},
	}
}
