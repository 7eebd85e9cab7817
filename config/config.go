// Package config loads langid settings from a YAML file.
//
// Precedence, highest first: command line flags, environment variables, the
// YAML file, and the defaults of Default.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/revelaction/langid/classify"
	"github.com/revelaction/langid/render"
	"github.com/revelaction/langid/storage/filesystem"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the command line.
const (
	EnvConfig  = "LANGID_CONFIG"
	EnvCorpus  = "LANGID_CORPUS_PATH"
	EnvTestSet = "LANGID_TESTSET_PATH"
	EnvEncode  = "LANGID_ENCODING"
	EnvScorer  = "LANGID_SCORER"
)

// DefaultFile is the config file read when none is given and it exists.
const DefaultFile = "langid.yaml"

type Config struct {
	// Corpus is a directory of <lang>.txt files or a SQLite file
	Corpus string `yaml:"corpus"`

	// TestSet is a YAML file of labeled sentences
	TestSet string `yaml:"testset"`

	Encoding string `yaml:"encoding"`
	Scorer   string `yaml:"scorer"`
	Format   string `yaml:"format"`
	Color    bool   `yaml:"color"`
}

func Default() Config {
	return Config{
		Corpus:   "data",
		Encoding: filesystem.DefaultEncoding,
		Scorer:   classify.Laplace.String(),
		Format:   render.DefaultFormat,
		Color:    true,
	}
}

// Load reads path over the defaults. A missing file is an error unless path
// is DefaultFile.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultFile {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("YAML decoding error in %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects unknown scorers, formats and encodings.
func (c Config) Validate() error {
	if _, err := classify.ParseMethod(c.Scorer); err != nil {
		return err
	}

	if !render.IsSupportedFormat(c.Format) {
		return fmt.Errorf("unknown format %q, allowed values are %v", c.Format, render.SupportedFormats())
	}

	if _, err := filesystem.LookupEncoding(c.Encoding); err != nil {
		return err
	}

	return nil
}

// LoadEnv loads a .env file into the environment without overriding
// variables already set. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
