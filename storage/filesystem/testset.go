package filesystem

import (
	"fmt"
	"os"

	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/storage"

	"gopkg.in/yaml.v3"
)

// TestSetFile reads and writes labeled examples as a YAML list:
//
//	# testset.yaml
//	- sentence: Hoe gaat het vandaag?
//	  lang: nederlands
type TestSetFile struct {
	path string
}

var _ storage.TestSetReader = (*TestSetFile)(nil)
var _ storage.TestSetWriter = (*TestSetFile)(nil)

func NewTestSetFile(path string) *TestSetFile {
	return &TestSetFile{path: path}
}

func (f *TestSetFile) ReadTestSet() (corpus.TestSet, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var ts corpus.TestSet
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("YAML decoding error in %s: %w", f.path, err)
	}

	for i, ex := range ts {
		if ex.Lang == "" {
			return nil, fmt.Errorf("%s: example %d has no lang", f.path, i)
		}
	}

	return ts, nil
}

func (f *TestSetFile) WriteTestSet(ts corpus.TestSet) error {
	data, err := yaml.Marshal(ts)
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0644)
}
