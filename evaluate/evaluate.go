// Package evaluate measures the accuracy of a classifier on labeled sentences.
package evaluate

import (
	"errors"

	"github.com/revelaction/langid/classify"
	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/model"
)

// ErrEmptyTestSet is returned by Evaluate when there are no examples.
var ErrEmptyTestSet = errors.New("evaluate: empty test set")

// Miss is an example whose predicted language differs from its label.
type Miss struct {
	Sentence string `json:"sentence"`
	Want     string `json:"want"`
	Got      string `json:"got"`
}

// Report is the outcome of an evaluation.
type Report struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
	Misses   []Miss  `json:"misses,omitempty"`
}

// Evaluate classifies every example of set and returns the fraction of
// correct predictions.
func Evaluate(c *classify.Classifier, set corpus.TestSet) (Report, error) {
	if c == nil {
		return Report{}, model.ErrNotTrained
	}
	if len(set) == 0 {
		return Report{}, ErrEmptyTestSet
	}

	r := Report{Total: len(set)}
	for _, ex := range set {
		res, err := c.Classify(ex.Sentence)
		if err != nil {
			return Report{}, err
		}

		if res.Lang == ex.Lang {
			r.Correct++
			continue
		}

		r.Misses = append(r.Misses, Miss{Sentence: ex.Sentence, Want: ex.Lang, Got: res.Lang})
	}

	r.Accuracy = float64(r.Correct) / float64(r.Total)
	return r, nil
}
