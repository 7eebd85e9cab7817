package evaluate

import (
	"testing"

	"github.com/revelaction/langid/classify"
	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClassifier(t *testing.T) *classify.Classifier {
	t.Helper()
	m, err := model.Train(corpus.Library{
		{Lang: "en", Text: "the quick brown fox"},
		{Lang: "fr", Text: "le renard brun rapide"},
	})
	require.NoError(t, err)

	c, err := classify.New(m)
	require.NoError(t, err)
	return c
}

func TestEvaluateAllCorrect(t *testing.T) {
	r, err := Evaluate(newClassifier(t), corpus.TestSet{
		{Sentence: "the fox is quick", Lang: "en"},
		{Sentence: "le renard rapide", Lang: "fr"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, r.Accuracy)
	assert.Equal(t, 2, r.Total)
	assert.Equal(t, 2, r.Correct)
	assert.Empty(t, r.Misses)
}

func TestEvaluateNoneCorrect(t *testing.T) {
	r, err := Evaluate(newClassifier(t), corpus.TestSet{
		{Sentence: "the fox is quick", Lang: "fr"},
		{Sentence: "le renard rapide", Lang: "en"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, r.Accuracy)
	assert.Equal(t, 0, r.Correct)
	assert.Equal(t, []Miss{
		{Sentence: "the fox is quick", Want: "fr", Got: "en"},
		{Sentence: "le renard rapide", Want: "en", Got: "fr"},
	}, r.Misses)
}

func TestEvaluateHalf(t *testing.T) {
	r, err := Evaluate(newClassifier(t), corpus.TestSet{
		{Sentence: "the fox is quick", Lang: "en"},
		{Sentence: "le renard rapide", Lang: "nl"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.5, r.Accuracy)
}

func TestEvaluateErrors(t *testing.T) {
	_, err := Evaluate(newClassifier(t), nil)
	assert.ErrorIs(t, err, ErrEmptyTestSet)

	_, err = Evaluate(newClassifier(t), corpus.TestSet{})
	assert.ErrorIs(t, err, ErrEmptyTestSet)

	_, err = Evaluate(nil, corpus.DefaultTestSet())
	assert.ErrorIs(t, err, model.ErrNotTrained)
}
