package classify

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyModel(t testing.TB) *model.Model {
	t.Helper()
	m, err := model.Train(corpus.Library{
		{Lang: "en", Text: "the quick brown fox"},
		{Lang: "fr", Text: "le renard brun rapide"},
	})
	require.NoError(t, err)
	return m
}

func TestClassifyRanksEnglish(t *testing.T) {
	for _, method := range []Method{Laplace, Markov} {
		t.Run(method.String(), func(t *testing.T) {
			res, err := Classify(toyModel(t), "the fox is quick", WithMethod(method))
			require.NoError(t, err)

			assert.Equal(t, "en", res.Lang)
			require.Len(t, res.Ranking, 2)
			assert.Equal(t, "en", res.Ranking[0].Lang)
			assert.Equal(t, "fr", res.Ranking[1].Lang)
			assert.Greater(t, res.Scores["en"], res.Scores["fr"])
		})
	}
}

func TestClassifyRanksFrench(t *testing.T) {
	for _, method := range []Method{Laplace, Markov} {
		t.Run(method.String(), func(t *testing.T) {
			res, err := Classify(toyModel(t), "le renard rapide", WithMethod(method))
			require.NoError(t, err)
			assert.Equal(t, "fr", res.Lang)
		})
	}
}

func TestLaplaceArithmetic(t *testing.T) {
	m, err := model.Train(corpus.Library{{Lang: "x", Text: "abcab"}})
	require.NoError(t, err)

	// table: abc:1 bca:1 cab:1, total 3, distinct 3, denominator 6.
	// sentence windows: abc bca cab abc
	// i=2: (cab+1)/6 * (abc+1)/6 = 2/6 * 2/6
	// i=3: (abc+1)/6 * (bca+1)/6 = 2/6 * 2/6
	res, err := Classify(m, "abcabc")
	require.NoError(t, err)

	want := math.Pow(2.0/6.0, 4)
	assert.InDelta(t, want, res.Scores["x"], 1e-15)
	assert.InDelta(t, math.Log(want), res.Ranking[0].Log, 1e-12)
}

func TestMarkovArithmetic(t *testing.T) {
	m, err := model.Train(corpus.Library{{Lang: "x", Text: "abcab"}})
	require.NoError(t, err)

	// first: (abc+1)/(3+3) = 2/6
	// abc->bca: (1+1)/(1+3) = 2/4
	// bca->cab: (1+1)/(1+3) = 2/4
	res, err := Classify(m, "abcab", WithMethod(Markov))
	require.NoError(t, err)

	assert.InDelta(t, 2.0/6.0*0.5*0.5, res.Scores["x"], 1e-15)
}

func TestClassifyShortSentenceTies(t *testing.T) {
	m := toyModel(t)
	for _, in := range []string{"", "a", "ab", "abcd", "!!! 123", "the"} {
		res, err := Classify(m, in)
		require.NoError(t, err, "input %q", in)

		for _, s := range res.Ranking {
			assert.Equal(t, 1.0, s.Value, "input %q lang %s", in, s.Lang)
			assert.Equal(t, 0.0, s.Log, "input %q lang %s", in, s.Lang)
		}
		// Ties keep model order.
		assert.Equal(t, "en", res.Lang, "input %q", in)
	}
}

func TestClassifyEmptyLanguageScoresZero(t *testing.T) {
	m, err := model.Train(corpus.Library{
		{Lang: "empty", Text: "ab"},
		{Lang: "en", Text: "the quick brown fox"},
	})
	require.NoError(t, err)

	res, err := Classify(m, "the quick fox")
	require.NoError(t, err)

	assert.Equal(t, "en", res.Lang)
	assert.Equal(t, 0.0, res.Scores["empty"])
	assert.True(t, math.IsInf(res.Ranking[1].Log, -1))
}

func TestClassifyNotTrained(t *testing.T) {
	_, err := Classify(nil, "hello")
	assert.ErrorIs(t, err, model.ErrNotTrained)

	_, err = New(&model.Model{})
	assert.ErrorIs(t, err, model.ErrNotTrained)

	var c *Classifier
	_, err = c.Classify("hello")
	assert.ErrorIs(t, err, model.ErrNotTrained)
}

func TestPercentages(t *testing.T) {
	res, err := Classify(toyModel(t), "the fox is quick")
	require.NoError(t, err)

	shares, err := res.Percentages()
	require.NoError(t, err)
	require.Len(t, shares, 2)

	var sum float64
	for i, s := range shares {
		sum += s.Percent
		assert.Equal(t, res.Ranking[i].Lang, s.Lang)
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.Greater(t, shares[0].Percent, shares[1].Percent)

	total := res.Scores["en"] + res.Scores["fr"]
	assert.InDelta(t, res.Scores["en"]/total*100, shares[0].Percent, 1e-9)
}

func TestPercentagesTie(t *testing.T) {
	res, err := Classify(toyModel(t), "ab")
	require.NoError(t, err)

	shares, err := res.Percentages()
	require.NoError(t, err)
	for _, s := range shares {
		assert.InDelta(t, 50.0, s.Percent, 1e-9)
	}
}

func TestPercentagesUnderflow(t *testing.T) {
	res, err := Classify(toyModel(t), strings.Repeat("the quick brown fox ", 200))
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Scores["en"])
	assert.Equal(t, 0.0, res.Scores["fr"])
	assert.Equal(t, "en", res.Lang)

	shares, err := res.Percentages()
	require.NoError(t, err)
	assert.Equal(t, "en", shares[0].Lang)
	assert.InDelta(t, 100.0, shares[0].Percent+shares[1].Percent, 1e-9)
}

func TestPercentagesDegenerate(t *testing.T) {
	res := Result{Ranking: []Score{
		{Lang: "a", Value: 0, Log: math.Inf(-1)},
		{Lang: "b", Value: 0, Log: math.Inf(-1)},
	}}
	_, err := res.Percentages()
	assert.ErrorIs(t, err, ErrDegenerateScore)

	_, err = Result{}.Percentages()
	assert.ErrorIs(t, err, ErrDegenerateScore)

	m, err := model.Train(corpus.Library{{Lang: "a", Text: "x"}, {Lang: "b", Text: ""}})
	require.NoError(t, err)
	res, err = Classify(m, "hello world")
	require.NoError(t, err)
	_, err = res.Percentages()
	assert.ErrorIs(t, err, ErrDegenerateScore)
}

func TestPercentagesZeroRawFiniteLog(t *testing.T) {
	// raw products underflowed, one language still has a finite log score
	res := Result{Ranking: []Score{
		{Lang: "a", Value: 0, Log: -2000},
		{Lang: "b", Value: 0, Log: math.Inf(-1)},
	}}

	shares, err := res.Percentages()
	require.NoError(t, err)
	assert.Equal(t, []Share{{Lang: "a", Percent: 100}, {Lang: "b", Percent: 0}}, shares)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("MARKOV")
	require.NoError(t, err)
	assert.Equal(t, Markov, m)

	m, err = ParseMethod("laplace")
	require.NoError(t, err)
	assert.Equal(t, Laplace, m)

	_, err = ParseMethod("bayes")
	assert.Error(t, err)

	assert.Equal(t, "Method(9)", Method(9).String())
	assert.Equal(t, []string{"laplace", "markov"}, Methods())
}

func TestClassifyConcurrent(t *testing.T) {
	c, err := New(toyModel(t))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Classify("the fox is quick")
			assert.NoError(t, err)
			assert.Equal(t, "en", res.Lang)
		}()
	}
	wg.Wait()
}

func BenchmarkClassify(b *testing.B) {
	c, err := New(toyModel(b))
	require.NoError(b, err)
	input := "the quick fox jumps over the lazy brown dog"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Classify(input)
	}
}

func ExampleClassify() {
	m, _ := model.Train(corpus.Library{
		{Lang: "en", Text: "the quick brown fox"},
		{Lang: "fr", Text: "le renard brun rapide"},
	})
	res, _ := Classify(m, "the fox is quick")
	fmt.Println(res.Lang)
	// Output:
	// en
}
