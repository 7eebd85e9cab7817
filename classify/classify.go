// Package classify scores a sentence against every language of a trained
// model and ranks the languages by score.
//
// Two scoring methods are provided:
//
//   - Laplace multiplies, for every trigram position i >= 2, the add-one
//     smoothed frequency of trigram i by the smoothed frequency of trigram
//     i-2. Both are unconditional frequencies, so the product is not a true
//     n-gram likelihood; the arithmetic is kept as is for compatibility.
//   - Markov is an order-1 Markov chain over trigrams: the first trigram is
//     scored by its smoothed frequency and every following one by the
//     smoothed probability of the transition from the previous trigram.
//
// Scores are relative values used for ranking, not probabilities. A
// Classifier is safe for concurrent use.
package classify

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/revelaction/langid/model"
	"github.com/revelaction/langid/normalize"
	"github.com/revelaction/langid/trigram"
)

// ErrDegenerateScore is returned by Percentages when no language has a
// nonzero probability.
var ErrDegenerateScore = errors.New("classify: all scores are zero")

// Method selects the scoring formula.
type Method int

const (
	Laplace Method = iota // product of smoothed trigram and context frequencies
	Markov                // order-1 Markov chain over trigrams
)

var methodNames = [...]string{
	Laplace: "laplace",
	Markov:  "markov",
}

// String returns the name of the method.
func (m Method) String() string {
	if int(m) >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the Method named s ("laplace" or "markov").
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(i), nil
		}
	}
	return Laplace, fmt.Errorf("classify: unknown method: %q", s)
}

// Methods returns the names of the supported methods.
func Methods() []string {
	return methodNames[:]
}

// Score is the score of one language for a sentence.
type Score struct {
	Lang string `json:"lang"`

	// Value is the raw product of the factors. It underflows to 0 for long
	// sentences.
	Value float64 `json:"score"`

	// Log is the natural logarithm of the product, accumulated term by term.
	Log float64 `json:"log_score"`
}

// Result holds the outcome of a classification.
type Result struct {
	// Lang is the predicted language, the first entry of Ranking.
	Lang string `json:"lang"`

	// Ranking lists every language by descending score.
	Ranking []Score `json:"ranking"`

	// Scores maps each language to its raw score.
	Scores map[string]float64 `json:"-"`
}

// Share is the percentage of the total score held by one language.
type Share struct {
	Lang    string  `json:"lang"`
	Percent float64 `json:"percent"`
}

// Percentages returns, in ranking order, each language's score divided by
// the sum of all scores, times 100. When every raw score underflowed to 0
// the shares are taken from the log scores instead. ErrDegenerateScore is
// returned only when the ranking is empty or every log score is -Inf.
func (r Result) Percentages() ([]Share, error) {
	if len(r.Ranking) == 0 {
		return nil, ErrDegenerateScore
	}

	shares := make([]Share, len(r.Ranking))

	var sum float64
	for _, s := range r.Ranking {
		sum += s.Value
	}

	if sum > 0 && !math.IsInf(sum, 1) {
		for i, s := range r.Ranking {
			shares[i] = Share{Lang: s.Lang, Percent: s.Value / sum * 100}
		}
		return shares, nil
	}

	// Raw scores underflowed: normalize in the log domain.
	maxLog := math.Inf(-1)
	for _, s := range r.Ranking {
		if s.Log > maxLog {
			maxLog = s.Log
		}
	}
	if math.IsInf(maxLog, -1) || math.IsNaN(maxLog) {
		return nil, ErrDegenerateScore
	}

	var total float64
	for _, s := range r.Ranking {
		total += math.Exp(s.Log - maxLog)
	}
	for i, s := range r.Ranking {
		shares[i] = Share{Lang: s.Lang, Percent: math.Exp(s.Log-maxLog) / total * 100}
	}

	return shares, nil
}

// Classifier scores sentences against a trained model.
type Classifier struct {
	model  *model.Model
	method Method
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithMethod sets the scoring method. The default is Laplace.
func WithMethod(m Method) Option {
	return func(c *Classifier) {
		c.method = m
	}
}

// New returns a Classifier for m. It fails with model.ErrNotTrained when m
// has no languages.
func New(m *model.Model, opts ...Option) (*Classifier, error) {
	if m.Len() == 0 {
		return nil, model.ErrNotTrained
	}

	c := &Classifier{model: m, method: Laplace}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Classify is a shortcut for New(m) followed by Classify(sentence).
func Classify(m *model.Model, sentence string, opts ...Option) (Result, error) {
	c, err := New(m, opts...)
	if err != nil {
		return Result{}, err
	}
	return c.Classify(sentence)
}

// Method returns the scoring method of c.
func (c *Classifier) Method() Method {
	return c.method
}

// Model returns the model c scores against.
func (c *Classifier) Model() *model.Model {
	return c.model
}

// Classify normalizes sentence, scores it against every language and ranks
// the languages. Sentences with fewer than three trigrams after
// normalization give every language the score 1.
func (c *Classifier) Classify(sentence string) (Result, error) {
	if c == nil || c.model.Len() == 0 {
		return Result{}, model.ErrNotTrained
	}

	grams := trigram.Windows(normalize.Text(sentence))

	ranking := make([]Score, 0, c.model.Len())
	c.model.Each(func(l model.Language) {
		var s Score
		switch c.method {
		case Markov:
			s = markov(l, grams)
		default:
			s = laplace(l, grams)
		}
		ranking = append(ranking, s)
	})

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Value != ranking[j].Value {
			return ranking[i].Value > ranking[j].Value
		}
		return ranking[i].Log > ranking[j].Log
	})

	scores := make(map[string]float64, len(ranking))
	for _, s := range ranking {
		scores[s.Lang] = s.Value
	}

	return Result{
		Lang:    ranking[0].Lang,
		Ranking: ranking,
		Scores:  scores,
	}, nil
}

// smoothed returns (n+1)/denom, or 0 when the language has no trigrams.
func smoothed(n, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(n+1) / float64(denom)
}

func laplace(l model.Language, grams []string) Score {
	s := Score{Lang: l.Name, Value: 1.0}
	denom := l.Table.Total() + l.Table.Distinct()

	for i := 2; i < len(grams); i++ {
		trigramProb := smoothed(l.Table.Count(grams[i]), denom)
		contextProb := smoothed(l.Table.Count(grams[i-2]), denom)
		s.Value *= trigramProb * contextProb
		s.Log += math.Log(trigramProb) + math.Log(contextProb)
	}

	return s
}

func markov(l model.Language, grams []string) Score {
	s := Score{Lang: l.Name, Value: 1.0}
	if len(grams) == 0 {
		return s
	}

	v := l.Table.Distinct()

	p := smoothed(l.Table.Count(grams[0]), l.Table.Total()+v)
	s.Value *= p
	s.Log += math.Log(p)

	for i := 1; i < len(grams); i++ {
		var p float64
		if v > 0 {
			p = smoothed(l.Transitions.Count(grams[i-1], grams[i]), l.Transitions.From(grams[i-1])+v)
		}
		s.Value *= p
		s.Log += math.Log(p)
	}

	return s
}
