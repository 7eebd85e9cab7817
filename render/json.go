package render

import (
	"encoding/json"
	"io"
	"math"

	"github.com/revelaction/langid/classify"
	"github.com/revelaction/langid/evaluate"
	"github.com/revelaction/langid/stat"
	"github.com/revelaction/langid/storage"
	"github.com/revelaction/langid/trigram"
)

// JSONRenderer writes results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type resultJSON struct {
	Lang    string           `json:"lang"`
	Ranking []classify.Score `json:"ranking"`
	Shares  []classify.Share `json:"percentages"`
}

// Result serializes a classification with its percentages.
func (r *JSONRenderer) Result(res classify.Result, shares []classify.Share) error {
	ranking := make([]classify.Score, 0, len(res.Ranking))
	for _, s := range res.Ranking {
		// encoding/json rejects infinities
		if math.IsInf(s.Log, -1) {
			s.Log = -math.MaxFloat64
		}
		ranking = append(ranking, s)
	}

	return r.encode(resultJSON{Lang: res.Lang, Ranking: ranking, Shares: shares})
}

// Report serializes an evaluation report.
func (r *JSONRenderer) Report(rep evaluate.Report) error {
	return r.encode(rep)
}

type languageJSON struct {
	Name        string          `json:"name"`
	Total       int             `json:"total"`
	Distinct    int             `json:"distinct"`
	Transitions int             `json:"transitions"`
	Top         []trigram.Entry `json:"top"`
}

// Stats serializes model statistics.
func (r *JSONRenderer) Stats(stats stat.Stats) error {
	langs := make([]languageJSON, 0, len(stats.Languages))
	for _, l := range stats.Languages {
		langs = append(langs, languageJSON{
			Name:        l.Name,
			Total:       l.Total,
			Distinct:    l.Distinct,
			Transitions: l.Transitions,
			Top:         l.Top,
		})
	}

	return r.encode(struct {
		NumLanguages int            `json:"num_languages"`
		NumTrigrams  int            `json:"num_trigrams"`
		NumDistinct  int            `json:"num_distinct"`
		Languages    []languageJSON `json:"languages"`
	}{stats.NumLanguages, stats.NumTrigrams, stats.NumDistinct, langs})
}

type entryJSON struct {
	Lang string `json:"lang"`
	Size int64  `json:"size"`
}

// Entries serializes stored corpus metadata.
func (r *JSONRenderer) Entries(entries []storage.Entry) error {
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON{Lang: e.Lang, Size: e.Size})
	}
	return r.encode(out)
}

func (r *JSONRenderer) encode(v interface{}) error {
	return json.NewEncoder(r.W).Encode(v)
}
