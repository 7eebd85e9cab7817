package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/langid/classify"
	"github.com/revelaction/langid/evaluate"
	"github.com/revelaction/langid/stat"
	"github.com/revelaction/langid/storage"

	"github.com/dustin/go-humanize"
)

const (
	FormatText    = "text"
	FormatJSON    = "json"
	DefaultFormat = FormatText
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{FormatText, FormatJSON}
}

// IsSupportedFormat reports whether format is one of SupportedFormats.
func IsSupportedFormat(format string) bool {
	for _, f := range SupportedFormats() {
		if f == format {
			return true
		}
	}
	return false
}

type Renderer struct {
	Out io.Writer

	HasColor bool

	// Format determines the output format
	//
	// text: human readable lines
	// json: one JSON document per call
	Format string

	// Verbose adds the misses to evaluation reports
	Verbose bool
}

func NewRenderer() *Renderer {
	return &Renderer{Out: os.Stdout, Format: DefaultFormat}
}

// Result prints the predicted language followed by the percentage share of
// every language, in descending order.
func (r *Renderer) Result(res classify.Result) error {
	shares, err := res.Percentages()
	if err != nil {
		return err
	}

	if r.Format == FormatJSON {
		return NewJSONRenderer(r.Out).Result(res, shares)
	}

	fmt.Fprintf(r.Out, "The text is most likely in %s\n", r.color(Green, res.Lang))
	fmt.Fprintln(r.Out, "Language probabilities:")
	for i, s := range shares {
		line := fmt.Sprintf("%s: %.2f%%", s.Lang, s.Percent)
		if i == 0 {
			line = r.color(Green256, line)
		}
		fmt.Fprintln(r.Out, line)
	}

	return nil
}

// Report prints the accuracy of an evaluation.
func (r *Renderer) Report(rep evaluate.Report) error {
	if r.Format == FormatJSON {
		if !r.Verbose {
			rep.Misses = nil
		}
		return NewJSONRenderer(r.Out).Report(rep)
	}

	if r.Verbose {
		for _, m := range rep.Misses {
			fmt.Fprintf(r.Out, "%s %q: want %s, got %s\n", r.color(Red, "✗"), m.Sentence, m.Want, m.Got)
		}
	}

	fmt.Fprintf(r.Out, "Accuracy: %.2f%% (%d/%d)\n", rep.Accuracy*100, rep.Correct, rep.Total)
	return nil
}

// Stats prints per language trigram statistics.
func (r *Renderer) Stats(stats stat.Stats) error {
	if r.Format == FormatJSON {
		return NewJSONRenderer(r.Out).Stats(stats)
	}

	for _, l := range stats.Languages {
		fmt.Fprintf(r.Out, "📖 %s trigrams %s, distinct %s, transitions %s\n",
			r.color(Yellow256, fmt.Sprintf("%-12s", l.Name)),
			humanize.Comma(int64(l.Total)),
			humanize.Comma(int64(l.Distinct)),
			humanize.Comma(int64(l.Transitions)),
		)

		if len(l.Top) == 0 {
			continue
		}

		parts := make([]string, 0, len(l.Top))
		for _, e := range l.Top {
			parts = append(parts, fmt.Sprintf("%q %s", e.Gram, humanize.Comma(int64(e.Count))))
		}
		fmt.Fprintf(r.Out, "   %s\n", r.color(Grey256, strings.Join(parts, ", ")))
	}

	fmt.Fprintf(r.Out, "Num languages %d, num trigrams %s, num distinct %s\n",
		stats.NumLanguages, humanize.Comma(int64(stats.NumTrigrams)), humanize.Comma(int64(stats.NumDistinct)))
	return nil
}

// Entries prints the stored corpora with their size.
func (r *Renderer) Entries(entries []storage.Entry) error {
	if r.Format == FormatJSON {
		return NewJSONRenderer(r.Out).Entries(entries)
	}

	for _, e := range entries {
		fmt.Fprintf(r.Out, "📖 %s %s\n", e.Lang, humanize.Bytes(uint64(e.Size)))
	}
	return nil
}

func (r *Renderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}

	r.Format = supported[0]
}

// NextColor toggles colored output.
func (r *Renderer) NextColor() {
	r.HasColor = !r.HasColor
}
