package identify

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/langid/classify"
	"github.com/revelaction/langid/render"

	"github.com/c-bata/go-prompt"
)

const quit = "quit"

// Handler runs the interactive prompt: every line entered is classified and
// rendered.
type Handler struct {
	Classifier *classify.Classifier
	Renderer   *render.Renderer

	// Err receives classification errors
	Err io.Writer

	history []string
}

func NewHandler(c *classify.Classifier, r *render.Renderer, errOut io.Writer) *Handler {
	return &Handler{
		Classifier: c,
		Renderer:   r,
		Err:        errOut,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.Out, "🔑 Ctrl+F: next Format, Ctrl+X: toggle color, 🔧 quit")

	for {
		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("langid identify"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(h.history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextColor()
					fmt.Fprintf(h.Renderer.Out, "Color set to %t\n", h.Renderer.HasColor)
				}}),
		)

		if !h.Eval(in) {
			return nil
		}
	}
}

// Eval handles one line of input. It returns false when the prompt should
// stop.
func (h *Handler) Eval(in string) bool {
	in = strings.TrimSpace(in)
	if in == quit {
		return false
	}

	if in == "" {
		return true
	}

	h.history = append(h.history, in)

	res, err := h.Classifier.Classify(in)
	if err == nil {
		err = h.Renderer.Result(res)
	}
	if err != nil {
		fmt.Fprintf(h.Err, "❌ %s\n", err)
	}

	return true
}

// History returns the lines entered so far.
func (h *Handler) History() []string {
	return h.history
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if befCursor == "" || strings.Contains(befCursor, " ") {
			return s
		}

		if strings.HasPrefix(quit, befCursor) && befCursor != quit {
			s = append(s, prompt.Suggest{Text: quit, Description: "leave the prompt"})
		}

		return s
	}
}
