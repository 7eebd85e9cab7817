package stat

import (
	"github.com/revelaction/langid/model"
	"github.com/revelaction/langid/trigram"
)

const DefaultTop = 5

type Handler struct {
	stats Stats
	top   int
}

type Stats struct {
	NumLanguages int
	NumTrigrams  int
	NumDistinct  int
	Languages    []LanguageStats
}

type LanguageStats struct {
	Name        string
	Total       int
	Distinct    int
	Transitions int

	// Most frequent trigrams, by descending count
	Top []trigram.Entry
}

func (h *Handler) Get() Stats {
	return h.stats
}

// NewHandler returns a Handler keeping the top most frequent trigrams of
// each language. Non positive values use DefaultTop.
func NewHandler(top int) *Handler {
	if top <= 0 {
		top = DefaultTop
	}
	return &Handler{top: top}
}

func (h *Handler) Aggregate(m *model.Model) {
	m.Each(func(l model.Language) {
		entries := l.Table.Entries()
		if len(entries) > h.top {
			entries = entries[:h.top]
		}

		h.stats.Languages = append(h.stats.Languages, LanguageStats{
			Name:        l.Name,
			Total:       l.Table.Total(),
			Distinct:    l.Table.Distinct(),
			Transitions: l.Transitions.Len(),
			Top:         entries,
		})

		h.stats.NumLanguages++
		h.stats.NumTrigrams += l.Table.Total()
		h.stats.NumDistinct += l.Table.Distinct()
	})
}
