// Package trigram counts overlapping 3-character windows of normalized text.
package trigram

import (
	"sort"
)

// Size is the number of runes in a trigram.
const Size = 3

// Windows returns the ordered, overlapping trigrams of s. Window i holds the
// runes [i, i+3). Strings shorter than three runes have no windows.
func Windows(s string) []string {
	runes := []rune(s)
	if len(runes) < Size {
		return nil
	}

	grams := make([]string, 0, len(runes)-Size+1)
	for i := 0; i+Size <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+Size]))
	}

	return grams
}

// Table is the frequency table of the trigrams of one text. A Table is
// read-only once built and safe for concurrent use.
type Table struct {
	counts map[string]int
	total  int
}

// Build counts the trigrams of normalized text s.
func Build(s string) Table {
	t := Table{counts: map[string]int{}}
	for _, g := range Windows(s) {
		t.counts[g]++
		t.total++
	}

	return t
}

// Count returns the occurrences of gram, 0 when it was never seen.
func (t Table) Count(gram string) int {
	return t.counts[gram]
}

// Total returns the number of trigram windows counted.
func (t Table) Total() int {
	return t.total
}

// Distinct returns the number of different trigrams in the table.
func (t Table) Distinct() int {
	return len(t.counts)
}

// Sum recomputes the total from the counts.
func (t Table) Sum() int {
	sum := 0
	for _, n := range t.counts {
		sum += n
	}
	return sum
}

// Entry is a trigram with its count.
type Entry struct {
	Gram  string `json:"gram"`
	Count int    `json:"count"`
}

// Entries returns all trigrams sorted by descending count, then by trigram.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for g, n := range t.counts {
		entries = append(entries, Entry{Gram: g, Count: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Gram < entries[j].Gram
	})

	return entries
}

// Pair is a trigram followed by the next overlapping trigram.
type Pair struct {
	From string
	To   string
}

// Transitions counts consecutive trigram pairs of one text.
type Transitions struct {
	pairs map[Pair]int
	from  map[string]int
}

// BuildTransitions counts the pairs (window i-1, window i) of normalized text s.
func BuildTransitions(s string) Transitions {
	tr := Transitions{pairs: map[Pair]int{}, from: map[string]int{}}

	grams := Windows(s)
	for i := 1; i < len(grams); i++ {
		tr.pairs[Pair{From: grams[i-1], To: grams[i]}]++
		tr.from[grams[i-1]]++
	}

	return tr
}

// Count returns how often from was followed by to.
func (tr Transitions) Count(from, to string) int {
	return tr.pairs[Pair{From: from, To: to}]
}

// From returns how many transitions start at gram.
func (tr Transitions) From(gram string) int {
	return tr.from[gram]
}

// Len returns the number of distinct pairs.
func (tr Transitions) Len() int {
	return len(tr.pairs)
}
