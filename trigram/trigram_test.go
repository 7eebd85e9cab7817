package trigram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindows(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"two runes", "ab", nil},
		{"exactly three", "abc", []string{"abc"}},
		{"overlapping", "abcde", []string{"abc", "bcd", "cde"}},
		{"with space", "a b", []string{"a b"}},
		{"multibyte whitespace", "a bc", []string{"a b", " bc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Windows(tt.in))
		})
	}
}

func TestBuildRepeated(t *testing.T) {
	tb := Build("aaaa")

	assert.Equal(t, 2, tb.Count("aaa"))
	assert.Equal(t, 2, tb.Total())
	assert.Equal(t, 1, tb.Distinct())
	assert.Equal(t, tb.Total(), tb.Sum())
}

func TestBuildShort(t *testing.T) {
	for _, in := range []string{"", "a", "ab"} {
		tb := Build(in)
		assert.Equal(t, 0, tb.Total(), "input %q", in)
		assert.Equal(t, 0, tb.Distinct(), "input %q", in)
		assert.Equal(t, 0, tb.Sum(), "input %q", in)
	}
}

func TestCountMissing(t *testing.T) {
	tb := Build("hello")
	assert.Equal(t, 0, tb.Count("xyz"))

	var zero Table
	assert.Equal(t, 0, zero.Count("abc"))
}

func TestTotalMatchesSum(t *testing.T) {
	tb := Build("the quick brown fox jumps over the lazy dog the end")
	assert.Equal(t, tb.Sum(), tb.Total())
	assert.Equal(t, 3, tb.Count("the"))
}

func TestEntries(t *testing.T) {
	tb := Build("ababab c")
	entries := tb.Entries()
	require.NotEmpty(t, entries)

	assert.Equal(t, Entry{Gram: "aba", Count: 2}, entries[0])
	assert.Equal(t, Entry{Gram: "bab", Count: 2}, entries[1])
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Count, entries[i].Count)
	}

	sum := 0
	for _, e := range entries {
		sum += e.Count
	}
	assert.Equal(t, tb.Total(), sum)
}

func TestBuildTransitions(t *testing.T) {
	tr := BuildTransitions("abcab")

	// windows: abc bca cab
	assert.Equal(t, 1, tr.Count("abc", "bca"))
	assert.Equal(t, 1, tr.Count("bca", "cab"))
	assert.Equal(t, 0, tr.Count("abc", "cab"))
	assert.Equal(t, 1, tr.From("abc"))
	assert.Equal(t, 0, tr.From("cab"))
	assert.Equal(t, 2, tr.Len())

	empty := BuildTransitions("ab")
	assert.Equal(t, 0, empty.Len())
}
