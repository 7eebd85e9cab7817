package zombiezen

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *CorpusStore {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "langid.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, CreateSchemas(context.Background(), pool, CorporaSchema))
	return NewCorpusStore(pool)
}

func TestCorpusStoreRoundTrip(t *testing.T) {
	h := newStore(t)

	require.NoError(t, h.Write(corpus.Doc{Lang: "fr", Text: "le renard déjà"}))
	require.NoError(t, h.Write(corpus.Doc{Lang: "en", Text: "the fox"}))

	entries, err := h.List()
	require.NoError(t, err)
	assert.Equal(t, []storage.Entry{
		{Lang: "en", Size: int64(len("the fox"))},
		{Lang: "fr", Size: int64(len("le renard déjà"))},
	}, entries)

	doc, err := h.Read("fr")
	require.NoError(t, err)
	assert.Equal(t, corpus.Doc{Lang: "fr", Text: "le renard déjà"}, doc)

	var seen []string
	lib, err := h.ReadAll(func(current, total int, lang string) {
		assert.Equal(t, 2, total)
		seen = append(seen, lang)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, lib.Langs())
	assert.Equal(t, []string{"en", "fr"}, seen)
}

func TestCorpusStoreUpsert(t *testing.T) {
	h := newStore(t)

	require.NoError(t, h.Write(corpus.Doc{Lang: "en", Text: "old"}))
	require.NoError(t, h.Write(corpus.Doc{Lang: "en", Text: "new"}))

	doc, err := h.Read("en")
	require.NoError(t, err)
	assert.Equal(t, "new", doc.Text)

	entries, err := h.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCorpusStoreNotFound(t *testing.T) {
	h := newStore(t)

	_, err := h.Read("xx")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	lib, err := h.ReadAll(nil)
	require.NoError(t, err)
	assert.Empty(t, lib)
}

func TestTestSetRoundTrip(t *testing.T) {
	h := newStore(t)

	ts, err := h.ReadTestSet()
	require.NoError(t, err)
	assert.Empty(t, ts)

	require.NoError(t, h.WriteTestSet(corpus.DefaultTestSet()))
	require.NoError(t, h.WriteTestSet(corpus.DefaultTestSet()))

	ts, err = h.ReadTestSet()
	require.NoError(t, err)
	assert.Equal(t, corpus.DefaultTestSet(), ts)
}

func TestCreateSchemas(t *testing.T) {
	pool, err := NewPool(filepath.Join(t.TempDir(), "langid.db"), 2)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	require.NoError(t, CreateSchemas(ctx, pool, CorporaSchema))
	// a second run leaves the tables in place
	require.NoError(t, CreateSchemas(ctx, pool, CorporaSchema))
	assert.Error(t, CreateSchemas(ctx, pool, "missing.sql"))
}
