package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/langid/corpus"
	"github.com/revelaction/langid/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type CorpusStore struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)
var _ storage.TestSetReader = (*CorpusStore)(nil)
var _ storage.TestSetWriter = (*CorpusStore)(nil)

func NewCorpusStore(pool *sqlitex.Pool) *CorpusStore {
	return &CorpusStore{pool: pool}
}

func (h *CorpusStore) List() ([]storage.Entry, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var entries []storage.Entry
	err = sqlitex.Execute(conn, "SELECT lang, length(CAST(body AS BLOB)) FROM corpora ORDER BY lang", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			entries = append(entries, storage.Entry{
				Lang: stmt.ColumnText(0),
				Size: stmt.ColumnInt64(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *CorpusStore) Read(lang string) (corpus.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return corpus.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := corpus.Doc{Lang: lang}
	found := false

	err = sqlitex.Execute(conn, "SELECT body FROM corpora WHERE lang = ?", &sqlitex.ExecOptions{
		Args: []interface{}{lang},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Text = stmt.ColumnText(0)
			return nil
		},
	})
	if err != nil {
		return corpus.Doc{}, err
	}
	if !found {
		return corpus.Doc{}, fmt.Errorf("%w: %s", storage.ErrNotFound, lang)
	}

	return doc, nil
}

func (h *CorpusStore) ReadAll(cb storage.ProgressFunc) (corpus.Library, error) {
	entries, err := h.List()
	if err != nil {
		return nil, err
	}

	lib := make(corpus.Library, 0, len(entries))
	for i, e := range entries {
		if cb != nil {
			cb(i+1, len(entries), e.Lang)
		}

		doc, err := h.Read(e.Lang)
		if err != nil {
			return nil, err
		}
		lib = append(lib, doc)
	}

	return lib, nil
}

func (h *CorpusStore) Write(doc corpus.Doc) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	err = sqlitex.Execute(conn, "INSERT INTO corpora (lang, body) VALUES (?, ?) ON CONFLICT(lang) DO UPDATE SET body = excluded.body", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Lang, doc.Text},
	})
	if err != nil {
		return fmt.Errorf("failed to write corpus %s: %w", doc.Lang, err)
	}

	return nil
}

func (h *CorpusStore) ReadTestSet() (corpus.TestSet, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var ts corpus.TestSet
	err = sqlitex.Execute(conn, "SELECT sentence, lang FROM examples ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			ts = append(ts, corpus.Example{
				Sentence: stmt.ColumnText(0),
				Lang:     stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// WriteTestSet replaces the stored examples with ts.
func (h *CorpusStore) WriteTestSet(ts corpus.TestSet) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM examples", nil)
	if err != nil {
		return fmt.Errorf("failed to clear examples: %w", err)
	}

	for _, ex := range ts {
		err = sqlitex.Execute(conn, "INSERT INTO examples (sentence, lang) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{ex.Sentence, ex.Lang},
		})
		if err != nil {
			return fmt.Errorf("failed to insert example: %w", err)
		}
	}

	return nil
}
