package main

import (
	"context"
	"fmt"

	"github.com/revelaction/langid/storage/sqlite/zombiezen"

	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool opens one SQLite database per command run and shares it between the
// corpus and test set repositories.
type Pool struct {
	p    *sqlitex.Pool
	path string
}

// Open returns the pool of path, opening it and creating the corpora tables
// on first use.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		if p.path != path {
			return nil, fmt.Errorf("database %s already open, cannot open %s", p.path, path)
		}
		return p.p, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateSchemas(context.Background(), pool, zombiezen.CorporaSchema); err != nil {
		_ = pool.Close()
		return nil, err
	}

	p.p, p.path = pool, path
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p == nil {
		return nil
	}
	err := p.p.Close()
	p.p = nil
	return err
}
