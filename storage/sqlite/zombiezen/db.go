package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// CorporaSchema is the script creating the corpora and examples tables.
const CorporaSchema = "corpora.sql"

// NewPool opens the database at dbPath, creating it if needed. The pool holds
// one connection per CPU unless size is positive.
func NewPool(dbPath string, size ...int) (*sqlitex.Pool, error) {
	poolSize := runtime.NumCPU()
	if len(size) > 0 && size[0] > 0 {
		poolSize = size[0]
	}

	// default flags: read-write, create, WAL and URI
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open corpus database %s: %w", dbPath, err)
	}
	return pool, nil
}

// CreateSchemas runs the embedded scripts named in schemas in one savepoint.
// The scripts are idempotent.
func CreateSchemas(ctx context.Context, pool *sqlitex.Pool, schemas ...string) (err error) {
	conn, err := pool.Take(ctx)
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, name := range schemas {
		script, err := sqlFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return fmt.Errorf("unknown schema %s: %w", name, err)
		}

		if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
			return fmt.Errorf("schema %s: %w", name, err)
		}
	}

	return nil
}
