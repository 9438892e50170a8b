package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// ErrStoreNotFound is returned by Open when the SQLite file does not exist.
// Callers treat it as fatal: there is nothing to serve without the store.
var ErrStoreNotFound = errors.New("db: store not found")

// Lock-wait timeout so concurrent readers against the file don't fail
// immediately under contention.
const busyTimeoutMs = 30000

// Guardian owns the single cached database handle for the process. Every
// query goes through it: the handle is probed before each use and
// transparently reopened when the previous one went stale (the hosting
// runtime may tear down execution contexts between requests).
type Guardian struct {
	path string

	mu sync.Mutex
	db *sqlx.DB
}

func Open(path string) (*Guardian, error) {
	if path != ":memory:" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
	}

	g := &Guardian{path: path}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := g.handle(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Guardian) open() (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d", g.path, busyTimeoutMs)
	conn, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// handle returns a live handle, reopening if the cached one fails the
// liveness probe. Caller must hold mu.
func (g *Guardian) handle() (*sqlx.DB, error) {
	if g.db != nil {
		if _, err := g.db.Exec("SELECT 1"); err == nil {
			return g.db, nil
		}
		g.db.Close() // best effort, the handle is already suspect
		g.db = nil
	}

	conn, err := g.open()
	if err != nil {
		return nil, err
	}
	g.db = conn
	return g.db, nil
}

// invalidate discards the cached handle. Caller must hold mu.
func (g *Guardian) invalidate() {
	if g.db != nil {
		g.db.Close()
		g.db = nil
	}
}

// run executes fn against a valid handle. On a connection-lost class error
// the cached handle is invalidated and fn retried exactly once with a fresh
// one; a second failure propagates. Anything else (malformed SQL, type
// mismatch) is a caller bug and propagates unrecovered.
func (g *Guardian) run(fn func(conn *sqlx.DB) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	conn, err := g.handle()
	if err != nil {
		return err
	}

	err = fn(conn)
	if err == nil || !isConnLost(err) {
		return err
	}

	g.invalidate()
	conn, herr := g.handle()
	if herr != nil {
		return herr
	}
	return fn(conn)
}

func isConnLost(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "bad connection")
}

func (g *Guardian) Select(ctx context.Context, dest any, query string, args ...any) error {
	return g.run(func(conn *sqlx.DB) error {
		return conn.SelectContext(ctx, dest, query, args...)
	})
}

func (g *Guardian) Get(ctx context.Context, dest any, query string, args ...any) error {
	return g.run(func(conn *sqlx.DB) error {
		return conn.GetContext(ctx, dest, query, args...)
	})
}

func (g *Guardian) Exec(ctx context.Context, query string, args ...any) error {
	return g.run(func(conn *sqlx.DB) error {
		_, err := conn.ExecContext(ctx, query, args...)
		return err
	})
}

func (g *Guardian) NamedExec(ctx context.Context, query string, arg any) error {
	return g.run(func(conn *sqlx.DB) error {
		_, err := conn.NamedExecContext(ctx, query, arg)
		return err
	})
}

// Query runs arbitrary SQL and returns the full result as a Table, column
// and row order preserved.
func (g *Guardian) Query(ctx context.Context, query string, args ...any) (*Table, error) {
	var t *Table
	err := g.run(func(conn *sqlx.DB) error {
		rows, err := conn.QueryxContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return err
		}
		t = &Table{Columns: cols}
		for rows.Next() {
			row, err := rows.SliceScan()
			if err != nil {
				return err
			}
			// The driver hands TEXT columns back as []byte, which JSON
			// would base64-encode.
			for i, v := range row {
				if b, ok := v.([]byte); ok {
					row[i] = string(b)
				}
			}
			t.Rows = append(t.Rows, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (g *Guardian) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	return err
}
