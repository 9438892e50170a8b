package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

var ErrUnknownTable = errors.New("unknown table")

// browsableTables is the fixed set the raw browser may touch. Table names are
// never taken verbatim from the request into SQL.
var browsableTables = []string{
	"payments",
	"athletes",
	"categories",
	"modalities",
	"municipalities",
	"statuses",
	"funding_notices",
}

type RawStore struct {
	db *db.Guardian
}

func (rs *RawStore) Tables() []string {
	tables := make([]string, len(browsableTables))
	copy(tables, browsableTables)
	return tables
}

// Browse returns up to limit rows of one of the browsable tables.
func (rs *RawStore) Browse(ctx context.Context, table string, limit int) (*db.Table, error) {
	allowed := false
	for _, t := range browsableTables {
		if t == table {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	result, err := rs.db.Query(ctx, `SELECT * FROM `+table+` LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to browse table %s: %w", table, err)
	}
	return result, nil
}
