package db

// Table is an in-memory query result: column order matches the SELECT list,
// row order matches the result order.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Empty reports whether the table carries no rows. Zero rows is not an
// error; consumers render a "no data" indication instead.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}
