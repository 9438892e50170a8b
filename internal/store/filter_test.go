package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPredicateEmptyFilter(t *testing.T) {
	var f Filter

	clause, args := f.Predicate()

	assert.Empty(t, clause)
	assert.Nil(t, args)

	where, args := f.Where()
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestPredicateMembership(t *testing.T) {
	f := Filter{
		Categories: []string{"Pódio", "Internacional"},
		States:     []string{"SP"},
	}

	clause, args := f.Predicate()

	assert.Equal(t, "c.name IN (?, ?) AND mu.state_code IN (?)", clause)
	assert.Equal(t, []any{"Pódio", "Internacional", "SP"}, args)
}

func TestPredicateAllMemberships(t *testing.T) {
	f := Filter{
		Categories: []string{"Pódio"},
		Modalities: []string{"Atletismo", "Judô"},
		States:     []string{"SP", "RJ"},
	}

	clause, args := f.Predicate()

	assert.Equal(t, "c.name IN (?) AND m.name IN (?, ?) AND mu.state_code IN (?, ?)", clause)
	assert.Equal(t, []any{"Pódio", "Atletismo", "Judô", "SP", "RJ"}, args)
}

func TestPredicateDateBounds(t *testing.T) {
	f := Filter{
		DateEnabled: true,
		DateStart:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:     time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	clause, args := f.Predicate()

	assert.Equal(t, "p.payment_date >= ? AND p.payment_date <= ?", clause)
	assert.Equal(t, []any{"2020-01-01", "2020-12-31"}, args)
}

func TestPredicateDateStartOnly(t *testing.T) {
	f := Filter{
		DateEnabled: true,
		DateStart:   time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	clause, args := f.Predicate()

	assert.Equal(t, "p.payment_date >= ?", clause)
	assert.Equal(t, []any{"2021-06-15"}, args)
}

func TestPredicateDateDisabledIgnoresBounds(t *testing.T) {
	f := Filter{
		DateStart: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	clause, args := f.Predicate()

	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestPredicateValueBounds(t *testing.T) {
	f := Filter{
		ValueEnabled: true,
		ValueMin:     1000,
		ValueMax:     5000,
	}

	clause, args := f.Predicate()

	assert.Equal(t, "p.paid_value >= ? AND p.paid_value <= ?", clause)
	assert.Equal(t, []any{1000.0, 5000.0}, args)
}

func TestPredicateValueZeroIsUnset(t *testing.T) {
	f := Filter{
		ValueEnabled: true,
		ValueMax:     2500,
	}

	clause, args := f.Predicate()

	assert.Equal(t, "p.paid_value <= ?", clause)
	assert.Equal(t, []any{2500.0}, args)
}

func TestPredicateValueDisabledIgnoresBounds(t *testing.T) {
	f := Filter{
		ValueMin: 1000,
		ValueMax: 5000,
	}

	clause, args := f.Predicate()

	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestWherePrefixesClause(t *testing.T) {
	f := Filter{States: []string{"MG"}}

	where, args := f.Where()

	assert.Equal(t, " WHERE mu.state_code IN (?)", where)
	assert.Equal(t, []any{"MG"}, args)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}
