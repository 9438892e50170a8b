package store

import (
	"strings"
	"time"
)

// Filter is the set of user-selected constraints applied to the payment
// aggregation queries. Empty sets and disabled toggles contribute nothing;
// a zero Filter yields an unfiltered query.
type Filter struct {
	Categories []string
	Modalities []string
	States     []string

	// Date bounds apply only while DateEnabled is set; each bound is
	// independently optional (zero time = unset).
	DateEnabled bool
	DateStart   time.Time
	DateEnd     time.Time

	// Value bounds apply only while ValueEnabled is set; 0 is the
	// sentinel for an unset bound.
	ValueEnabled bool
	ValueMin     float64
	ValueMax     float64
}

// paymentJoins is the fact-to-dimension join set shared by the aggregate
// queries. Every payment references exactly one row in each dimension, so
// the joins never drop rows.
const paymentJoins = `
	FROM payments p
	JOIN categories c ON p.category_id = c.id
	JOIN modalities m ON p.modality_id = m.id
	JOIN athletes a ON p.athlete_cpf = a.cpf
	JOIN municipalities mu ON a.municipality_id = mu.id
`

// Predicate translates the filter into an AND-joined SQL predicate over the
// paymentJoins aliases, with all user-supplied values bound. An empty filter
// yields ("", nil).
func (f Filter) Predicate() (string, []any) {
	var conds []string
	var args []any

	membership := func(column string, values []string) {
		conds = append(conds, column+" IN ("+placeholders(len(values))+")")
		for _, v := range values {
			args = append(args, v)
		}
	}

	if len(f.Categories) > 0 {
		membership("c.name", f.Categories)
	}
	if len(f.Modalities) > 0 {
		membership("m.name", f.Modalities)
	}
	if len(f.States) > 0 {
		membership("mu.state_code", f.States)
	}

	if f.DateEnabled {
		if !f.DateStart.IsZero() {
			conds = append(conds, "p.payment_date >= ?")
			args = append(args, f.DateStart.Format("2006-01-02"))
		}
		if !f.DateEnd.IsZero() {
			conds = append(conds, "p.payment_date <= ?")
			args = append(args, f.DateEnd.Format("2006-01-02"))
		}
	}

	if f.ValueEnabled {
		if f.ValueMin > 0 {
			conds = append(conds, "p.paid_value >= ?")
			args = append(args, f.ValueMin)
		}
		if f.ValueMax > 0 {
			conds = append(conds, "p.paid_value <= ?")
			args = append(args, f.ValueMax)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return strings.Join(conds, " AND "), args
}

// Where wraps Predicate into a ready-to-append " WHERE ..." fragment, or ""
// for an unfiltered query.
func (f Filter) Where() (string, []any) {
	clause, args := f.Predicate()
	if clause == "" {
		return "", nil
	}
	return " WHERE " + clause, args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
