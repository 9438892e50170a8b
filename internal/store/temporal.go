package store

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

// TemporalGrouping selects the period granularity of the time series.
type TemporalGrouping string

const (
	GroupByYear      TemporalGrouping = "year"
	GroupByMonth     TemporalGrouping = "month"
	GroupByYearMonth TemporalGrouping = "year-month"
)

type TemporalStore struct {
	db *db.Guardian
}

type PeriodSummary struct {
	Period        string  `db:"period" json:"period"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
	AverageValue  float64 `db:"average_value" json:"average_value"`
	AthletesCount int     `db:"athletes_count" json:"athletes_count"`
}

// GetSeries aggregates payments per period. Rows with no payment date are
// excluded from the series.
func (ts *TemporalStore) GetSeries(ctx context.Context, grouping TemporalGrouping) ([]PeriodSummary, error) {
	var format string
	switch grouping {
	case GroupByYear:
		format = "%Y"
	case GroupByMonth:
		format = "%m"
	case GroupByYearMonth:
		format = "%Y-%m"
	default:
		return nil, fmt.Errorf("unknown temporal grouping %q", grouping)
	}

	query := `
	SELECT
		strftime('` + format + `', payment_date) AS period,
		COUNT(*) AS payments_count,
		SUM(paid_value) AS total_value,
		AVG(paid_value) AS average_value,
		COUNT(DISTINCT athlete_cpf) AS athletes_count
	FROM payments
	WHERE payment_date IS NOT NULL
	GROUP BY period
	ORDER BY period`

	var result []PeriodSummary
	if err := ts.db.Select(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("failed to query temporal series: %w", err)
	}
	return result, nil
}
