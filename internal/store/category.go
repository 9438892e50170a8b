package store

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

type CategoryStore struct {
	db *db.Guardian
}

// DimensionSummary is the per-category / per-modality aggregate shown on the
// dedicated analysis views.
type DimensionSummary struct {
	Name          string  `db:"name" json:"name"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
	AthletesCount int     `db:"athletes_count" json:"athletes_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
	AverageValue  float64 `db:"average_value" json:"average_value"`
}

// GetSummary aggregates payments per category, for all categories or for a
// single selected one when name is non-empty.
func (cs *CategoryStore) GetSummary(ctx context.Context, name string) ([]DimensionSummary, error) {
	query := `
	SELECT
		c.name,
		COUNT(p.id) AS payments_count,
		COUNT(DISTINCT p.athlete_cpf) AS athletes_count,
		SUM(p.paid_value) AS total_value,
		AVG(p.paid_value) AS average_value
	FROM payments p
	JOIN categories c ON p.category_id = c.id`

	var args []any
	if name != "" {
		query += ` WHERE c.name = ?`
		args = append(args, name)
	}
	query += `
	GROUP BY c.name
	ORDER BY total_value DESC`

	var result []DimensionSummary
	if err := cs.db.Select(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	return result, nil
}
