package store

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

type ModalityStore struct {
	db *db.Guardian
}

// GetSummary aggregates payments per sports modality, for all modalities or
// for a single selected one when name is non-empty.
func (ms *ModalityStore) GetSummary(ctx context.Context, name string) ([]DimensionSummary, error) {
	query := `
	SELECT
		m.name,
		COUNT(p.id) AS payments_count,
		COUNT(DISTINCT p.athlete_cpf) AS athletes_count,
		SUM(p.paid_value) AS total_value,
		AVG(p.paid_value) AS average_value
	FROM payments p
	JOIN modalities m ON p.modality_id = m.id`

	var args []any
	if name != "" {
		query += ` WHERE m.name = ?`
		args = append(args, name)
	}
	query += `
	GROUP BY m.name
	ORDER BY total_value DESC`

	var result []DimensionSummary
	if err := ms.db.Select(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query modality summary: %w", err)
	}
	return result, nil
}
