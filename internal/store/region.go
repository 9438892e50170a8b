package store

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

type RegionStore struct {
	db *db.Guardian
}

type StateSummary struct {
	State               string  `db:"state_code" json:"state"`
	MunicipalitiesCount int     `db:"municipalities_count" json:"municipalities_count"`
	AthletesCount       int     `db:"athletes_count" json:"athletes_count"`
	PaymentsCount       int     `db:"payments_count" json:"payments_count"`
	TotalValue          float64 `db:"total_value" json:"total_value"`
	AverageValue        float64 `db:"average_value" json:"average_value"`
}

type MunicipalitySummary struct {
	State         string  `db:"state_code" json:"state"`
	Municipality  string  `db:"municipality" json:"municipality"`
	AthletesCount int     `db:"athletes_count" json:"athletes_count"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
	AverageValue  float64 `db:"average_value" json:"average_value"`
}

func (rs *RegionStore) GetStateSummary(ctx context.Context) ([]StateSummary, error) {
	query := `
	SELECT
		mu.state_code,
		COUNT(DISTINCT mu.id) AS municipalities_count,
		COUNT(DISTINCT a.cpf) AS athletes_count,
		COUNT(p.id) AS payments_count,
		SUM(p.paid_value) AS total_value,
		AVG(p.paid_value) AS average_value
	FROM payments p
	JOIN athletes a ON p.athlete_cpf = a.cpf
	JOIN municipalities mu ON a.municipality_id = mu.id
	GROUP BY mu.state_code
	ORDER BY total_value DESC`

	var result []StateSummary
	if err := rs.db.Select(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("failed to query state summary: %w", err)
	}
	return result, nil
}

func (rs *RegionStore) GetMunicipalitySummary(ctx context.Context, state string) ([]MunicipalitySummary, error) {
	query := `
	SELECT
		mu.state_code,
		mu.name AS municipality,
		COUNT(DISTINCT a.cpf) AS athletes_count,
		COUNT(p.id) AS payments_count,
		SUM(p.paid_value) AS total_value,
		AVG(p.paid_value) AS average_value
	FROM payments p
	JOIN athletes a ON p.athlete_cpf = a.cpf
	JOIN municipalities mu ON a.municipality_id = mu.id
	WHERE mu.state_code = ?
	GROUP BY mu.state_code, mu.name
	ORDER BY total_value DESC`

	var result []MunicipalitySummary
	if err := rs.db.Select(ctx, &result, query, state); err != nil {
		return nil, fmt.Errorf("failed to query municipality summary: %w", err)
	}
	return result, nil
}
