package store

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

/*
This store backs the executive overview view: headline stats plus the chart
aggregates (value bands, per-dimension totals, top-N rankings and the
category/modality/state breakdown), all restricted by the current Filter.
*/
type OverviewStore struct {
	db *db.Guardian
}

type Stats struct {
	TotalPayments int     `db:"total_payments" json:"total_payments"`
	TotalAthletes int     `db:"total_athletes" json:"total_athletes"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
	AverageValue  float64 `db:"average_value" json:"average_value"`
}

type ValueBand struct {
	Band          string `db:"band" json:"band"`
	PaymentsCount int    `db:"payments_count" json:"payments_count"`
}

type CategoryAverage struct {
	Category      string  `db:"category" json:"category"`
	AverageValue  float64 `db:"average_value" json:"average_value"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
}

type ModalityTotal struct {
	Modality      string  `db:"modality" json:"modality"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
}

type CategoryTotal struct {
	Category      string  `db:"category" json:"category"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
}

type StateTotal struct {
	State         string  `db:"state_code" json:"state"`
	AthletesCount int     `db:"athletes_count" json:"athletes_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
}

type MunicipalityTotal struct {
	Location      string  `db:"location" json:"location"`
	AthletesCount int     `db:"athletes_count" json:"athletes_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
}

type ModalityAthletes struct {
	Modality      string  `db:"modality" json:"modality"`
	AthletesCount int     `db:"athletes_count" json:"athletes_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
	AverageValue  float64 `db:"average_value" json:"average_value"`
}

type StateDistribution struct {
	State         string  `db:"state_code" json:"state"`
	AthletesCount int     `db:"athletes_count" json:"athletes_count"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
}

type SummaryRow struct {
	Category      string  `db:"category" json:"category"`
	Modality      string  `db:"modality" json:"modality"`
	State         string  `db:"state_code" json:"state"`
	AthletesCount int     `db:"athletes_count" json:"athletes_count"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
	AverageValue  float64 `db:"average_value" json:"average_value"`
}

func (ov *OverviewStore) GetStats(ctx context.Context, f Filter) (Stats, error) {
	where, args := f.Where()
	query := `
	SELECT
		COUNT(*) AS total_payments,
		COUNT(DISTINCT p.athlete_cpf) AS total_athletes,
		COALESCE(SUM(p.paid_value), 0) AS total_value,
		COALESCE(AVG(p.paid_value), 0) AS average_value
	` + paymentJoins + where

	var stats Stats
	if err := ov.db.Get(ctx, &stats, query, args...); err != nil {
		return Stats{}, fmt.Errorf("failed to query overview stats: %w", err)
	}
	return stats, nil
}

func (ov *OverviewStore) GetValueBands(ctx context.Context, f Filter) ([]ValueBand, error) {
	where, args := f.Where()
	query := `
	SELECT
		CASE
			WHEN p.paid_value < 1000 THEN 'Até R$ 1.000'
			WHEN p.paid_value < 2000 THEN 'R$ 1.000 - R$ 2.000'
			WHEN p.paid_value < 3000 THEN 'R$ 2.000 - R$ 3.000'
			WHEN p.paid_value < 5000 THEN 'R$ 3.000 - R$ 5.000'
			ELSE 'Acima de R$ 5.000'
		END AS band,
		COUNT(*) AS payments_count
	` + paymentJoins + where + `
	GROUP BY band
	ORDER BY MIN(p.paid_value)`

	var bands []ValueBand
	if err := ov.db.Select(ctx, &bands, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query value bands: %w", err)
	}
	return bands, nil
}

func (ov *OverviewStore) GetAverageByCategory(ctx context.Context, f Filter) ([]CategoryAverage, error) {
	where, args := f.Where()
	query := `
	SELECT
		c.name AS category,
		AVG(p.paid_value) AS average_value,
		COUNT(p.id) AS payments_count
	` + paymentJoins + where + `
	GROUP BY c.name
	ORDER BY average_value DESC`

	var result []CategoryAverage
	if err := ov.db.Select(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query average by category: %w", err)
	}
	return result, nil
}

func (ov *OverviewStore) GetTopModalities(ctx context.Context, f Filter, limit int) ([]ModalityTotal, error) {
	where, args := f.Where()
	query := `
	SELECT
		m.name AS modality,
		COUNT(p.id) AS payments_count,
		SUM(p.paid_value) AS total_value
	` + paymentJoins + where + `
	GROUP BY m.name
	ORDER BY total_value DESC
	LIMIT ?`

	var result []ModalityTotal
	if err := ov.db.Select(ctx, &result, query, append(args, limit)...); err != nil {
		return nil, fmt.Errorf("failed to query top modalities: %w", err)
	}
	return result, nil
}

func (ov *OverviewStore) GetCategoryDistribution(ctx context.Context, f Filter) ([]CategoryTotal, error) {
	where, args := f.Where()
	query := `
	SELECT
		c.name AS category,
		COUNT(p.id) AS payments_count,
		SUM(p.paid_value) AS total_value
	` + paymentJoins + where + `
	GROUP BY c.name
	ORDER BY total_value DESC`

	var result []CategoryTotal
	if err := ov.db.Select(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query category distribution: %w", err)
	}
	return result, nil
}

func (ov *OverviewStore) GetTopStates(ctx context.Context, f Filter, limit int) ([]StateTotal, error) {
	where, args := f.Where()
	query := `
	SELECT
		mu.state_code,
		COUNT(DISTINCT a.cpf) AS athletes_count,
		SUM(p.paid_value) AS total_value
	` + paymentJoins + where + `
	GROUP BY mu.state_code
	ORDER BY total_value DESC
	LIMIT ?`

	var result []StateTotal
	if err := ov.db.Select(ctx, &result, query, append(args, limit)...); err != nil {
		return nil, fmt.Errorf("failed to query top states: %w", err)
	}
	return result, nil
}

func (ov *OverviewStore) GetTopMunicipalities(ctx context.Context, f Filter, limit int) ([]MunicipalityTotal, error) {
	where, args := f.Where()
	query := `
	SELECT
		mu.name || ' - ' || mu.state_code AS location,
		COUNT(DISTINCT a.cpf) AS athletes_count,
		SUM(p.paid_value) AS total_value
	` + paymentJoins + where + `
	GROUP BY mu.name, mu.state_code
	ORDER BY total_value DESC
	LIMIT ?`

	var result []MunicipalityTotal
	if err := ov.db.Select(ctx, &result, query, append(args, limit)...); err != nil {
		return nil, fmt.Errorf("failed to query top municipalities: %w", err)
	}
	return result, nil
}

func (ov *OverviewStore) GetModalityAthletes(ctx context.Context, f Filter, limit int) ([]ModalityAthletes, error) {
	where, args := f.Where()
	query := `
	SELECT
		m.name AS modality,
		COUNT(DISTINCT p.athlete_cpf) AS athletes_count,
		SUM(p.paid_value) AS total_value,
		AVG(p.paid_value) AS average_value
	` + paymentJoins + where + `
	GROUP BY m.name
	ORDER BY athletes_count DESC
	LIMIT ?`

	var result []ModalityAthletes
	if err := ov.db.Select(ctx, &result, query, append(args, limit)...); err != nil {
		return nil, fmt.Errorf("failed to query modalities by athletes: %w", err)
	}
	return result, nil
}

func (ov *OverviewStore) GetStateDistribution(ctx context.Context, f Filter) ([]StateDistribution, error) {
	where, args := f.Where()
	query := `
	SELECT
		mu.state_code,
		COUNT(DISTINCT a.cpf) AS athletes_count,
		COUNT(p.id) AS payments_count,
		SUM(p.paid_value) AS total_value
	` + paymentJoins + where + `
	GROUP BY mu.state_code
	ORDER BY total_value DESC`

	var result []StateDistribution
	if err := ov.db.Select(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query state distribution: %w", err)
	}
	return result, nil
}

func (ov *OverviewStore) GetSummaryBreakdown(ctx context.Context, f Filter, limit int) ([]SummaryRow, error) {
	where, args := f.Where()
	query := `
	SELECT
		c.name AS category,
		m.name AS modality,
		mu.state_code,
		COUNT(DISTINCT p.athlete_cpf) AS athletes_count,
		COUNT(p.id) AS payments_count,
		SUM(p.paid_value) AS total_value,
		AVG(p.paid_value) AS average_value
	` + paymentJoins + where + `
	GROUP BY c.name, m.name, mu.state_code
	ORDER BY total_value DESC
	LIMIT ?`

	var result []SummaryRow
	if err := ov.db.Select(ctx, &result, query, append(args, limit)...); err != nil {
		return nil, fmt.Errorf("failed to query summary breakdown: %w", err)
	}
	return result, nil
}
