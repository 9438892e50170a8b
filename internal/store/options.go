package store

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

type OptionsStore struct {
	db *db.Guardian
}

// FilterOptions is what the sidebar needs to build its filter widgets:
// selectable names plus the payment date range of the dataset.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Modalities []string `json:"modalities"`
	States     []string `json:"states"`
	MinDate    string   `json:"min_date"`
	MaxDate    string   `json:"max_date"`
}

func (os *OptionsStore) GetFilterOptions(ctx context.Context) (FilterOptions, error) {
	var opts FilterOptions

	if err := os.db.Select(ctx, &opts.Categories,
		`SELECT name FROM categories ORDER BY name`); err != nil {
		return opts, fmt.Errorf("failed to list categories: %w", err)
	}

	if err := os.db.Select(ctx, &opts.Modalities,
		`SELECT name FROM modalities ORDER BY name`); err != nil {
		return opts, fmt.Errorf("failed to list modalities: %w", err)
	}

	if err := os.db.Select(ctx, &opts.States,
		`SELECT DISTINCT state_code FROM municipalities ORDER BY state_code`); err != nil {
		return opts, fmt.Errorf("failed to list states: %w", err)
	}

	dateRange := struct {
		MinDate string `db:"min_date"`
		MaxDate string `db:"max_date"`
	}{}
	err := os.db.Get(ctx, &dateRange, `
	SELECT
		COALESCE(MIN(payment_date), '') AS min_date,
		COALESCE(MAX(payment_date), '') AS max_date
	FROM payments
	WHERE payment_date IS NOT NULL`)
	if err != nil {
		return opts, fmt.Errorf("failed to get payment date range: %w", err)
	}
	opts.MinDate = dateRange.MinDate
	opts.MaxDate = dateRange.MaxDate

	return opts, nil
}
