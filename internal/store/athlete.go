package store

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

type AthleteStore struct {
	db *db.Guardian
}

type AthleteSummary struct {
	Name          string  `db:"name" json:"name"`
	CPF           string  `db:"cpf" json:"cpf"`
	Municipality  string  `db:"municipality" json:"municipality"`
	State         string  `db:"state_code" json:"state"`
	PaymentsCount int     `db:"payments_count" json:"payments_count"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
	AverageValue  float64 `db:"average_value" json:"average_value"`
	FirstPayment  string  `db:"first_payment" json:"first_payment"`
	LastPayment   string  `db:"last_payment" json:"last_payment"`
}

type PaymentDetail struct {
	PaymentDate   string  `db:"payment_date" json:"payment_date"`
	ReferenceDate string  `db:"reference_date" json:"reference_date"`
	Category      string  `db:"category" json:"category"`
	Modality      string  `db:"modality" json:"modality"`
	Status        string  `db:"status" json:"status"`
	Notice        string  `db:"notice" json:"notice"`
	PaidValue     float64 `db:"paid_value" json:"paid_value"`
}

// Search finds athletes by partial name match, ordered by total received.
func (as *AthleteStore) Search(ctx context.Context, name string, limit int) ([]AthleteSummary, error) {
	query := `
	SELECT
		a.name,
		a.cpf,
		mu.name AS municipality,
		mu.state_code,
		COUNT(p.id) AS payments_count,
		COALESCE(SUM(p.paid_value), 0) AS total_value,
		COALESCE(AVG(p.paid_value), 0) AS average_value,
		COALESCE(MIN(p.payment_date), '') AS first_payment,
		COALESCE(MAX(p.payment_date), '') AS last_payment
	FROM athletes a
	JOIN municipalities mu ON a.municipality_id = mu.id
	LEFT JOIN payments p ON p.athlete_cpf = a.cpf
	WHERE a.name LIKE ?
	GROUP BY a.cpf, a.name, mu.name, mu.state_code
	ORDER BY total_value DESC
	LIMIT ?`

	var result []AthleteSummary
	if err := as.db.Select(ctx, &result, query, "%"+name+"%", limit); err != nil {
		return nil, fmt.Errorf("failed to search athletes: %w", err)
	}
	return result, nil
}

// GetPayments lists the full payment history of one athlete.
func (as *AthleteStore) GetPayments(ctx context.Context, cpf string) ([]PaymentDetail, error) {
	query := `
	SELECT
		COALESCE(p.payment_date, '') AS payment_date,
		COALESCE(p.reference_date, '') AS reference_date,
		c.name AS category,
		m.name AS modality,
		s.name AS status,
		fn.name AS notice,
		p.paid_value
	FROM payments p
	JOIN categories c ON p.category_id = c.id
	JOIN modalities m ON p.modality_id = m.id
	JOIN statuses s ON p.status_id = s.id
	JOIN funding_notices fn ON p.notice_id = fn.id
	WHERE p.athlete_cpf = ?
	ORDER BY p.payment_date DESC`

	var result []PaymentDetail
	if err := as.db.Select(ctx, &result, query, cpf); err != nil {
		return nil, fmt.Errorf("failed to query athlete payments: %w", err)
	}
	return result, nil
}
