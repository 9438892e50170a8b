package store

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS modalities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS statuses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS funding_notices (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS municipalities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	state_code TEXT NOT NULL,
	UNIQUE (name, state_code)
);

CREATE TABLE IF NOT EXISTS athletes (
	cpf TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	municipality_id INTEGER NOT NULL REFERENCES municipalities (id)
);

CREATE TABLE IF NOT EXISTS payments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	paid_value REAL NOT NULL,
	payment_date TEXT,
	reference_date TEXT,
	category_id INTEGER NOT NULL REFERENCES categories (id),
	modality_id INTEGER NOT NULL REFERENCES modalities (id),
	status_id INTEGER NOT NULL REFERENCES statuses (id),
	notice_id INTEGER NOT NULL REFERENCES funding_notices (id),
	athlete_cpf TEXT NOT NULL REFERENCES athletes (cpf)
);

CREATE INDEX IF NOT EXISTS idx_payments_category ON payments (category_id);
CREATE INDEX IF NOT EXISTS idx_payments_modality ON payments (modality_id);
CREATE INDEX IF NOT EXISTS idx_payments_athlete ON payments (athlete_cpf);
CREATE INDEX IF NOT EXISTS idx_payments_date ON payments (payment_date);
`

type IngestStore struct {
	db *db.Guardian
}

func (is *IngestStore) Migrate(ctx context.Context) error {
	if err := is.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (is *IngestStore) upsertDimension(ctx context.Context, table, name string) (int64, error) {
	insert := `INSERT INTO ` + table + ` (name) VALUES (?) ON CONFLICT (name) DO NOTHING`
	if err := is.db.Exec(ctx, insert, name); err != nil {
		return 0, fmt.Errorf("failed to upsert into %s: %w", table, err)
	}

	var id int64
	if err := is.db.Get(ctx, &id, `SELECT id FROM `+table+` WHERE name = ?`, name); err != nil {
		return 0, fmt.Errorf("failed to resolve %s id: %w", table, err)
	}
	return id, nil
}

func (is *IngestStore) UpsertCategory(ctx context.Context, name string) (int64, error) {
	return is.upsertDimension(ctx, "categories", name)
}

func (is *IngestStore) UpsertModality(ctx context.Context, name string) (int64, error) {
	return is.upsertDimension(ctx, "modalities", name)
}

func (is *IngestStore) UpsertStatus(ctx context.Context, name string) (int64, error) {
	return is.upsertDimension(ctx, "statuses", name)
}

func (is *IngestStore) UpsertNotice(ctx context.Context, name string) (int64, error) {
	return is.upsertDimension(ctx, "funding_notices", name)
}

func (is *IngestStore) UpsertMunicipality(ctx context.Context, name, state string) (int64, error) {
	insert := `
	INSERT INTO municipalities (name, state_code) VALUES (?, ?)
	ON CONFLICT (name, state_code) DO NOTHING`
	if err := is.db.Exec(ctx, insert, name, state); err != nil {
		return 0, fmt.Errorf("failed to upsert municipality: %w", err)
	}

	var id int64
	err := is.db.Get(ctx, &id,
		`SELECT id FROM municipalities WHERE name = ? AND state_code = ?`, name, state)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve municipality id: %w", err)
	}
	return id, nil
}

func (is *IngestStore) UpsertAthlete(ctx context.Context, a *Athlete) error {
	query := `
	INSERT INTO athletes (cpf, name, municipality_id)
	VALUES (:cpf, :name, :municipality_id)
	ON CONFLICT (cpf) DO UPDATE SET
		name = excluded.name,
		municipality_id = excluded.municipality_id`

	if err := is.db.NamedExec(ctx, query, a); err != nil {
		return fmt.Errorf("failed to upsert athlete: %w", err)
	}
	return nil
}

func (is *IngestStore) InsertPayment(ctx context.Context, p *Payment) error {
	query := `
	INSERT INTO payments (
		paid_value, payment_date, reference_date,
		category_id, modality_id, status_id, notice_id, athlete_cpf
	) VALUES (
		:paid_value, NULLIF(:payment_date, ''), NULLIF(:reference_date, ''),
		:category_id, :modality_id, :status_id, :notice_id, :athlete_cpf
	)`

	if err := is.db.NamedExec(ctx, query, p); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}
