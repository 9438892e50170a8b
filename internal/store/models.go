package store

// Payment represents the 'payments' table. Dates are stored as ISO
// yyyy-mm-dd text, the way the ingestion writes them.
type Payment struct {
	ID            int64   `db:"id"`
	PaidValue     float64 `db:"paid_value"`
	PaymentDate   string  `db:"payment_date"`
	ReferenceDate string  `db:"reference_date"`
	CategoryID    int64   `db:"category_id"`
	ModalityID    int64   `db:"modality_id"`
	StatusID      int64   `db:"status_id"`
	NoticeID      int64   `db:"notice_id"`
	AthleteCPF    string  `db:"athlete_cpf"`
}

// Athlete represents the 'athletes' table, keyed by national ID (CPF).
type Athlete struct {
	CPF            string `db:"cpf"`
	Name           string `db:"name"`
	MunicipalityID int64  `db:"municipality_id"`
}

// Dimension is a flat name keyed by a surrogate ID. Categories, modalities,
// statuses and funding notices all share this shape.
type Dimension struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Municipality represents the 'municipalities' table; it additionally
// carries the two-letter state code (UF).
type Municipality struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	StateCode string `db:"state_code"`
}
