package ingest

import (
	"context"
	"fmt"

	"github.com/farxc/bolsa_atleta_wrapper/internal/logger"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
	"github.com/go-gota/gota/dataframe"
)

// Loader writes decoded CSV rows into the store, deduplicating the dimension
// lookups with in-memory caches so each distinct name hits the database once.
type Loader struct {
	storage *store.Storage
	log     *logger.Logger

	categories map[string]int64
	modalities map[string]int64
	statuses   map[string]int64
	notices    map[string]int64
	cities     map[string]int64
}

func NewLoader(storage *store.Storage, log *logger.Logger) *Loader {
	return &Loader{
		storage:    storage,
		log:        log,
		categories: make(map[string]int64),
		modalities: make(map[string]int64),
		statuses:   make(map[string]int64),
		notices:    make(map[string]int64),
		cities:     make(map[string]int64),
	}
}

func (l *Loader) dimensionID(ctx context.Context, cache map[string]int64, name string,
	upsert func(context.Context, string) (int64, error)) (int64, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}
	id, err := upsert(ctx, name)
	if err != nil {
		return 0, err
	}
	cache[name] = id
	return id, nil
}

func (l *Loader) municipalityID(ctx context.Context, name, state string) (int64, error) {
	key := name + "|" + state
	if id, ok := l.cities[key]; ok {
		return id, nil
	}
	id, err := l.storage.Ingest.UpsertMunicipality(ctx, name, state)
	if err != nil {
		return 0, err
	}
	l.cities[key] = id
	return id, nil
}

func (l *Loader) loadRecord(ctx context.Context, rec Record) error {
	categoryID, err := l.dimensionID(ctx, l.categories, rec.Category, l.storage.Ingest.UpsertCategory)
	if err != nil {
		return fmt.Errorf("category %q: %w", rec.Category, err)
	}
	modalityID, err := l.dimensionID(ctx, l.modalities, rec.Modality, l.storage.Ingest.UpsertModality)
	if err != nil {
		return fmt.Errorf("modality %q: %w", rec.Modality, err)
	}
	statusID, err := l.dimensionID(ctx, l.statuses, rec.Status, l.storage.Ingest.UpsertStatus)
	if err != nil {
		return fmt.Errorf("status %q: %w", rec.Status, err)
	}
	noticeID, err := l.dimensionID(ctx, l.notices, rec.Notice, l.storage.Ingest.UpsertNotice)
	if err != nil {
		return fmt.Errorf("notice %q: %w", rec.Notice, err)
	}
	municipalityID, err := l.municipalityID(ctx, rec.Municipality, rec.State)
	if err != nil {
		return fmt.Errorf("municipality %q/%q: %w", rec.Municipality, rec.State, err)
	}

	athlete := &store.Athlete{
		CPF:            rec.CPF,
		Name:           rec.Name,
		MunicipalityID: municipalityID,
	}
	if err := l.storage.Ingest.UpsertAthlete(ctx, athlete); err != nil {
		return fmt.Errorf("athlete %q: %w", rec.CPF, err)
	}

	payment := &store.Payment{
		PaidValue:     ParseFloat(rec.PaidValue),
		PaymentDate:   ParseDate(rec.PaymentDate),
		ReferenceDate: ParseDate(rec.ReferenceDate),
		CategoryID:    categoryID,
		ModalityID:    modalityID,
		StatusID:      statusID,
		NoticeID:      noticeID,
		AthleteCPF:    rec.CPF,
	}
	return l.storage.Ingest.InsertPayment(ctx, payment)
}

// Load walks the dataframe and inserts every row, skipping rows without a
// CPF. Row failures are logged and counted, not fatal.
func (l *Loader) Load(ctx context.Context, df dataframe.DataFrame) (int, error) {
	const component = "Loader"

	loaded := 0
	skipped := 0
	for rowIdx := 0; rowIdx < df.Nrow(); rowIdx++ {
		rec := DfRowToRecord(df, rowIdx)
		if rec.CPF == "" {
			skipped++
			continue
		}

		if err := l.loadRecord(ctx, rec); err != nil {
			l.log.Warn(component, "Row load failed: row=%d error=%v", rowIdx, err)
			skipped++
			continue
		}
		loaded++

		if loaded%10000 == 0 {
			l.log.Info(component, "Load progress: loaded=%d skipped=%d", loaded, skipped)
		}
	}

	l.log.Info(component, "Load completed: loaded=%d skipped=%d", loaded, skipped)
	return loaded, nil
}
