package store

import (
	"context"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
)

type Storage struct {
	Options interface {
		GetFilterOptions(ctx context.Context) (FilterOptions, error)
	}

	Overview interface {
		GetStats(ctx context.Context, f Filter) (Stats, error)
		GetValueBands(ctx context.Context, f Filter) ([]ValueBand, error)
		GetAverageByCategory(ctx context.Context, f Filter) ([]CategoryAverage, error)
		GetTopModalities(ctx context.Context, f Filter, limit int) ([]ModalityTotal, error)
		GetCategoryDistribution(ctx context.Context, f Filter) ([]CategoryTotal, error)
		GetTopStates(ctx context.Context, f Filter, limit int) ([]StateTotal, error)
		GetTopMunicipalities(ctx context.Context, f Filter, limit int) ([]MunicipalityTotal, error)
		GetModalityAthletes(ctx context.Context, f Filter, limit int) ([]ModalityAthletes, error)
		GetStateDistribution(ctx context.Context, f Filter) ([]StateDistribution, error)
		GetSummaryBreakdown(ctx context.Context, f Filter, limit int) ([]SummaryRow, error)
	}

	Category interface {
		GetSummary(ctx context.Context, name string) ([]DimensionSummary, error)
	}

	Modality interface {
		GetSummary(ctx context.Context, name string) ([]DimensionSummary, error)
	}

	Region interface {
		GetStateSummary(ctx context.Context) ([]StateSummary, error)
		GetMunicipalitySummary(ctx context.Context, state string) ([]MunicipalitySummary, error)
	}

	Temporal interface {
		GetSeries(ctx context.Context, grouping TemporalGrouping) ([]PeriodSummary, error)
	}

	Athlete interface {
		Search(ctx context.Context, name string, limit int) ([]AthleteSummary, error)
		GetPayments(ctx context.Context, cpf string) ([]PaymentDetail, error)
	}

	Raw interface {
		Tables() []string
		Browse(ctx context.Context, table string, limit int) (*db.Table, error)
	}

	Ingest interface {
		Migrate(ctx context.Context) error
		UpsertCategory(ctx context.Context, name string) (int64, error)
		UpsertModality(ctx context.Context, name string) (int64, error)
		UpsertStatus(ctx context.Context, name string) (int64, error)
		UpsertNotice(ctx context.Context, name string) (int64, error)
		UpsertMunicipality(ctx context.Context, name, state string) (int64, error)
		UpsertAthlete(ctx context.Context, a *Athlete) error
		InsertPayment(ctx context.Context, p *Payment) error
	}
}

func NewStorage(g *db.Guardian) *Storage {
	return &Storage{
		Options:  &OptionsStore{db: g},
		Overview: &OverviewStore{db: g},
		Category: &CategoryStore{db: g},
		Modality: &ModalityStore{db: g},
		Region:   &RegionStore{db: g},
		Temporal: &TemporalStore{db: g},
		Athlete:  &AthleteStore{db: g},
		Raw:      &RawStore{db: g},
		Ingest:   &IngestStore{db: g},
	}
}
