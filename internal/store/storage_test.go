package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedPayment struct {
	cpf          string
	name         string
	municipality string
	state        string
	category     string
	modality     string
	value        float64
	date         string
}

var seedPayments = []seedPayment{
	{"111.111.111-11", "Ana Souza", "São Paulo", "SP", "Pódio", "Atletismo", 1000, "2020-01-10"},
	{"111.111.111-11", "Ana Souza", "São Paulo", "SP", "Pódio", "Atletismo", 2000, "2020-02-10"},
	{"222.222.222-22", "Bruno D'Almeida", "Campinas", "SP", "Pódio", "Judô", 3000, "2020-03-10"},
	{"333.333.333-33", "Carla Lima", "Rio de Janeiro", "RJ", "Internacional", "Natação", 1500, "2020-04-10"},
	{"333.333.333-33", "Carla Lima", "Rio de Janeiro", "RJ", "Internacional", "Natação", 1500, "2020-05-10"},
	{"444.444.444-44", "Diego Santos", "Belo Horizonte", "MG", "Nacional", "Atletismo", 800, "2021-01-15"},
	{"555.555.555-55", "Elisa Costa", "Curitiba", "PR", "Estudantil", "Ginástica", 370, ""},
	{"666.666.666-66", "Fábio Rocha", "São Paulo", "SP", "Internacional", "Judô", 5200, "2021-06-20"},
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	g, err := db.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })

	storage := NewStorage(g)
	ctx := context.Background()
	require.NoError(t, storage.Ingest.Migrate(ctx))

	for _, sp := range seedPayments {
		categoryID, err := storage.Ingest.UpsertCategory(ctx, sp.category)
		require.NoError(t, err)
		modalityID, err := storage.Ingest.UpsertModality(ctx, sp.modality)
		require.NoError(t, err)
		statusID, err := storage.Ingest.UpsertStatus(ctx, "Pago")
		require.NoError(t, err)
		noticeID, err := storage.Ingest.UpsertNotice(ctx, "Edital 2020")
		require.NoError(t, err)
		municipalityID, err := storage.Ingest.UpsertMunicipality(ctx, sp.municipality, sp.state)
		require.NoError(t, err)

		require.NoError(t, storage.Ingest.UpsertAthlete(ctx, &Athlete{
			CPF:            sp.cpf,
			Name:           sp.name,
			MunicipalityID: municipalityID,
		}))
		require.NoError(t, storage.Ingest.InsertPayment(ctx, &Payment{
			PaidValue:     sp.value,
			PaymentDate:   sp.date,
			ReferenceDate: sp.date,
			CategoryID:    categoryID,
			ModalityID:    modalityID,
			StatusID:      statusID,
			NoticeID:      noticeID,
			AthleteCPF:    sp.cpf,
		}))
	}

	return storage
}

func TestGetStatsUnfiltered(t *testing.T) {
	storage := newTestStorage(t)

	stats, err := storage.Overview.GetStats(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Equal(t, 8, stats.TotalPayments)
	assert.Equal(t, 6, stats.TotalAthletes)
	assert.InDelta(t, 15370.0, stats.TotalValue, 0.01)
}

func TestGetStatsFiltered(t *testing.T) {
	storage := newTestStorage(t)

	f := Filter{Categories: []string{"Pódio"}, States: []string{"SP"}}
	stats, err := storage.Overview.GetStats(context.Background(), f)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPayments)
	assert.Equal(t, 2, stats.TotalAthletes)
	assert.InDelta(t, 6000.0, stats.TotalValue, 0.01)
	assert.InDelta(t, 2000.0, stats.AverageValue, 0.01)
}

func TestGetStatsEmptyMatch(t *testing.T) {
	storage := newTestStorage(t)

	f := Filter{Categories: []string{"does-not-exist"}}
	stats, err := storage.Overview.GetStats(context.Background(), f)

	require.NoError(t, err)
	assert.Zero(t, stats.TotalPayments)
	assert.Zero(t, stats.TotalValue)
}

func TestGetValueBands(t *testing.T) {
	storage := newTestStorage(t)

	bands, err := storage.Overview.GetValueBands(context.Background(), Filter{})

	require.NoError(t, err)
	require.NotEmpty(t, bands)
	// Bands must come back ordered by their lower bound.
	assert.Equal(t, "Até R$ 1.000", bands[0].Band)
	assert.Equal(t, "Acima de R$ 5.000", bands[len(bands)-1].Band)
}

func TestGetTopModalitiesLimit(t *testing.T) {
	storage := newTestStorage(t)

	top, err := storage.Overview.GetTopModalities(context.Background(), Filter{}, 2)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.GreaterOrEqual(t, top[0].TotalValue, top[1].TotalValue)
}

func TestCategorySummaryAll(t *testing.T) {
	storage := newTestStorage(t)

	summary, err := storage.Category.GetSummary(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, summary, 4)
	assert.GreaterOrEqual(t, summary[0].TotalValue, summary[1].TotalValue)
}

func TestCategorySummarySingle(t *testing.T) {
	storage := newTestStorage(t)

	summary, err := storage.Category.GetSummary(context.Background(), "Pódio")

	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "Pódio", summary[0].Name)
	assert.Equal(t, 3, summary[0].PaymentsCount)
	assert.Equal(t, 2, summary[0].AthletesCount)
	assert.InDelta(t, 6000.0, summary[0].TotalValue, 0.01)
}

func TestRegionStateSummary(t *testing.T) {
	storage := newTestStorage(t)

	states, err := storage.Region.GetStateSummary(context.Background())

	require.NoError(t, err)
	require.Len(t, states, 4)
	assert.Equal(t, "SP", states[0].State)
	assert.Equal(t, 2, states[0].MunicipalitiesCount)
	assert.Equal(t, 3, states[0].AthletesCount)
}

func TestRegionMunicipalitySummary(t *testing.T) {
	storage := newTestStorage(t)

	cities, err := storage.Region.GetMunicipalitySummary(context.Background(), "SP")

	require.NoError(t, err)
	require.Len(t, cities, 2)
	for _, c := range cities {
		assert.Equal(t, "SP", c.State)
	}
}

func TestTemporalSeriesExcludesNullDates(t *testing.T) {
	storage := newTestStorage(t)

	series, err := storage.Temporal.GetSeries(context.Background(), GroupByYear)

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2020", series[0].Period)
	assert.Equal(t, 5, series[0].PaymentsCount)
	assert.Equal(t, "2021", series[1].Period)
	assert.Equal(t, 2, series[1].PaymentsCount)
}

func TestTemporalSeriesUnknownGrouping(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.Temporal.GetSeries(context.Background(), TemporalGrouping("weekly"))

	assert.Error(t, err)
}

func TestAthleteSearch(t *testing.T) {
	storage := newTestStorage(t)

	found, err := storage.Athlete.Search(context.Background(), "ana", 100)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ana Souza", found[0].Name)
	assert.Equal(t, 2, found[0].PaymentsCount)
	assert.InDelta(t, 3000.0, found[0].TotalValue, 0.01)
	assert.Equal(t, "2020-01-10", found[0].FirstPayment)
	assert.Equal(t, "2020-02-10", found[0].LastPayment)
}

func TestAthleteSearchQuoteSafe(t *testing.T) {
	storage := newTestStorage(t)

	found, err := storage.Athlete.Search(context.Background(), "D'Almeida", 100)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Bruno D'Almeida", found[0].Name)
}

func TestAthletePayments(t *testing.T) {
	storage := newTestStorage(t)

	payments, err := storage.Athlete.GetPayments(context.Background(), "111.111.111-11")

	require.NoError(t, err)
	require.Len(t, payments, 2)
	// Newest first.
	assert.Equal(t, "2020-02-10", payments[0].PaymentDate)
	assert.Equal(t, "Pódio", payments[0].Category)
	assert.Equal(t, "Pago", payments[0].Status)
	assert.Equal(t, "Edital 2020", payments[0].Notice)
}

func TestRawBrowse(t *testing.T) {
	storage := newTestStorage(t)

	table, err := storage.Raw.Browse(context.Background(), "categories", 10)

	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Contains(t, table.Columns, "name")
	assert.Len(t, table.Rows, 4)
}

func TestRawBrowseRejectsUnknownTable(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.Raw.Browse(context.Background(), "sqlite_master", 10)

	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestRawTables(t *testing.T) {
	storage := newTestStorage(t)

	tables := storage.Raw.Tables()

	assert.Contains(t, tables, "payments")
	assert.Contains(t, tables, "athletes")
	assert.NotContains(t, tables, "sqlite_master")
}

func TestFilterOptions(t *testing.T) {
	storage := newTestStorage(t)

	opts, err := storage.Options.GetFilterOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Estudantil", "Internacional", "Nacional", "Pódio"}, opts.Categories)
	assert.Equal(t, []string{"Atletismo", "Ginástica", "Judô", "Natação"}, opts.Modalities)
	assert.Equal(t, []string{"MG", "PR", "RJ", "SP"}, opts.States)
	assert.Equal(t, "2020-01-10", opts.MinDate)
	assert.Equal(t, "2021-06-20", opts.MaxDate)
}

func TestUpsertDimensionIsIdempotent(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	first, err := storage.Ingest.UpsertCategory(ctx, "Pódio")
	require.NoError(t, err)
	second, err := storage.Ingest.UpsertCategory(ctx, "Pódio")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
