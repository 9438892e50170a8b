package ingest

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	assert.Equal(t, "2020-03-15", ParseDate("15/03/2020"))
	assert.Equal(t, "2020-03-15", ParseDate("2020-03-15"))
	assert.Equal(t, "", ParseDate(""))
	assert.Equal(t, "", ParseDate("not a date"))
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 1234.56, ParseFloat("1.234,56"))
	assert.Equal(t, 370.0, ParseFloat("370,00"))
	assert.Equal(t, 0.0, ParseFloat(""))
	assert.Equal(t, 0.0, ParseFloat("garbage"))
}

func TestDfRowToRecord(t *testing.T) {
	csv := strings.Join([]string{
		"CPF;Nome;Município;UF;Modalidade;Categoria;Situação;Edital;Data Pagamento;Data Referência;Valor Pago",
		"111.111.111-11;Ana Souza;São Paulo;SP;Atletismo;Pódio;Pago;Edital 2020;10/01/2020;01/01/2020;1.000,00",
	}, "\n")

	df := dataframe.ReadCSV(strings.NewReader(csv),
		dataframe.WithDelimiter(';'),
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String))
	require.NoError(t, df.Error())
	require.Equal(t, 1, df.Nrow())

	rec := DfRowToRecord(df, 0)

	assert.Equal(t, "111.111.111-11", rec.CPF)
	assert.Equal(t, "Ana Souza", rec.Name)
	assert.Equal(t, "São Paulo", rec.Municipality)
	assert.Equal(t, "SP", rec.State)
	assert.Equal(t, "Atletismo", rec.Modality)
	assert.Equal(t, "Pódio", rec.Category)
	assert.Equal(t, "Pago", rec.Status)
	assert.Equal(t, "Edital 2020", rec.Notice)
	assert.Equal(t, "10/01/2020", rec.PaymentDate)
	assert.Equal(t, "1.000,00", rec.PaidValue)
}

func TestDfRowToRecordMissingColumns(t *testing.T) {
	csv := "CPF;Nome\n111;Ana"

	df := dataframe.ReadCSV(strings.NewReader(csv),
		dataframe.WithDelimiter(';'),
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String))
	require.NoError(t, df.Error())

	rec := DfRowToRecord(df, 0)

	assert.Equal(t, "111", rec.CPF)
	assert.Empty(t, rec.Modality)
	assert.Empty(t, rec.PaidValue)
}
