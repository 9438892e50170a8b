package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Record is one raw CSV row, field names still in the source's vocabulary.
type Record struct {
	CPF           string
	Name          string
	Municipality  string
	State         string
	Modality      string
	Category      string
	Status        string
	Notice        string
	PaymentDate   string
	ReferenceDate string
	PaidValue     string
}

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

func getStr(col string, rowIdx int, df *dataframe.DataFrame) string {
	if df == nil {
		return ""
	}

	if containsString(df.Names(), col) {
		return strings.TrimSpace(df.Col(col).Elem(rowIdx).String())
	}
	return ""
}

func DfRowToRecord(df dataframe.DataFrame, rowIdx int) Record {
	return Record{
		CPF:           getStr("CPF", rowIdx, &df),
		Name:          getStr("Nome", rowIdx, &df),
		Municipality:  getStr("Município", rowIdx, &df),
		State:         getStr("UF", rowIdx, &df),
		Modality:      getStr("Modalidade", rowIdx, &df),
		Category:      getStr("Categoria", rowIdx, &df),
		Status:        getStr("Situação", rowIdx, &df),
		Notice:        getStr("Edital", rowIdx, &df),
		PaymentDate:   getStr("Data Pagamento", rowIdx, &df),
		ReferenceDate: getStr("Data Referência", rowIdx, &df),
		PaidValue:     getStr("Valor Pago", rowIdx, &df),
	}
}

// ParseDate normalizes a dd/mm/yyyy source date to ISO yyyy-mm-dd. Unparseable
// dates come back empty and are stored as NULL.
func ParseDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	// Try dd/mm/yyyy format first
	t, err := time.Parse("02/01/2006", dateStr)
	if err == nil {
		return t.Format("2006-01-02")
	}
	// Fallback to yyyy-mm-dd just in case
	t, err = time.Parse("2006-01-02", dateStr)
	if err == nil {
		return t.Format("2006-01-02")
	}
	return ""
}

func ParseFloat(valStr string) float64 {
	if valStr == "" {
		return 0.0
	}
	// Remove thousands separator (.) and replace decimal separator (,) with (.)
	cleanStr := strings.ReplaceAll(valStr, ".", "")
	cleanStr = strings.ReplaceAll(cleanStr, ",", ".")
	val, err := strconv.ParseFloat(cleanStr, 64)
	if err != nil {
		return 0.0
	}
	return val
}
