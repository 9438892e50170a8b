package main

import (
	"net/http"

	"github.com/farxc/bolsa_atleta_wrapper/internal/response"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
)

type GetTemporalSeriesResponse = response.APIResponse[[]store.PeriodSummary]

func (app *application) handleGetTemporalSeries(w http.ResponseWriter, r *http.Request) {
	grouping := store.TemporalGrouping(r.URL.Query().Get("group_by"))
	if grouping == "" {
		grouping = store.GroupByYearMonth
	}
	switch grouping {
	case store.GroupByYear, store.GroupByMonth, store.GroupByYearMonth:
	default:
		writeJSONError(w, http.StatusBadRequest, "group_by must be year, month or year-month")
		return
	}

	ctx := r.Context()
	data, err := app.store.Temporal.GetSeries(ctx, grouping)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get temporal series: "+err.Error())
		return
	}

	response := &GetTemporalSeriesResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved temporal series",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
