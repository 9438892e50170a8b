package main

import (
	"net/http"

	"github.com/farxc/bolsa_atleta_wrapper/internal/response"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
)

type GetStateSummaryResponse = response.APIResponse[[]store.StateSummary]
type GetMunicipalitySummaryResponse = response.APIResponse[[]store.MunicipalitySummary]

func (app *application) handleGetStateSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := app.store.Region.GetStateSummary(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get state summary: "+err.Error())
		return
	}

	response := &GetStateSummaryResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved state summary",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetMunicipalitySummary(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		writeJSONError(w, http.StatusBadRequest, "state parameter is required")
		return
	}

	ctx := r.Context()
	data, err := app.store.Region.GetMunicipalitySummary(ctx, state)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get municipality summary: "+err.Error())
		return
	}

	response := &GetMunicipalitySummaryResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved municipality summary",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
