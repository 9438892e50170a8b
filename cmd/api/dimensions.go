package main

import (
	"net/http"

	"github.com/farxc/bolsa_atleta_wrapper/internal/response"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
)

type GetDimensionSummaryResponse = response.APIResponse[[]store.DimensionSummary]

func (app *application) handleGetCategorySummary(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	ctx := r.Context()
	data, err := app.store.Category.GetSummary(ctx, name)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get category summary: "+err.Error())
		return
	}

	response := &GetDimensionSummaryResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved category summary",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetModalitySummary(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	ctx := r.Context()
	data, err := app.store.Modality.GetSummary(ctx, name)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get modality summary: "+err.Error())
		return
	}

	response := &GetDimensionSummaryResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved modality summary",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
