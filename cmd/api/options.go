package main

import (
	"net/http"

	"github.com/farxc/bolsa_atleta_wrapper/internal/response"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
)

type GetFilterOptionsResponse = response.APIResponse[store.FilterOptions]

func (app *application) handleGetFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := app.store.Options.GetFilterOptions(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to load filter options: "+err.Error())
		return
	}

	response := &GetFilterOptionsResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved filter options",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
