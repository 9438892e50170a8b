package main

import (
	"errors"
	"net/http"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
	"github.com/farxc/bolsa_atleta_wrapper/internal/response"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
	"github.com/go-chi/chi/v5"
)

type ListTablesResponse = response.APIResponse[[]string]
type BrowseTableResponse = response.APIResponse[*db.Table]

func (app *application) handleListTables(w http.ResponseWriter, r *http.Request) {
	response := &ListTablesResponse{
		Success: true,
		Data:    app.store.Raw.Tables(),
		Message: "Successfully listed browsable tables",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleBrowseTable(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	limit := parseLimit(r, "limit", 100)

	ctx := r.Context()
	data, err := app.store.Raw.Browse(ctx, table, limit)
	if err != nil {
		if errors.Is(err, store.ErrUnknownTable) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to browse table: "+err.Error())
		return
	}

	response := &BrowseTableResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved table rows",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
