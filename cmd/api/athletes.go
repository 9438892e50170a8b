package main

import (
	"net/http"

	"github.com/farxc/bolsa_atleta_wrapper/internal/response"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
	"github.com/go-chi/chi/v5"
)

type SearchAthletesResponse = response.APIResponse[[]store.AthleteSummary]
type GetAthletePaymentsResponse = response.APIResponse[[]store.PaymentDetail]

func (app *application) handleSearchAthletes(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSONError(w, http.StatusBadRequest, "name parameter is required")
		return
	}
	limit := parseLimit(r, "limit", 100)

	ctx := r.Context()
	data, err := app.store.Athlete.Search(ctx, name, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to search athletes: "+err.Error())
		return
	}

	response := &SearchAthletesResponse{
		Success: true,
		Data:    data,
		Message: "Successfully searched athletes",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetAthletePayments(w http.ResponseWriter, r *http.Request) {
	cpf := chi.URLParam(r, "cpf")

	ctx := r.Context()
	data, err := app.store.Athlete.GetPayments(ctx, cpf)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get athlete payments: "+err.Error())
		return
	}

	response := &GetAthletePaymentsResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved athlete payments",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
