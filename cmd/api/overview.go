package main

import (
	"net/http"

	"github.com/farxc/bolsa_atleta_wrapper/internal/response"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
)

type GetStatsResponse = response.APIResponse[store.Stats]
type GetValueBandsResponse = response.APIResponse[[]store.ValueBand]
type GetAverageByCategoryResponse = response.APIResponse[[]store.CategoryAverage]
type GetTopModalitiesResponse = response.APIResponse[[]store.ModalityTotal]
type GetCategoryDistributionResponse = response.APIResponse[[]store.CategoryTotal]
type GetTopStatesResponse = response.APIResponse[[]store.StateTotal]
type GetTopMunicipalitiesResponse = response.APIResponse[[]store.MunicipalityTotal]
type GetModalityAthletesResponse = response.APIResponse[[]store.ModalityAthletes]
type GetStateDistributionResponse = response.APIResponse[[]store.StateDistribution]
type GetSummaryBreakdownResponse = response.APIResponse[[]store.SummaryRow]

func (app *application) handleGetStats(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	data, err := app.store.Overview.GetStats(ctx, filter)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get overview stats: "+err.Error())
		return
	}

	response := &GetStatsResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved overview stats",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetValueBands(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	data, err := app.store.Overview.GetValueBands(ctx, filter)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get value bands: "+err.Error())
		return
	}

	response := &GetValueBandsResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved value bands",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetAverageByCategory(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	data, err := app.store.Overview.GetAverageByCategory(ctx, filter)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get average by category: "+err.Error())
		return
	}

	response := &GetAverageByCategoryResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved average value by category",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetTopModalities(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := parseLimit(r, "limit", app.config.topN)

	ctx := r.Context()
	data, err := app.store.Overview.GetTopModalities(ctx, filter, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get top modalities: "+err.Error())
		return
	}

	response := &GetTopModalitiesResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved top modalities",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetCategoryDistribution(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	data, err := app.store.Overview.GetCategoryDistribution(ctx, filter)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get category distribution: "+err.Error())
		return
	}

	response := &GetCategoryDistributionResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved category distribution",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetTopStates(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := parseLimit(r, "limit", app.config.topN)

	ctx := r.Context()
	data, err := app.store.Overview.GetTopStates(ctx, filter, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get top states: "+err.Error())
		return
	}

	response := &GetTopStatesResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved top states",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetTopMunicipalities(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := parseLimit(r, "limit", app.config.topN)

	ctx := r.Context()
	data, err := app.store.Overview.GetTopMunicipalities(ctx, filter, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get top municipalities: "+err.Error())
		return
	}

	response := &GetTopMunicipalitiesResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved top municipalities",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetModalityAthletes(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := parseLimit(r, "limit", app.config.topN)

	ctx := r.Context()
	data, err := app.store.Overview.GetModalityAthletes(ctx, filter, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get modalities by athletes: "+err.Error())
		return
	}

	response := &GetModalityAthletesResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved modalities by athlete count",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetStateDistribution(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	data, err := app.store.Overview.GetStateDistribution(ctx, filter)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get state distribution: "+err.Error())
		return
	}

	response := &GetStateDistributionResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved state distribution",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetSummaryBreakdown(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := parseLimit(r, "limit", 50)

	ctx := r.Context()
	data, err := app.store.Overview.GetSummaryBreakdown(ctx, filter, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get summary breakdown: "+err.Error())
		return
	}

	response := &GetSummaryBreakdownResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved summary breakdown",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
