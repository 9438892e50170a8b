package main

import (
	"log"
	"net/http"
	"time"

	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type application struct {
	config config
	store  store.Storage
}

type config struct {
	addr   string
	dbPath string
	topN   int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/filters/options", app.handleGetFilterOptions)
		r.Route("/overview", func(r chi.Router) {
			r.Get("/stats", app.handleGetStats)
			r.Get("/value-bands", app.handleGetValueBands)
			r.Get("/average-by-category", app.handleGetAverageByCategory)
			r.Get("/top-modalities", app.handleGetTopModalities)
			r.Get("/category-distribution", app.handleGetCategoryDistribution)
			r.Get("/top-states", app.handleGetTopStates)
			r.Get("/top-municipalities", app.handleGetTopMunicipalities)
			r.Get("/modality-athletes", app.handleGetModalityAthletes)
			r.Get("/state-distribution", app.handleGetStateDistribution)
			r.Get("/summary", app.handleGetSummaryBreakdown)
		})
		r.Get("/categories/summary", app.handleGetCategorySummary)
		r.Get("/modalities/summary", app.handleGetModalitySummary)
		r.Route("/regions", func(r chi.Router) {
			r.Get("/states", app.handleGetStateSummary)
			r.Get("/municipalities", app.handleGetMunicipalitySummary)
		})
		r.Get("/temporal", app.handleGetTemporalSeries)
		r.Route("/athletes", func(r chi.Router) {
			r.Get("/search", app.handleSearchAthletes)
			r.Get("/{cpf}/payments", app.handleGetAthletePayments)
		})
		r.Route("/raw", func(r chi.Router) {
			r.Get("/tables", app.handleListTables)
			r.Get("/{table}", app.handleBrowseTable)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	log.Printf("Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}
