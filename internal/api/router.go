package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &HealthHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}
	reportsHandler := &ReportsHandler{DB: db}

	mux.HandleFunc("GET /health", healthHandler.Check)

	mux.HandleFunc("POST /items", itemsHandler.Create)
	mux.HandleFunc("GET /items", itemsHandler.List)
	mux.HandleFunc("GET /items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /items/{id}", itemsHandler.Delete)

	mux.HandleFunc("GET /reports/summary", reportsHandler.Summary)

	return mux
}
