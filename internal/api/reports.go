package api

import (
	"database/sql"
	"log"
	"net/http"
	"strings"

	"inventory/internal/report"
	"inventory/internal/store"
)

// ReportsHandler serves the derived summary report.
type ReportsHandler struct {
	DB *sql.DB
}

// Summary handles GET /reports/summary. The summary is computed fresh
// from a full scan on every request and rendered as JSON by default, or
// as CSV when format=csv is given.
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB, "")
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to build summary")
		return
	}

	summary := report.Build(items)

	if strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "inline; filename=summary.csv")
		w.WriteHeader(http.StatusOK)
		if err := summary.WriteCSV(w); err != nil {
			log.Printf("error writing csv summary: %v", err)
		}
		return
	}

	jsonResponse(w, http.StatusOK, summary)
}
