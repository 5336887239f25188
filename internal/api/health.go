package api

import (
	"database/sql"
	"net/http"

	"inventory/internal/store"
)

// HealthHandler reports whether the database is reachable.
type HealthHandler struct {
	DB *sql.DB
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := store.Ping(r.Context(), h.DB); err != nil {
		jsonErrorDetails(w, http.StatusServiceUnavailable, "database is not reachable", map[string]string{"reason": err.Error()})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
