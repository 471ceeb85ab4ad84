package handler

import (
	"net/http"

	"github.com/teamsynchq/teamsync/internal/api/response"
	"github.com/teamsynchq/teamsync/internal/repository/postgres"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including database connectivity
func ReadyCheck(db *postgres.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, response.ErrorBody{
				Code:    "NOT_READY",
				Message: "database not ready",
			})
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}
