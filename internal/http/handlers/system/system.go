// Package system contains the handlers that are not tied to a
// resource: the welcome route and the health check.
package system

import (
	"log/slog"
	"net/http"

	"student-management-api/internal/storage"
	"student-management-api/internal/utils/response"
)

// MsgWelcome is the fixed body of the root route.
const MsgWelcome = "Student Management API with SQLite Database"

// Root handles GET /. It touches no state.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK,
			map[string]string{"message": MsgWelcome})
	}
}

// Health handles GET /health. It pings the store and reports 503 when
// the database is unreachable.
func Health(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(); err != nil {
			slog.Error("health check failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable,
				response.GeneralError(err))
			return
		}
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
