package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/saviobatista/svc-discovery/internal/discovery"
)

const internalErrorMessage = "internal server error"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.flights.Healthy(r.Context()) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFlights(demo bool) http.HandlerFunc {
	query := s.flights.Standard
	if demo {
		query = s.flights.Demo
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.stats.IncrementTotalRequests()

		q := r.URL.Query()
		if !q.Has("view") {
			s.stats.IncrementInvalidRequests()
			writeError(w, http.StatusBadRequest, "view is required")
			return
		}

		raw := strings.TrimSpace(q.Get("recent_positions_duration"))
		if raw == "" {
			s.stats.IncrementInvalidRequests()
			writeError(w, http.StatusBadRequest, "recent_positions_duration is required")
			return
		}
		duration, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.stats.IncrementInvalidRequests()
			writeError(w, http.StatusBadRequest, "recent_positions_duration must be a number")
			return
		}

		resp, err := query(r.Context(), q.Get("view"), duration)
		if err != nil {
			status, message := errorStatus(err)
			if status == http.StatusInternalServerError {
				s.logger.Error("flight query failed",
					"error", err,
					"request_id", RequestID(r.Context()),
				)
			}
			writeError(w, status, message)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// errorStatus maps a service error to an HTTP status and caller-facing message
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, discovery.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, discovery.ErrAreaTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
