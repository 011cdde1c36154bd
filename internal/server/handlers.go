package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/agbru/fibduality/internal/errors"
)

// handleHealth responds to health check requests with a 200 OK status and
// a JSON payload indicating the service is healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// handleMetrics serves the Prometheus metrics endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleMultiply processes analog multiplication requests. It parses the
// query parameters 'a', 'b', and optional 'voltage', runs the
// simulation, and returns the result record in JSON format.
func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		s.writeErrorResponse(w, http.StatusBadRequest, "Missing required parameters 'a' and 'b'")
		return
	}

	voltage := 1.0
	if raw := r.URL.Query().Get("voltage"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeErrorResponse(w, http.StatusBadRequest, "Invalid 'voltage' parameter")
			return
		}
		voltage = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.service.Multiply(ctx, a, b, voltage)
	if err != nil {
		s.writeSimulationError(w, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, MultiplyResponse{
		A:        a,
		B:        b,
		Voltage:  voltage,
		Result:   result,
		Duration: time.Since(start).String(),
	})
}

// handleGCD processes analog GCD requests.
func (s *Server) handleGCD(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		s.writeErrorResponse(w, http.StatusBadRequest, "Missing required parameters 'a' and 'b'")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.service.GCD(ctx, a, b)
	if err != nil {
		s.writeSimulationError(w, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, GCDResponse{
		A:        a,
		B:        b,
		Result:   result,
		Duration: time.Since(start).String(),
	})
}

// writeSimulationError maps a simulation error to the appropriate HTTP
// status: invalid operands are the client's fault, timeouts map to 503,
// anything else is a 500.
func (s *Server) writeSimulationError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsInvalidInput(err):
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case apperrors.IsContextError(err):
		s.writeErrorResponse(w, http.StatusServiceUnavailable, "Request timed out")
	default:
		s.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

// writeJSONResponse writes a JSON payload with the given status code.
func (s *Server) writeJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// writeErrorResponse writes a standardized JSON error payload.
func (s *Server) writeErrorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSONResponse(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
