package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SpinDeniedResponse is returned with 429 when the rate limiter blocks a spin
type SpinDeniedResponse struct {
	Error string          `json:"error"`
	Kind  domain.SpinKind `json:"kind"`
	// RetryAfterSeconds counts down to the end of the current cooldown epoch for either kind
	RetryAfterSeconds int64 `json:"retry_after_seconds,omitempty"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgRouletteNotFoundError = "Roulette not found"
	ErrMsgAwardNotFoundError    = "Award not found"
	ErrMsgSlugTakenError        = "A roulette with that name already exists"
	ErrMsgRegularSpinDenied     = "Regular spin not available yet"
	ErrMsgExtraSpinDenied       = "No extra spins left for now"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and user-facing messages.
// Invalid input is checked first: an unknown roulette on validate/spin is a bad request, not a 404.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrRegularSpinDenied):
		return http.StatusTooManyRequests, ErrMsgRegularSpinDenied
	case errors.Is(err, domain.ErrExtraSpinDenied):
		return http.StatusTooManyRequests, ErrMsgExtraSpinDenied
	case errors.Is(err, domain.ErrRouletteNotFound):
		return http.StatusNotFound, ErrMsgRouletteNotFoundError
	case errors.Is(err, domain.ErrAwardNotFound):
		return http.StatusNotFound, ErrMsgAwardNotFoundError
	case errors.Is(err, domain.ErrSlugTaken):
		return http.StatusConflict, ErrMsgSlugTakenError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped response.
// Spin denials carry the spin kind and, while an epoch is running, a Retry-After header.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)

	var denied *domain.SpinDeniedError
	if errors.As(err, &denied) {
		log.Info(opName+" denied", "kind", denied.Kind, "remaining", denied.Remaining)
		resp := SpinDeniedResponse{Error: msg, Kind: denied.Kind}
		if denied.Remaining > 0 {
			resp.RetryAfterSeconds = int64(math.Ceil(denied.Remaining.Seconds()))
			w.Header().Set("Retry-After", strconv.FormatInt(resp.RetryAfterSeconds, 10))
		}
		respondJSON(w, http.StatusTooManyRequests, resp)
		return
	}

	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "status", status, "error", err)
	}
	respondError(w, status, msg)
}
