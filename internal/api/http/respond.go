package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/logger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps known service errors onto HTTP statuses; anything
// unrecognized is a 500 with the detail kept out of the response body.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAccountSuspended):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrPropertyNotVacant),
		errors.Is(err, service.ErrPropertyOccupied),
		errors.Is(err, service.ErrPaymentNotPending),
		errors.Is(err, service.ErrRequestNotOpen),
		errors.Is(err, service.ErrRequestNotInProgress),
		errors.Is(err, service.ErrNotAnAgent):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAmountNotPositive):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
