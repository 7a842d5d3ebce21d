package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/catmap/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"message": message})
}

// RespondDomainError maps a service error to its status/message pair.
// Anything that is not a models.AppError surfaces as a plain 500.
func (h *BaseHandler) RespondDomainError(w http.ResponseWriter, err error) {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		h.RespondError(w, appErr.Status, appErr.Message)
		return
	}
	h.Logger.Error("unexpected error", zap.Error(err))
	h.RespondError(w, http.StatusInternalServerError, "Internal server error")
}

// DataResponse wraps a mutation result with a confirmation message
type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
