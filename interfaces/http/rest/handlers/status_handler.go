package handlers

import (
	"net/http"

	"gogarvis-backend/application/services"
	"gogarvis-backend/pkg/common"
	apperrors "gogarvis-backend/pkg/errors"
	"gogarvis-backend/pkg/utils"

	"go.uber.org/zap"
)

// maxStatusBodyBytes caps the status check request body size
const maxStatusBodyBytes = 4 * 1024

// StatusHandler handles client status check-ins
type StatusHandler struct {
	status *services.StatusService
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(status *services.StatusService, errors *apperrors.ErrorHandler, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		status: status,
		errors: errors,
		logger: logger,
	}
}

// CreateStatusRequest represents the request body for a status check-in
type CreateStatusRequest struct {
	ClientName string `json:"client_name" validate:"required,min=1,max=200"`
}

// CreateStatus handles POST /status
func (h *StatusHandler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	var req CreateStatusRequest
	if err := common.ParseJSONBody(w, r, &req, maxStatusBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	check, err := h.status.Create(r.Context(), req.ClientName)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, check)
}

// ListStatus handles GET /status
func (h *StatusHandler) ListStatus(w http.ResponseWriter, r *http.Request) {
	checks, err := h.status.List(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, checks)
}
