package handlers

import (
	"net/http"
	"strconv"

	"gogarvis-backend/application/ports"
	"gogarvis-backend/pkg/common"
	apperrors "gogarvis-backend/pkg/errors"

	"go.uber.org/zap"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

// AuditHandler serves the audit trail endpoint. The route is mounted behind
// the authentication middleware.
type AuditHandler struct {
	audits ports.AuditRepository
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(audits ports.AuditRepository, errors *apperrors.ErrorHandler, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		audits: audits,
		errors: errors,
		logger: logger,
	}
}

// ListAuditLog handles GET /audit-log
func (h *AuditHandler) ListAuditLog(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.errors.Handle(w, r, apperrors.NewValidationError("limit must be a positive integer"))
			return
		}
		if parsed > maxAuditLimit {
			parsed = maxAuditLimit
		}
		limit = parsed
	}

	entries, err := h.audits.ListRecent(r.Context(), limit)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"total":   len(entries),
	})
}
