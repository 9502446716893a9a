package handlers

import (
	"net/http"

	"gogarvis-backend/application/services"
	"gogarvis-backend/pkg/common"
	apperrors "gogarvis-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContentHandler serves extracted document content
type ContentHandler struct {
	content *services.ContentService
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *services.ContentService, errors *apperrors.ErrorHandler, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		content: content,
		errors:  errors,
		logger:  logger,
	}
}

// GetDocumentContent handles GET /documents/{filename}. The response carries
// the document metadata plus whatever text the resolver produced, which may
// be a placeholder or a diagnostic string when extraction degraded.
func (h *ContentHandler) GetDocumentContent(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	doc, content, err := h.content.ResolveContent(r.Context(), filename)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"filename":    doc.Filename,
		"title":       doc.Title,
		"category":    doc.Category,
		"description": doc.Description,
		"content":     content,
	})
}
