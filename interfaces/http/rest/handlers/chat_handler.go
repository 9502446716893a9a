package handlers

import (
	"net/http"

	"gogarvis-backend/application/services"
	"gogarvis-backend/pkg/common"
	apperrors "gogarvis-backend/pkg/errors"
	"gogarvis-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxChatBodyBytes caps the chat request body size
const maxChatBodyBytes = 64 * 1024

// ChatHandler handles conversation requests
type ChatHandler struct {
	chat   *services.ChatService
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *services.ChatService, errors *apperrors.ErrorHandler, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		errors: errors,
		logger: logger,
	}
}

// SendMessageRequest represents the request body for sending a chat message
type SendMessageRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=8000"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,max=128"`
}

// SendMessage handles POST /chat
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := common.ParseJSONBody(w, r, &req, maxChatBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	reply, sessionID, err := h.chat.Send(r.Context(), req.SessionID, req.Message)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"response":   reply,
		"session_id": sessionID,
	})
}

// GetHistory handles GET /chat/history/{sessionID}
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chat.History(r.Context(), sessionID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"messages":   messages,
		"session_id": sessionID,
	})
}

// ClearSession handles DELETE /chat/session/{sessionID}
func (h *ChatHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.chat.Clear(r.Context(), sessionID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Session cleared",
		"session_id": sessionID,
	})
}
