package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gogarvis-backend/application/ports"
	"gogarvis-backend/application/services"
	"gogarvis-backend/domain/audit"
	"gogarvis-backend/domain/chat"
	apperrors "gogarvis-backend/pkg/errors"
	"gogarvis-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoConversation struct{}

func (echoConversation) Send(ctx context.Context, message string) (string, error) {
	return "echo: " + message, nil
}

type echoFactory struct{}

func (echoFactory) NewConversation(ctx context.Context, sessionID string) (ports.Conversation, error) {
	return echoConversation{}, nil
}

type mapHistory struct {
	messages map[string][]chat.Message
}

func (h *mapHistory) Append(ctx context.Context, msg chat.Message) error {
	h.messages[msg.SessionID] = append(h.messages[msg.SessionID], msg)
	return nil
}

func (h *mapHistory) ListBySession(ctx context.Context, sessionID string) ([]chat.Message, error) {
	return h.messages[sessionID], nil
}

func (h *mapHistory) DeleteSession(ctx context.Context, sessionID string) error {
	delete(h.messages, sessionID)
	return nil
}

type noopAudit struct{}

func (noopAudit) Append(ctx context.Context, entry audit.Entry) error { return nil }
func (noopAudit) ListRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	return nil, nil
}

func newChatRouter() http.Handler {
	logger := zap.NewNop()
	svc := services.NewChatService(
		echoFactory{},
		&mapHistory{messages: make(map[string][]chat.Message)},
		noopAudit{},
		nil,
		observability.NewTracer("test", false),
		nil,
		time.Second,
		logger,
	)
	h := NewChatHandler(svc, apperrors.NewErrorHandler(logger), logger)

	r := chi.NewRouter()
	r.Post("/chat", h.SendMessage)
	r.Get("/chat/history/{sessionID}", h.GetHistory)
	r.Delete("/chat/session/{sessionID}", h.ClearSession)
	return r
}

func TestChatEndpoints(t *testing.T) {
	router := newChatRouter()

	t.Run("send mints a session id and echoes the reply", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hello"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "echo: hello", body["response"])
		assert.NotEmpty(t, body["session_id"])

		// history for that session holds both sides of the exchange
		histReq := httptest.NewRequest(http.MethodGet, "/chat/history/"+body["session_id"], nil)
		histRR := httptest.NewRecorder()
		router.ServeHTTP(histRR, histReq)
		require.Equal(t, http.StatusOK, histRR.Code)

		var hist struct {
			Messages  []chat.Message `json:"messages"`
			SessionID string         `json:"session_id"`
		}
		require.NoError(t, json.Unmarshal(histRR.Body.Bytes(), &hist))
		require.Len(t, hist.Messages, 2)
		assert.Equal(t, chat.RoleUser, hist.Messages[0].Role)
		assert.Equal(t, chat.RoleAssistant, hist.Messages[1].Role)
	})

	t.Run("missing message is a validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("clearing an unknown session succeeds", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/chat/session/never-used", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("history for an unknown session is empty not an error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/chat/history/never-used", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Empty(t, body["messages"])
	})
}
