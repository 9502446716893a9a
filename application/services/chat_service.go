package services

import (
	"context"
	"sync"
	"time"

	"gogarvis-backend/application/ports"
	"gogarvis-backend/domain/audit"
	"gogarvis-backend/domain/chat"
	apperrors "gogarvis-backend/pkg/errors"
	"gogarvis-backend/pkg/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// session is the in-memory binding between a session id and its external
// conversation context. Its mutex serializes external calls so at most one
// delegation per session id is in flight; a second concurrent Send on the
// same id queues behind the first.
type session struct {
	mu   sync.Mutex
	conv ports.Conversation
}

// ChatService owns the session-id to binding map and routes messages through
// the external reasoning service. The map is never touched outside its mutex,
// so a clear racing a create on the same key cannot orphan or double-register
// a binding.
type ChatService struct {
	mu       sync.Mutex
	sessions map[string]*session

	factory ports.ConversationFactory
	history ports.ChatHistoryRepository
	auditor ports.AuditRepository
	events  ports.EventPublisher
	tracer  *observability.Tracer
	metrics *observability.Metrics
	timeout time.Duration
	logger  *zap.Logger
}

// NewChatService creates a chat service
func NewChatService(
	factory ports.ConversationFactory,
	history ports.ChatHistoryRepository,
	auditor ports.AuditRepository,
	events ports.EventPublisher,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	timeout time.Duration,
	logger *zap.Logger,
) *ChatService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChatService{
		sessions: make(map[string]*session),
		factory:  factory,
		history:  history,
		auditor:  auditor,
		events:   events,
		tracer:   tracer,
		metrics:  metrics,
		timeout:  timeout,
		logger:   logger,
	}
}

// Send delegates a user message to the session's conversation context,
// creating the session when the id is unknown or absent. On success the user
// message and the reply are persisted in that order, each with its own
// timestamp. Delivery failures and timeouts surface as CHAT_DELIVERY errors
// and leave the binding intact, so a retry on the same id may succeed.
func (s *ChatService) Send(ctx context.Context, sessionID, message string) (string, string, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	sess := s.getOrRegister(sessionID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.conv == nil {
		conv, err := s.factory.NewConversation(ctx, sessionID)
		if err != nil {
			return "", sessionID, err
		}
		sess.conv = conv
	}

	delegateCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	var reply string
	err := s.tracer.TraceFunction(delegateCtx, "ChatDelegate", func(ctx context.Context) error {
		var e error
		reply, e = sess.conv.Send(ctx, message)
		return e
	})
	if err != nil {
		s.logger.Error("Chat delegation failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		s.metrics.IncrementCounter(ctx, "ChatDeliveryFailure")
		return "", sessionID, apperrors.NewChatDeliveryError("reasoning service unavailable").WithCause(err)
	}
	s.metrics.RecordDuration(ctx, "ChatDelegationLatency", time.Since(start))

	// Persist the exchange: user message first, then the reply. A persistence
	// failure after a successful delegation is surfaced, but the binding
	// stays usable.
	userMsg := chat.NewMessage(sessionID, chat.RoleUser, message)
	if err := s.history.Append(ctx, userMsg); err != nil {
		return "", sessionID, apperrors.NewDatabaseError("failed to persist chat message", err)
	}
	replyMsg := chat.NewMessage(sessionID, chat.RoleAssistant, reply)
	if err := s.history.Append(ctx, replyMsg); err != nil {
		return "", sessionID, apperrors.NewDatabaseError("failed to persist chat reply", err)
	}

	s.recordAudit(ctx, audit.NewEntry(audit.ActionChatExchange, sessionID, ""))

	return reply, sessionID, nil
}

// History returns all persisted messages for the session ascending by
// timestamp. A session that never existed yields an empty sequence.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]chat.Message, error) {
	return s.history.ListBySession(ctx, sessionID)
}

// Clear removes the in-memory binding if present and deletes the persisted
// history. It is idempotent: clearing an unknown session id is not an error.
// When a send is in flight on the session, Clear waits it out before deleting
// history so the delete is not interleaved with the exchange being persisted.
func (s *ChatService) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if ok {
		sess.mu.Lock()
		sess.conv = nil
		sess.mu.Unlock()
	}

	if err := s.history.DeleteSession(ctx, sessionID); err != nil {
		return apperrors.NewDatabaseError("failed to delete chat history", err)
	}

	s.recordAudit(ctx, audit.NewEntry(audit.ActionSessionClear, sessionID, ""))
	return nil
}

// getOrRegister returns the session binding holder for the id, registering an
// empty one when the id is new. Registration happens under the map mutex; the
// conversation itself is created later under the session mutex so slow
// provider calls never block unrelated sessions.
func (s *ChatService) getOrRegister(sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	return sess
}

// recordAudit persists and publishes an audit entry best effort
func (s *ChatService) recordAudit(ctx context.Context, entry audit.Entry) {
	if s.auditor != nil {
		if err := s.auditor.Append(ctx, entry); err != nil {
			s.logger.Warn("Failed to persist audit entry",
				zap.String("action", string(entry.Action)),
				zap.Error(err),
			)
		}
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, entry); err != nil {
			s.logger.Warn("Failed to publish audit event",
				zap.String("action", string(entry.Action)),
				zap.Error(err),
			)
		}
	}
}
