// Package ports declares the collaborator interfaces the application services
// depend on. Infrastructure packages provide the implementations.
package ports

import (
	"context"

	"gogarvis-backend/domain/audit"
	"gogarvis-backend/domain/chat"
	"gogarvis-backend/domain/status"
)

// ChatHistoryRepository is the durable, per-session message log. It must
// support append, ordered-range read by session id, and delete-by-session.
type ChatHistoryRepository interface {
	Append(ctx context.Context, msg chat.Message) error
	// ListBySession returns all messages for the session ascending by
	// timestamp; an unknown session yields an empty slice, not an error.
	ListBySession(ctx context.Context, sessionID string) ([]chat.Message, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// StatusRepository persists client status check-ins
type StatusRepository interface {
	Save(ctx context.Context, check status.Check) error
	List(ctx context.Context, limit int) ([]status.Check, error)
}

// AuditRepository persists the append-only audit trail
type AuditRepository interface {
	Append(ctx context.Context, entry audit.Entry) error
	// ListRecent returns entries newest first.
	ListRecent(ctx context.Context, limit int) ([]audit.Entry, error)
}

// Conversation is one live binding to an external reasoning-service
// conversation context. Send delegates a user message and returns the reply.
type Conversation interface {
	Send(ctx context.Context, message string) (string, error)
}

// ConversationFactory creates conversations bound to the system persona.
// Creation fails with a configuration error when the provider credential is
// missing.
type ConversationFactory interface {
	NewConversation(ctx context.Context, sessionID string) (Conversation, error)
}

// ArtifactStore is a readable byte store addressable by filename
type ArtifactStore interface {
	Read(ctx context.Context, filename string) ([]byte, error)
}

// TextExtractor extracts plain text from an artifact's raw bytes. It returns
// a typed failure rather than panicking on malformed input; callers decide
// how to degrade.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// EventPublisher fans audit entries out to the event bus. Publication is best
// effort from the caller's perspective.
type EventPublisher interface {
	Publish(ctx context.Context, entry audit.Entry) error
}
