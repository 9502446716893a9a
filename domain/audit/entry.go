// Package audit models the append-only audit trail of portal activity.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action identifies what kind of activity an entry records
type Action string

const (
	ActionChatExchange  Action = "chat.exchange"
	ActionSessionClear  Action = "chat.session_cleared"
	ActionStatusCreated Action = "status.created"
)

// Entry is one immutable audit record. Entries double as the payload
// published to the event bus.
type Entry struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntry creates an audit entry stamped with the current UTC time
func NewEntry(action Action, subject, detail string) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Action:    action,
		Subject:   subject,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}

// EventType returns the event bus detail-type for this entry
func (e Entry) EventType() string { return string(e.Action) }
