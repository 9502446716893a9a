package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"gogarvis-backend/application/ports"
	"gogarvis-backend/domain/audit"
	"gogarvis-backend/domain/chat"
	apperrors "gogarvis-backend/pkg/errors"
	"gogarvis-backend/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeConversation echoes messages back and counts sends
type fakeConversation struct {
	mu    sync.Mutex
	sends int
	fail  error
}

func (c *fakeConversation) Send(ctx context.Context, message string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sends++
	if c.fail != nil {
		return "", c.fail
	}
	return "echo: " + message, nil
}

// fakeFactory hands out conversations and counts how many were created
type fakeFactory struct {
	mu           sync.Mutex
	created      int
	failCreation error
	sendFailure  error
}

func (f *fakeFactory) NewConversation(ctx context.Context, sessionID string) (ports.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreation != nil {
		return nil, f.failCreation
	}
	f.created++
	return &fakeConversation{fail: f.sendFailure}, nil
}

// memoryHistory is an in-memory ports.ChatHistoryRepository
type memoryHistory struct {
	mu        sync.Mutex
	messages  map[string][]chat.Message
	appendErr error
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{messages: make(map[string][]chat.Message)}
}

func (h *memoryHistory) Append(ctx context.Context, msg chat.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.appendErr != nil {
		return h.appendErr
	}
	h.messages[msg.SessionID] = append(h.messages[msg.SessionID], msg)
	return nil
}

func (h *memoryHistory) ListBySession(ctx context.Context, sessionID string) ([]chat.Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := append([]chat.Message(nil), h.messages[sessionID]...)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Timestamp.Before(msgs[j].Timestamp) })
	return msgs, nil
}

func (h *memoryHistory) DeleteSession(ctx context.Context, sessionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.messages, sessionID)
	return nil
}

// memoryAudit is an in-memory ports.AuditRepository
type memoryAudit struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (a *memoryAudit) Append(ctx context.Context, entry audit.Entry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

func (a *memoryAudit) ListRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := append([]audit.Entry(nil), a.entries...)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func newTestChatService(factory *fakeFactory, history *memoryHistory) (*ChatService, *memoryAudit) {
	auditor := &memoryAudit{}
	svc := NewChatService(
		factory,
		history,
		auditor,
		nil,
		observability.NewTracer("test", false),
		nil,
		5*time.Second,
		zap.NewNop(),
	)
	return svc, auditor
}

func TestChatServiceSend(t *testing.T) {
	ctx := context.Background()

	t.Run("empty session id mints a fresh one", func(t *testing.T) {
		svc, _ := newTestChatService(&fakeFactory{}, newMemoryHistory())

		reply, sessionID, err := svc.Send(ctx, "", "hello")
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		assert.Equal(t, "echo: hello", reply)
	})

	t.Run("second send reuses the binding", func(t *testing.T) {
		factory := &fakeFactory{}
		history := newMemoryHistory()
		svc, _ := newTestChatService(factory, history)

		_, sessionID, err := svc.Send(ctx, "", "first")
		require.NoError(t, err)
		_, sameID, err := svc.Send(ctx, sessionID, "second")
		require.NoError(t, err)
		assert.Equal(t, sessionID, sameID)
		assert.Equal(t, 1, factory.created)

		msgs, err := svc.History(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, msgs, 4)
		assert.Equal(t, chat.RoleUser, msgs[0].Role)
		assert.Equal(t, "first", msgs[0].Content)
		assert.Equal(t, chat.RoleAssistant, msgs[1].Role)
		assert.Equal(t, "second", msgs[2].Content)
	})

	t.Run("distinct session ids get distinct bindings", func(t *testing.T) {
		factory := &fakeFactory{}
		svc, _ := newTestChatService(factory, newMemoryHistory())

		_, a, err := svc.Send(ctx, "", "one")
		require.NoError(t, err)
		_, b, err := svc.Send(ctx, "", "two")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.Equal(t, 2, factory.created)
	})

	t.Run("delivery failure surfaces as CHAT_DELIVERY and keeps the binding", func(t *testing.T) {
		factory := &fakeFactory{sendFailure: errors.New("upstream 500")}
		svc, _ := newTestChatService(factory, newMemoryHistory())

		_, sessionID, err := svc.Send(ctx, "", "hello")
		require.Error(t, err)
		assert.NotEmpty(t, sessionID)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeChatDelivery))

		// retry on the same id reuses the binding instead of recreating it
		_, _, err = svc.Send(ctx, sessionID, "again")
		require.Error(t, err)
		assert.Equal(t, 1, factory.created)
	})

	t.Run("factory configuration error passes through", func(t *testing.T) {
		factory := &fakeFactory{failCreation: apperrors.NewConfigurationError("GEMINI_API_KEY is not configured")}
		svc, _ := newTestChatService(factory, newMemoryHistory())

		_, _, err := svc.Send(ctx, "", "hello")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfiguration))
	})

	t.Run("persistence failure surfaces as DATABASE", func(t *testing.T) {
		history := newMemoryHistory()
		history.appendErr = errors.New("throttled")
		svc, _ := newTestChatService(&fakeFactory{}, history)

		_, _, err := svc.Send(ctx, "", "hello")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDatabase))
	})

	t.Run("successful exchange records an audit entry", func(t *testing.T) {
		svc, auditor := newTestChatService(&fakeFactory{}, newMemoryHistory())

		_, sessionID, err := svc.Send(ctx, "", "hello")
		require.NoError(t, err)

		entries, err := auditor.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, audit.ActionChatExchange, entries[0].Action)
		assert.Equal(t, sessionID, entries[0].Subject)
	})

	t.Run("concurrent sends on the same session all complete", func(t *testing.T) {
		factory := &fakeFactory{}
		svc, _ := newTestChatService(factory, newMemoryHistory())

		_, sessionID, err := svc.Send(ctx, "", "seed")
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _, sendErr := svc.Send(ctx, sessionID, fmt.Sprintf("msg-%d", i))
				assert.NoError(t, sendErr)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, factory.created)
		msgs, err := svc.History(ctx, sessionID)
		require.NoError(t, err)
		assert.Len(t, msgs, 18)
	})
}

func TestChatServiceHistory(t *testing.T) {
	svc, _ := newTestChatService(&fakeFactory{}, newMemoryHistory())

	msgs, err := svc.History(context.Background(), "never-used")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestChatServiceClear(t *testing.T) {
	ctx := context.Background()

	t.Run("clear removes binding and history", func(t *testing.T) {
		factory := &fakeFactory{}
		svc, auditor := newTestChatService(factory, newMemoryHistory())

		_, sessionID, err := svc.Send(ctx, "", "hello")
		require.NoError(t, err)

		require.NoError(t, svc.Clear(ctx, sessionID))

		msgs, err := svc.History(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, msgs)

		// the next send on the same id builds a fresh binding
		_, _, err = svc.Send(ctx, sessionID, "again")
		require.NoError(t, err)
		assert.Equal(t, 2, factory.created)

		entries, err := auditor.ListRecent(ctx, 10)
		require.NoError(t, err)
		var cleared int
		for _, e := range entries {
			if e.Action == audit.ActionSessionClear {
				cleared++
			}
		}
		assert.Equal(t, 1, cleared)
	})

	t.Run("clear on unknown session id is not an error", func(t *testing.T) {
		svc, _ := newTestChatService(&fakeFactory{}, newMemoryHistory())
		assert.NoError(t, svc.Clear(ctx, "nonexistent"))
	})
}
