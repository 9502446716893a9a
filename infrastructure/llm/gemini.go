// Package llm binds chat sessions to the Gemini API.
package llm

import (
	"context"
	"fmt"
	"sync"

	"gogarvis-backend/application/ports"
	apperrors "gogarvis-backend/pkg/errors"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiFactory creates conversations backed by Gemini chat sessions. Each
// conversation carries the system persona and its own server-side history.
// The underlying client is created lazily on the first session.
type GeminiFactory struct {
	apiKey string
	model  string
	logger *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiFactory creates a conversation factory for the given model
func NewGeminiFactory(apiKey, model string, logger *zap.Logger) *GeminiFactory {
	return &GeminiFactory{
		apiKey: apiKey,
		model:  model,
		logger: logger,
	}
}

// NewConversation creates a chat session bound to the GARVIS persona. A
// missing API key is a configuration error, not a per-request failure.
func (f *GeminiFactory) NewConversation(ctx context.Context, sessionID string) (ports.Conversation, error) {
	if f.apiKey == "" {
		return nil, apperrors.NewConfigurationError("GEMINI_API_KEY is not configured")
	}

	client, err := f.ensureClient(ctx)
	if err != nil {
		return nil, apperrors.NewChatDeliveryError("failed to reach reasoning service").WithCause(err)
	}

	chatSession, err := client.Chats.Create(ctx, f.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPersona, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, apperrors.NewChatDeliveryError("failed to create conversation context").WithCause(err)
	}

	f.logger.Debug("Created Gemini chat session",
		zap.String("session_id", sessionID),
		zap.String("model", f.model),
	)

	return &geminiConversation{chat: chatSession}, nil
}

// ensureClient creates the shared genai client on first use
func (f *GeminiFactory) ensureClient(ctx context.Context) (*genai.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  f.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	f.client = client
	return client, nil
}

// geminiConversation adapts a genai chat session to ports.Conversation
type geminiConversation struct {
	chat *genai.Chat
}

// Send delegates one user message and returns the model's textual reply
func (c *geminiConversation) Send(ctx context.Context, message string) (string, error) {
	result, err := c.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", err
	}

	reply := result.Text()
	if reply == "" {
		return "", fmt.Errorf("model returned an empty reply")
	}
	return reply, nil
}
