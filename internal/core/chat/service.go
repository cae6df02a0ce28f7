package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mealmate/internal/core/assistant"
	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// DefaultConversationID 未指定對話時使用
const DefaultConversationID = "default"

// Message 對話訊息，只會附加不會修改
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Text           string    `json:"text"`
	IsUser         bool      `json:"isUser"`
	Timestamp      time.Time `json:"timestamp"`
	ImageURI       string    `json:"imageUri,omitempty"`
	Intent         string    `json:"intent,omitempty"`
}

// Store 對話紀錄持久層
type Store interface {
	Append(ctx context.Context, msgs ...Message) error
	List(ctx context.Context, conversationID string) ([]Message, error)
}

// InventoryLister 提供目前庫存食材名稱
type InventoryLister interface {
	Names(ctx context.Context) ([]string, error)
}

// Exchange 一次問答
type Exchange struct {
	Question Message `json:"question"`
	Answer   Message `json:"answer"`
}

// Service 對話服務
type Service struct {
	store     Store
	inventory InventoryLister
	now       func() time.Time
}

// NewService 創建對話服務
func NewService(store Store, inventory InventoryLister) *Service {
	return &Service{store: store, inventory: inventory, now: time.Now}
}

// Send 送出使用者訊息並取得助理回覆
func (s *Service) Send(ctx context.Context, conversationID, text, imageURI string) (*Exchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.NewValidationError("text is required")
	}
	if conversationID == "" {
		conversationID = DefaultConversationID
	}

	prior, err := s.store.List(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	history := make([]string, 0, len(prior))
	for _, m := range prior {
		if m.IsUser {
			history = append(history, m.Text)
		}
	}

	var names []string
	if s.inventory != nil {
		if names, err = s.inventory.Names(ctx); err != nil {
			return nil, fmt.Errorf("failed to load inventory: %w", err)
		}
	}

	reply := assistant.Respond(assistant.Request{
		Message:   text,
		Inventory: names,
		History:   history,
	})

	now := s.now()
	question := Message{
		ID:             common.GenerateUUID(),
		ConversationID: conversationID,
		Text:           text,
		IsUser:         true,
		Timestamp:      now,
		ImageURI:       imageURI,
	}
	answer := Message{
		ID:             common.GenerateUUID(),
		ConversationID: conversationID,
		Text:           reply.Text,
		IsUser:         false,
		Timestamp:      now,
		Intent:         string(reply.Intent),
	}

	if err := s.store.Append(ctx, question, answer); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	common.LogDebug("助理已回覆",
		zap.String("conversation_id", conversationID),
		zap.String("intent", string(reply.Intent)),
		zap.Int("history", len(history)),
	)
	return &Exchange{Question: question, Answer: answer}, nil
}

// History 依時間順序回傳對話紀錄
func (s *Service) History(ctx context.Context, conversationID string) ([]Message, error) {
	if conversationID == "" {
		conversationID = DefaultConversationID
	}
	return s.store.List(ctx, conversationID)
}
