package shopping

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// Item 購物清單項目
type Item struct {
	ID             string    `json:"id"`
	IngredientName string    `json:"ingredientName"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	Purchased      bool      `json:"purchased"`
	Category       string    `json:"category,omitempty"`
	AddedDate      time.Time `json:"addedDate"`
}

// Store 購物清單持久層
type Store interface {
	Create(ctx context.Context, items ...Item) error
	Get(ctx context.Context, id string) (Item, error)
	Save(ctx context.Context, item Item) error
	Delete(ctx context.Context, id string) error
	DeletePurchased(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]Item, error)
}

// ErrNotFound 找不到購物清單項目
var ErrNotFound = common.NewError(common.ErrCodeNotFound, "Shopping item not found", http.StatusNotFound, nil)

// Service 購物清單服務
type Service struct {
	store Store
	now   func() time.Time
}

// NewService 創建購物清單服務
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Add 加入一項
func (s *Service) Add(ctx context.Context, item Item) (Item, error) {
	items, err := s.AddMultiple(ctx, []Item{item})
	if err != nil {
		return Item{}, err
	}
	return items[0], nil
}

// AddMultiple 一次加入多項
func (s *Service) AddMultiple(ctx context.Context, items []Item) ([]Item, error) {
	if len(items) == 0 {
		return []Item{}, nil
	}

	now := s.now()
	prepared := make([]Item, len(items))
	for i, item := range items {
		item.IngredientName = strings.TrimSpace(item.IngredientName)
		if item.IngredientName == "" {
			return nil, common.NewValidationError(fmt.Sprintf("item %d: ingredientName is required", i))
		}
		if item.Quantity < 0 {
			return nil, common.NewValidationError(fmt.Sprintf("item %d: quantity must not be negative", i))
		}
		if item.ID == "" {
			item.ID = common.GenerateUUID()
		}
		if item.AddedDate.IsZero() {
			item.AddedDate = now
		}
		item.Purchased = false
		prepared[i] = item
	}

	if err := s.store.Create(ctx, prepared...); err != nil {
		return nil, fmt.Errorf("failed to add shopping items: %w", err)
	}
	return prepared, nil
}

// Remove 移除一項
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// TogglePurchased 切換已購買狀態
func (s *Service) TogglePurchased(ctx context.Context, id string) (Item, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}

	item.Purchased = !item.Purchased
	if err := s.store.Save(ctx, item); err != nil {
		return Item{}, fmt.Errorf("failed to toggle shopping item: %w", err)
	}
	return item, nil
}

// ClearPurchased 移除所有已購買項目
func (s *Service) ClearPurchased(ctx context.Context) (int64, error) {
	n, err := s.store.DeletePurchased(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear purchased items: %w", err)
	}
	common.LogInfo("已清除已購買項目", zap.Int64("count", n))
	return n, nil
}

// ClearAll 清空購物清單
func (s *Service) ClearAll(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear shopping list: %w", err)
	}
	return n, nil
}

// List 列出購物清單
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.store.List(ctx)
}
