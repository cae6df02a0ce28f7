package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 庫存服務
type Service struct {
	store Store
	now   func() time.Time
}

// NewService 創建庫存服務
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Add 加入一項食材
func (s *Service) Add(ctx context.Context, item Item) (Item, error) {
	items, err := s.AddMultiple(ctx, []Item{item})
	if err != nil {
		return Item{}, err
	}
	return items[0], nil
}

// AddMultiple 一次加入多項食材
func (s *Service) AddMultiple(ctx context.Context, items []Item) ([]Item, error) {
	if len(items) == 0 {
		return []Item{}, nil
	}

	now := s.now()
	prepared := make([]Item, len(items))
	for i, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, common.NewValidationError(fmt.Sprintf("item %d: name is required", i))
		}
		if item.ID == "" {
			item.ID = common.GenerateUUID()
		}
		if item.AddedDate.IsZero() {
			item.AddedDate = now
		}
		if item.Source != SourceScan {
			item.Source = SourceManual
		}
		item.Category = ParseCategory(string(item.Category))
		prepared[i] = item
	}

	if err := s.store.Create(ctx, prepared...); err != nil {
		return nil, fmt.Errorf("failed to add inventory items: %w", err)
	}

	common.LogInfo("已加入庫存",
		zap.Int("count", len(prepared)),
		zap.String("source", string(prepared[0].Source)),
	)
	return prepared, nil
}

// Remove 移除食材
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Update 依 patch 更新食材，id 不存在時回傳 ErrNotFound
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Item, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return Item{}, common.NewValidationError("name must not be empty")
		}
		item.Name = name
	}
	if patch.Category != nil {
		item.Category = ParseCategory(*patch.Category)
	}
	if patch.Quantity != nil {
		q := *patch.Quantity
		item.Quantity = &q
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.ExpirationDate != nil {
		exp := *patch.ExpirationDate
		item.ExpirationDate = &exp
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}

	if err := s.store.Save(ctx, item); err != nil {
		return Item{}, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

// List 列出所有食材，依加入時間排序
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.store.List(ctx)
}

// Names 庫存食材名稱
func (s *Service) Names(ctx context.Context) ([]string, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names, nil
}
