package database

import (
	"context"
	"errors"
	"fmt"

	"mealmate/internal/core/chat"
	"mealmate/internal/core/inventory"
	"mealmate/internal/core/shopping"
	"mealmate/internal/core/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryStore 以 gorm 實作庫存持久層
type InventoryStore struct {
	db *gorm.DB
}

// NewInventoryStore 創建庫存持久層
func NewInventoryStore(db *gorm.DB) *InventoryStore {
	return &InventoryStore{db: db}
}

// Create 新增食材
func (s *InventoryStore) Create(ctx context.Context, items ...inventory.Item) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]InventoryItemModel, len(items))
	for i, item := range items {
		models[i] = inventoryToModel(item)
	}
	return s.db.WithContext(ctx).Create(&models).Error
}

// Get 取得食材
func (s *InventoryStore) Get(ctx context.Context, id string) (inventory.Item, error) {
	var m InventoryItemModel
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inventory.Item{}, inventory.ErrNotFound
		}
		return inventory.Item{}, err
	}
	return modelToInventory(m), nil
}

// Save 更新食材
func (s *InventoryStore) Save(ctx context.Context, item inventory.Item) error {
	m := inventoryToModel(item)
	result := s.db.WithContext(ctx).Model(&InventoryItemModel{}).
		Where("id = ?", item.ID).
		Select("*").Omit("seq").
		Updates(&m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

// Delete 刪除食材
func (s *InventoryStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&InventoryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

// List 依加入順序列出食材
func (s *InventoryStore) List(ctx context.Context) ([]inventory.Item, error) {
	var models []InventoryItemModel
	if err := s.db.WithContext(ctx).Order("seq").Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]inventory.Item, len(models))
	for i, m := range models {
		items[i] = modelToInventory(m)
	}
	return items, nil
}

// ShoppingStore 以 gorm 實作購物清單持久層
type ShoppingStore struct {
	db *gorm.DB
}

// NewShoppingStore 創建購物清單持久層
func NewShoppingStore(db *gorm.DB) *ShoppingStore {
	return &ShoppingStore{db: db}
}

// Create 新增項目
func (s *ShoppingStore) Create(ctx context.Context, items ...shopping.Item) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]ShoppingItemModel, len(items))
	for i, item := range items {
		models[i] = shoppingToModel(item)
	}
	return s.db.WithContext(ctx).Create(&models).Error
}

// Get 取得項目
func (s *ShoppingStore) Get(ctx context.Context, id string) (shopping.Item, error) {
	var m ShoppingItemModel
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shopping.Item{}, shopping.ErrNotFound
		}
		return shopping.Item{}, err
	}
	return modelToShopping(m), nil
}

// Save 更新項目
func (s *ShoppingStore) Save(ctx context.Context, item shopping.Item) error {
	m := shoppingToModel(item)
	result := s.db.WithContext(ctx).Model(&ShoppingItemModel{}).
		Where("id = ?", item.ID).
		Select("*").Omit("seq").
		Updates(&m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shopping.ErrNotFound
	}
	return nil
}

// Delete 刪除項目
func (s *ShoppingStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&ShoppingItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shopping.ErrNotFound
	}
	return nil
}

// DeletePurchased 刪除已購買項目
func (s *ShoppingStore) DeletePurchased(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("purchased = ?", true).Delete(&ShoppingItemModel{})
	return result.RowsAffected, result.Error
}

// DeleteAll 刪除所有項目
func (s *ShoppingStore) DeleteAll(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ShoppingItemModel{})
	return result.RowsAffected, result.Error
}

// List 依加入順序列出項目
func (s *ShoppingStore) List(ctx context.Context) ([]shopping.Item, error) {
	var models []ShoppingItemModel
	if err := s.db.WithContext(ctx).Order("seq").Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]shopping.Item, len(models))
	for i, m := range models {
		items[i] = modelToShopping(m)
	}
	return items, nil
}

// UserStore 以 gorm 實作使用者持久層
type UserStore struct {
	db *gorm.DB
}

// NewUserStore 創建使用者持久層
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Get 取得使用者
func (s *UserStore) Get(ctx context.Context, id string) (user.User, error) {
	var m UserModel
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return modelToUser(m), nil
}

// Save 新增或更新使用者
func (s *UserStore) Save(ctx context.Context, u user.User) error {
	m := userToModel(u)
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
}

// ConversationStore 以 gorm 實作對話紀錄
type ConversationStore struct {
	db *gorm.DB
}

// NewConversationStore 創建對話紀錄持久層
func NewConversationStore(db *gorm.DB) *ConversationStore {
	return &ConversationStore{db: db}
}

// Append 附加訊息
func (s *ConversationStore) Append(ctx context.Context, msgs ...chat.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	models := make([]MessageModel, len(msgs))
	for i, m := range msgs {
		models[i] = messageToModel(m)
	}
	if err := s.db.WithContext(ctx).Create(&models).Error; err != nil {
		return fmt.Errorf("append messages: %w", err)
	}
	return nil
}

// List 依順序列出對話
func (s *ConversationStore) List(ctx context.Context, conversationID string) ([]chat.Message, error) {
	var models []MessageModel
	err := s.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("seq").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	msgs := make([]chat.Message, len(models))
	for i, m := range models {
		msgs[i] = modelToMessage(m)
	}
	return msgs, nil
}
