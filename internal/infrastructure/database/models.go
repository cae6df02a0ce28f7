package database

import (
	"time"

	"mealmate/internal/core/chat"
	"mealmate/internal/core/inventory"
	"mealmate/internal/core/shopping"
	"mealmate/internal/core/user"
)

// InventoryItemModel 庫存食材資料表
type InventoryItemModel struct {
	Seq            uint       `gorm:"primaryKey;autoIncrement"`
	ID             string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Category       string     `gorm:"type:varchar(20);index"`
	Quantity       *float64
	Unit           string     `gorm:"type:varchar(32)"`
	AddedDate      time.Time
	ExpirationDate *time.Time
	ImageURL       string     `gorm:"type:text"`
	Source         string     `gorm:"type:varchar(10)"`
	Confidence     float64
}

// TableName 資料表名稱
func (InventoryItemModel) TableName() string { return "inventory_items" }

// ShoppingItemModel 購物清單資料表
type ShoppingItemModel struct {
	Seq            uint      `gorm:"primaryKey;autoIncrement"`
	ID             string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	IngredientName string    `gorm:"type:varchar(255);not null"`
	Quantity       float64
	Unit           string    `gorm:"type:varchar(32)"`
	Purchased      bool      `gorm:"index"`
	Category       string    `gorm:"type:varchar(50)"`
	AddedDate      time.Time
}

// TableName 資料表名稱
func (ShoppingItemModel) TableName() string { return "shopping_items" }

// UserModel 使用者資料表
type UserModel struct {
	ID                  string    `gorm:"type:varchar(64);primaryKey"`
	Tier                string    `gorm:"type:varchar(10);default:'free'"`
	ScansUsed           int
	ScanLimit           int
	ScanResetDate       time.Time
	OnboardingCompleted bool
	UpdatedAt           time.Time
}

// TableName 資料表名稱
func (UserModel) TableName() string { return "users" }

// MessageModel 對話訊息資料表
type MessageModel struct {
	Seq            uint      `gorm:"primaryKey;autoIncrement"`
	ID             string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ConversationID string    `gorm:"type:varchar(64);index;not null"`
	Text           string    `gorm:"type:text"`
	IsUser         bool
	Timestamp      time.Time
	ImageURI       string    `gorm:"type:text"`
	Intent         string    `gorm:"type:varchar(32)"`
}

// TableName 資料表名稱
func (MessageModel) TableName() string { return "messages" }

func inventoryToModel(i inventory.Item) InventoryItemModel {
	return InventoryItemModel{
		ID:             i.ID,
		Name:           i.Name,
		Category:       string(i.Category),
		Quantity:       i.Quantity,
		Unit:           i.Unit,
		AddedDate:      i.AddedDate,
		ExpirationDate: i.ExpirationDate,
		ImageURL:       i.ImageURL,
		Source:         string(i.Source),
		Confidence:     i.Confidence,
	}
}

func modelToInventory(m InventoryItemModel) inventory.Item {
	return inventory.Item{
		ID:             m.ID,
		Name:           m.Name,
		Category:       inventory.Category(m.Category),
		Quantity:       m.Quantity,
		Unit:           m.Unit,
		AddedDate:      m.AddedDate,
		ExpirationDate: m.ExpirationDate,
		ImageURL:       m.ImageURL,
		Source:         inventory.Source(m.Source),
		Confidence:     m.Confidence,
	}
}

func shoppingToModel(i shopping.Item) ShoppingItemModel {
	return ShoppingItemModel{
		ID:             i.ID,
		IngredientName: i.IngredientName,
		Quantity:       i.Quantity,
		Unit:           i.Unit,
		Purchased:      i.Purchased,
		Category:       i.Category,
		AddedDate:      i.AddedDate,
	}
}

func modelToShopping(m ShoppingItemModel) shopping.Item {
	return shopping.Item{
		ID:             m.ID,
		IngredientName: m.IngredientName,
		Quantity:       m.Quantity,
		Unit:           m.Unit,
		Purchased:      m.Purchased,
		Category:       m.Category,
		AddedDate:      m.AddedDate,
	}
}

func userToModel(u user.User) UserModel {
	return UserModel{
		ID:                  u.ID,
		Tier:                string(u.Tier),
		ScansUsed:           u.ScanQuota.Used,
		ScanLimit:           u.ScanQuota.Limit,
		ScanResetDate:       u.ScanQuota.ResetDate,
		OnboardingCompleted: u.OnboardingCompleted,
	}
}

func modelToUser(m UserModel) user.User {
	return user.User{
		ID:   m.ID,
		Tier: user.Tier(m.Tier),
		ScanQuota: user.ScanQuota{
			Used:      m.ScansUsed,
			Limit:     m.ScanLimit,
			ResetDate: m.ScanResetDate,
		},
		OnboardingCompleted: m.OnboardingCompleted,
	}
}

func messageToModel(m chat.Message) MessageModel {
	return MessageModel{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Text:           m.Text,
		IsUser:         m.IsUser,
		Timestamp:      m.Timestamp,
		ImageURI:       m.ImageURI,
		Intent:         m.Intent,
	}
}

func modelToMessage(m MessageModel) chat.Message {
	return chat.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Text:           m.Text,
		IsUser:         m.IsUser,
		Timestamp:      m.Timestamp,
		ImageURI:       m.ImageURI,
		Intent:         m.Intent,
	}
}
