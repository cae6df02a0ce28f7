package inventory

import (
	"context"
	"net/http"
	"strings"
	"time"

	"mealmate/internal/pkg/common"
)

// Category 食材分類
type Category string

const (
	CategoryProduce    Category = "produce"
	CategoryProtein    Category = "protein"
	CategoryDairy      Category = "dairy"
	CategoryGrains     Category = "grains"
	CategorySpices     Category = "spices"
	CategoryCondiments Category = "condiments"
	CategoryBeverages  Category = "beverages"
	CategoryOther      Category = "other"
)

// Categories 所有合法分類
var Categories = []Category{
	CategoryProduce, CategoryProtein, CategoryDairy, CategoryGrains,
	CategorySpices, CategoryCondiments, CategoryBeverages, CategoryOther,
}

// IsValidCategory 檢查分類是否合法
func IsValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ParseCategory 解析分類，不認得的一律歸為 other
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	if IsValidCategory(s) {
		return Category(s)
	}
	return CategoryOther
}

// Source 食材來源
type Source string

const (
	SourceScan   Source = "scan"
	SourceManual Source = "manual"
)

// Item 庫存食材
type Item struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       Category   `json:"category"`
	Quantity       *float64   `json:"quantity,omitempty"`
	Unit           string     `json:"unit,omitempty"`
	AddedDate      time.Time  `json:"addedDate"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Source         Source     `json:"source"`
	Confidence     float64    `json:"confidence,omitempty"`
}

// Patch 更新欄位，nil 表示不變更
type Patch struct {
	Name           *string    `json:"name,omitempty"`
	Category       *string    `json:"category,omitempty" binding:"omitempty,ingredient_category"`
	Quantity       *float64   `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	Unit           *string    `json:"unit,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	ImageURL       *string    `json:"imageUrl,omitempty"`
}

// Store 庫存持久層
type Store interface {
	Create(ctx context.Context, items ...Item) error
	Get(ctx context.Context, id string) (Item, error)
	Save(ctx context.Context, item Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Item, error)
}

// ErrNotFound 找不到庫存食材
var ErrNotFound = common.NewError(common.ErrCodeNotFound, "Inventory item not found", http.StatusNotFound, nil)
