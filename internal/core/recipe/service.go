package recipe

import (
	"context"
	"fmt"
	"strings"

	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// DefaultMatchCount 依食材搜尋時預設取回的食譜數量
const DefaultMatchCount = 10

// Searcher 外部食譜搜尋服務
type Searcher interface {
	FindByIngredients(ctx context.Context, ingredients []string, number int) ([]Recipe, error)
	Information(ctx context.Context, id int) (*Detail, error)
	ComplexSearch(ctx context.Context, query string, filters Filters, number int) ([]Recipe, error)
}

// DetailCache 食譜詳細資訊快取
type DetailCache interface {
	Get(id int) (*Detail, bool)
	Put(d *Detail)
}

// ResultCache 搜尋結果快取，任何錯誤都視為未命中
type ResultCache interface {
	Get(ctx context.Context, key string, v interface{}) error
	Set(ctx context.Context, key string, v interface{}) error
}

// KeyFunc 由食材清單生成搜尋快取鍵
type KeyFunc func(ingredients []string, number int) string

// Service 食譜服務
type Service struct {
	searcher Searcher
	details  DetailCache
	results  ResultCache
	keyFunc  KeyFunc
}

// Option 服務選項
type Option func(*Service)

// WithResultCache 啟用搜尋結果快取
func WithResultCache(c ResultCache, keyFunc KeyFunc) Option {
	return func(s *Service) {
		s.results = c
		s.keyFunc = keyFunc
	}
}

// NewService 創建新的食譜服務
func NewService(searcher Searcher, details DetailCache, opts ...Option) *Service {
	s := &Service{
		searcher: searcher,
		details:  details,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindMatches 依庫存食材搜尋並排序食譜
func (s *Service) FindMatches(ctx context.Context, ingredients []string, number int) ([]Match, error) {
	ingredients = cleanNames(ingredients)
	if len(ingredients) == 0 {
		return []Match{}, nil
	}
	if number <= 0 {
		number = DefaultMatchCount
	}

	recipes, err := s.findByIngredients(ctx, ingredients, number)
	if err != nil {
		return nil, err
	}

	matches := RankRecipes(recipes)
	common.LogInfo("食譜配對完成",
		zap.Int("ingredients", len(ingredients)),
		zap.Int("results", len(matches)),
	)
	return matches, nil
}

func (s *Service) findByIngredients(ctx context.Context, ingredients []string, number int) ([]Recipe, error) {
	var key string
	if s.results != nil && s.keyFunc != nil {
		key = s.keyFunc(ingredients, number)
		var cached []Recipe
		if err := s.results.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	recipes, err := s.searcher.FindByIngredients(ctx, ingredients, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}

	if key != "" {
		if err := s.results.Set(ctx, key, recipes); err != nil {
			common.LogWarn("搜尋結果快取失敗",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
	return recipes, nil
}

// GetDetail 取得食譜詳細資訊，先查快取
func (s *Service) GetDetail(ctx context.Context, id int) (*Detail, error) {
	if id <= 0 {
		return nil, common.NewValidationError("recipe id must be positive")
	}

	if s.details != nil {
		if d, ok := s.details.Get(id); ok {
			common.LogCacheHit("recipe_detail", fmt.Sprint(id))
			return d, nil
		}
	}

	d, err := s.searcher.Information(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe details: %w", err)
	}

	if s.details != nil {
		s.details.Put(d)
	}
	return d, nil
}

// Search 以關鍵字與條件搜尋食譜
func (s *Service) Search(ctx context.Context, query string, filters Filters) ([]Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.NewValidationError("query is required")
	}

	recipes, err := s.searcher.ComplexSearch(ctx, query, filters, DefaultMatchCount)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	if recipes == nil {
		recipes = []Recipe{}
	}
	return recipes, nil
}

func cleanNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	return cleaned
}
