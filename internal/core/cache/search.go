package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"mealmate/internal/infrastructure/config"
	"mealmate/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SearchCache 以 Redis 緩存食譜搜尋結果
//
// 未啟用或 Redis 無法連線時，Get 一律回傳未命中，Set 直接略過。
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string

	observer Observer
}

// SetObserver 設定命中指標，需在開始使用前呼叫
func (s *SearchCache) SetObserver(o Observer) {
	s.observer = o
}

func (s *SearchCache) observe(hit bool) {
	if s.observer != nil {
		s.observer.CacheLookup("search", hit)
	}
}

// NewSearchCache 創建搜尋結果緩存服務
func NewSearchCache(cfg *config.Config) *SearchCache {
	s := &SearchCache{
		ttl:    cfg.Cache.SearchTTL,
		prefix: cfg.Cache.SearchKeyPrefix,
	}
	if !cfg.Cache.SearchEnabled {
		common.LogInfo("Search cache disabled")
		return s
	}

	s.client = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 測試連接，失敗時仍保留 client，之後的請求只會未命中
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		common.LogWarn("Redis unreachable, search cache will miss",
			zap.String("addr", cfg.Redis.Addr),
			zap.Error(err),
		)
	} else {
		common.LogInfo("Search cache connected",
			zap.String("addr", cfg.Redis.Addr),
			zap.Duration("ttl", s.ttl),
		)
	}
	return s
}

// Enabled 是否啟用
func (s *SearchCache) Enabled() bool {
	return s != nil && s.client != nil
}

// Get 獲取緩存，v 為解碼目標
func (s *SearchCache) Get(ctx context.Context, key string, v interface{}) error {
	if !s.Enabled() {
		return common.ErrCacheDisabled
	}

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		s.observe(false)
		if errors.Is(err, redis.Nil) {
			common.LogCacheMiss("search", key)
			return common.ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}

	if err := common.ParseJSONBytes(data, v); err != nil {
		s.observe(false)
		return fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	s.observe(true)
	common.LogCacheHit("search", key)
	return nil
}

// Set 設置緩存
func (s *SearchCache) Set(ctx context.Context, key string, v interface{}) error {
	if !s.Enabled() {
		return nil
	}

	data, err := common.ToJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Ping 檢查 Redis 連線，未啟用時回傳 ErrCacheDisabled
func (s *SearchCache) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return common.ErrCacheDisabled
	}
	return s.client.Ping(ctx).Err()
}

// Close 關閉連線
func (s *SearchCache) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Close()
}

// IngredientsKey 以排序後的食材清單與數量生成緩存鍵
func IngredientsKey(ingredients []string, number int) string {
	normalized := make([]string, 0, len(ingredients))
	for _, name := range ingredients {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			normalized = append(normalized, name)
		}
	}
	sort.Strings(normalized)

	hash := sha256.Sum256([]byte(strings.Join(normalized, ",")))
	return fmt.Sprintf("ingredients:%d:%s", number, hex.EncodeToString(hash[:8]))
}
