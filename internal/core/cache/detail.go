package cache

import (
	"sync"

	"mealmate/internal/core/recipe"
	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// DefaultDetailSize 食譜詳細資訊快取的預設容量
const DefaultDetailSize = 20

// DetailCache 食譜詳細資訊快取
//
// 依加入順序保留最近的 maxSize 筆，超過時淘汰最舊的一筆；
// 重複加入相同 id 時原地替換，不改變順序。
type DetailCache struct {
	mu      sync.RWMutex
	maxSize int
	entries []*recipe.Detail
	stats   detailStats

	observer Observer
}

// Observer 快取命中指標
type Observer interface {
	CacheLookup(cache string, hit bool)
}

type detailStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewDetailCache 創建食譜詳細資訊快取
func NewDetailCache(maxSize int) *DetailCache {
	if maxSize <= 0 {
		maxSize = DefaultDetailSize
	}
	return &DetailCache{
		maxSize: maxSize,
		entries: make([]*recipe.Detail, 0, maxSize),
	}
}

// SetObserver 設定命中指標，需在開始使用前呼叫
func (c *DetailCache) SetObserver(o Observer) {
	c.observer = o
}

// Get 以食譜 id 取得快取
func (c *DetailCache) Get(id int) (*recipe.Detail, bool) {
	d, ok := c.lookup(id)
	if c.observer != nil {
		c.observer.CacheLookup("recipe_detail", ok)
	}
	return d, ok
}

func (c *DetailCache) lookup(id int) (*recipe.Detail, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		c.stats.hits++
		return c.entries[i], true
	}
	c.stats.misses++
	return nil, false
}

// Put 加入或替換快取
func (c *DetailCache) Put(d *recipe.Detail) {
	if d == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(d.ID); i >= 0 {
		c.entries[i] = d
		return
	}

	c.entries = append(c.entries, d)
	if len(c.entries) > c.maxSize {
		evicted := c.entries[0]
		c.entries[0] = nil
		c.entries = c.entries[1:]
		c.stats.evictions++
		common.LogDebug("食譜詳情已移出快取",
			zap.Int("recipe_id", evicted.ID),
			zap.Int("size", len(c.entries)),
		)
	}
}

// IDs 依加入順序回傳目前快取的食譜 id
func (c *DetailCache) IDs() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]int, len(c.entries))
	for i, d := range c.entries {
		ids[i] = d.ID
	}
	return ids
}

// Len 快取筆數
func (c *DetailCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats 獲取快取統計信息
func (c *DetailCache) GetStats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hitRatio := 0.0
	if total := c.stats.hits + c.stats.misses; total > 0 {
		hitRatio = float64(c.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"size":      len(c.entries),
		"max_size":  c.maxSize,
		"hits":      c.stats.hits,
		"misses":    c.stats.misses,
		"evictions": c.stats.evictions,
		"hit_ratio": hitRatio,
	}
}

func (c *DetailCache) indexOf(id int) int {
	for i, d := range c.entries {
		if d.ID == id {
			return i
		}
	}
	return -1
}
