package api

import (
	"context"
	"fmt"

	"mealmate/internal/api/handlers/health"
	"mealmate/internal/core/cache"
	"mealmate/internal/core/chat"
	"mealmate/internal/core/image"
	"mealmate/internal/core/ingredient"
	"mealmate/internal/core/inventory"
	"mealmate/internal/core/queue"
	"mealmate/internal/core/recipe"
	"mealmate/internal/core/scan"
	"mealmate/internal/core/shopping"
	"mealmate/internal/core/user"
	"mealmate/internal/infrastructure/config"
	"mealmate/internal/infrastructure/database"
	"mealmate/internal/infrastructure/metrics"
	"mealmate/internal/infrastructure/spoonacular"
	"mealmate/internal/infrastructure/vision"
	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// BuildServices 依設定組裝所有服務，cleanup 關閉隊列、Redis 與資料庫
func BuildServices(cfg *config.Config) (*Services, func(), error) {
	m := metrics.New()

	db, err := database.Open(cfg.Database.Path, cfg.Database.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	spoon := spoonacular.NewClient(cfg.Spoonacular, m)

	details := cache.NewDetailCache(cfg.Cache.DetailMaxSize)
	details.SetObserver(m)
	searchCache := cache.NewSearchCache(cfg)
	searchCache.SetObserver(m)

	var recipeOpts []recipe.Option
	if searchCache.Enabled() {
		recipeOpts = append(recipeOpts, recipe.WithResultCache(searchCache, cache.IngredientsKey))
	}
	recipes := recipe.NewService(spoon, details, recipeOpts...)

	inventorySvc := inventory.NewService(database.NewInventoryStore(db))
	shoppingSvc := shopping.NewService(database.NewShoppingStore(db))
	userSvc := user.NewService(database.NewUserStore(db), cfg.Quota.FreeDailyScans)
	chatSvc := chat.NewService(database.NewConversationStore(db), inventorySvc)

	scanQueue := queue.NewManager(cfg.Queue, m)
	scanQueue.Start()

	var identifier scan.Identifier = unavailableIdentifier{}
	if cfg.Vision.Enabled {
		identifier = vision.NewClient(cfg.Vision, m)
	} else {
		common.LogWarn("Vision identification disabled, scans will fail")
	}
	scanner := scan.NewService(image.NewService(cfg.Image), identifier, userSvc, inventorySvc, scanQueue, m)

	checks := map[string]health.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if searchCache.Enabled() {
		checks["redis"] = searchCache.Ping
	}

	common.LogInfo("Services initialized",
		zap.String("database", cfg.Database.Path),
		zap.Bool("search_cache", searchCache.Enabled()),
		zap.Bool("vision", cfg.Vision.Enabled),
		zap.Int("queue_workers", cfg.Queue.Workers),
		zap.String("spoonacular_key", config.MaskAPIKey(cfg.Spoonacular.APIKey)),
	)

	cleanup := func() {
		scanQueue.Close()
		if err := searchCache.Close(); err != nil {
			common.LogWarn("Failed to close search cache", zap.Error(err))
		}
		if err := database.Close(db); err != nil {
			common.LogWarn("Failed to close database", zap.Error(err))
		}
	}

	return &Services{
		Recipes:     recipes,
		Ingredients: ingredient.NewService(spoon),
		Inventory:   inventorySvc,
		Shopping:    shoppingSvc,
		Chat:        chatSvc,
		Scanner:     scanner,
		Users:       userSvc,
		Queue:       scanQueue,
		DetailCache: details,
		Checks:      checks,
		Metrics:     m,
	}, cleanup, nil
}

// unavailableIdentifier 未啟用辨識時使用
type unavailableIdentifier struct{}

func (unavailableIdentifier) Identify(context.Context, string) ([]inventory.Item, error) {
	return nil, common.ErrServiceUnavailable
}
