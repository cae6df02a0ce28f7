package api

import (
	"context"
	"fmt"
	"time"

	assistantHandler "mealmate/internal/api/handlers/assistant"
	"mealmate/internal/api/handlers/health"
	"mealmate/internal/api/handlers/pantry"
	recipeHandler "mealmate/internal/api/handlers/recipe"
	scanHandler "mealmate/internal/api/handlers/scan"
	userHandler "mealmate/internal/api/handlers/user"
	"mealmate/internal/api/middleware"
	"mealmate/internal/infrastructure/config"
	"mealmate/internal/infrastructure/metrics"
	"mealmate/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Inventory 庫存服務（handler 與食譜比對都會用到）
type Inventory interface {
	pantry.InventoryService
	recipeHandler.InventoryNames
}

// Services 路由需要的服務
type Services struct {
	Recipes     recipeHandler.RecipeService
	Ingredients recipeHandler.IngredientLookup
	Inventory   Inventory
	Shopping    pantry.ShoppingService
	Chat        assistantHandler.Conversations
	Scanner     scanHandler.Scanner
	Users       userHandler.Service

	Queue       health.QueueStatus
	DetailCache health.CacheStats
	Checks      map[string]health.Check
	Metrics     *metrics.Collector
}

// SetupRouter 設置路由，ctx 結束時停止背景清理
func SetupRouter(ctx context.Context, cfg *config.Config, svc *Services) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(requestid.New())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	if svc.Metrics != nil {
		router.Use(svc.Metrics.HTTPMiddleware())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) { common.RespondError(c, common.ErrNotFound) })
	router.NoMethod(func(c *gin.Context) { common.RespondError(c, common.ErrMethodNotAllowed) })

	// 健康檢查與指標不經過限流
	healthHandler := health.NewHandler(cfg.App.Version, svc.Queue, svc.DetailCache, svc.Checks)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	if svc.Metrics != nil {
		router.GET("/metrics", gin.WrapH(svc.Metrics.Handler()))
	}

	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Burst)
		go limiter.Cleanup(ctx, time.Minute, 10*time.Minute)
		api.Use(limiter.Middleware())
	}
	dedup := middleware.NewDeduplicator(cfg.DedupWindow)
	go dedup.Cleanup(ctx, 10*time.Minute)
	api.Use(dedup.Middleware())
	api.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	recipes := recipeHandler.NewHandler(svc.Recipes, svc.Inventory)
	recipeGroup := api.Group("/recipes")
	{
		recipeGroup.GET("/matches", recipes.HandleMatches)
		recipeGroup.GET("/search", recipes.HandleSearch)
		recipeGroup.GET("/:id", recipes.HandleDetail)
	}

	assistant := assistantHandler.NewHandler(svc.Chat, svc.Metrics)
	assistantGroup := api.Group("/assistant")
	{
		assistantGroup.POST("/chat", assistant.HandleChat)
		assistantGroup.GET("/history/:conversation_id", assistant.HandleHistory)
		assistantGroup.GET("/recipes/:name", assistant.HandleRecipe)
	}

	inventory := pantry.NewInventoryHandler(svc.Inventory)
	inventoryGroup := api.Group("/inventory")
	{
		inventoryGroup.GET("", inventory.HandleList)
		inventoryGroup.POST("", inventory.HandleAdd)
		inventoryGroup.POST("/batch", inventory.HandleAddBatch)
		inventoryGroup.PUT("/:id", inventory.HandleUpdate)
		inventoryGroup.DELETE("/:id", inventory.HandleRemove)
	}

	shopping := pantry.NewShoppingHandler(svc.Shopping)
	shoppingGroup := api.Group("/shopping")
	{
		shoppingGroup.GET("", shopping.HandleList)
		shoppingGroup.POST("", shopping.HandleAdd)
		shoppingGroup.POST("/batch", shopping.HandleAddBatch)
		shoppingGroup.PATCH("/:id/toggle", shopping.HandleToggle)
		shoppingGroup.DELETE("/purchased", shopping.HandleClearPurchased)
		shoppingGroup.DELETE("/:id", shopping.HandleRemove)
		shoppingGroup.DELETE("", shopping.HandleClearAll)
	}

	ingredients := recipeHandler.NewIngredientHandler(svc.Ingredients)
	ingredientGroup := api.Group("/ingredients")
	{
		ingredientGroup.GET("/search", ingredients.HandleSearch)
		ingredientGroup.GET("/autocomplete", ingredients.HandleAutocomplete)
		ingredientGroup.GET("/category/:category", ingredients.HandleCategory)
	}

	api.POST("/scan", scanHandler.NewHandler(svc.Scanner).HandleScan)

	users := userHandler.NewHandler(svc.Users)
	userGroup := api.Group("/user")
	{
		userGroup.GET("", users.HandleGet)
		userGroup.POST("/upgrade", users.HandleUpgrade)
		userGroup.POST("/onboarding", users.HandleOnboarding)
		userGroup.POST("/reset-quota", users.HandleResetQuota)
	}

	common.LogInfo("Router setup completed",
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
