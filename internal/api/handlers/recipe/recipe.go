package recipe

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"mealmate/internal/core/recipe"
	"mealmate/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeService 食譜查詢
type RecipeService interface {
	FindMatches(ctx context.Context, ingredients []string, number int) ([]recipe.Match, error)
	GetDetail(ctx context.Context, id int) (*recipe.Detail, error)
	Search(ctx context.Context, query string, filters recipe.Filters) ([]recipe.Recipe, error)
}

// InventoryNames 未指定食材時改用庫存
type InventoryNames interface {
	Names(ctx context.Context) ([]string, error)
}

// MatchesQuery 依食材找食譜的查詢參數
type MatchesQuery struct {
	Ingredients string `form:"ingredients"`
	Number      int    `form:"number" binding:"omitempty,min=1,max=100"`
}

// SearchQuery 關鍵字搜尋參數
type SearchQuery struct {
	Query string `form:"query" binding:"required"`
	recipe.Filters
}

// Handler 食譜處理程序
type Handler struct {
	recipes   RecipeService
	inventory InventoryNames
}

// NewHandler 創建新的食譜處理程序
func NewHandler(recipes RecipeService, inventory InventoryNames) *Handler {
	return &Handler{recipes: recipes, inventory: inventory}
}

// HandleMatches GET /recipes/matches
func (h *Handler) HandleMatches(c *gin.Context) {
	var q MatchesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondError(c, common.NewValidationError("invalid query: "+err.Error()))
		return
	}

	var ingredients []string
	for _, name := range strings.Split(q.Ingredients, ",") {
		if name = strings.TrimSpace(name); name != "" {
			ingredients = append(ingredients, name)
		}
	}
	if len(ingredients) == 0 && h.inventory != nil {
		names, err := h.inventory.Names(c.Request.Context())
		if err != nil {
			common.RespondError(c, err)
			return
		}
		ingredients = names
	}

	number := q.Number
	if number == 0 {
		number = recipe.DefaultMatchCount
	}

	matches, err := h.recipes.FindMatches(c.Request.Context(), ingredients, number)
	if err != nil {
		common.LogError("食譜配對失敗",
			zap.Error(err),
			zap.String("request_id", requestid.Get(c)),
		)
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
		"recipes":     matches,
	})
}

// HandleSearch GET /recipes/search
func (h *Handler) HandleSearch(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondError(c, common.NewValidationError("query is required"))
		return
	}

	// diet 可以是 diet=a,b 或 diet=a&diet=b
	var diets []string
	for _, d := range q.Diet {
		for _, part := range strings.Split(d, ",") {
			if part = strings.TrimSpace(part); part != "" {
				diets = append(diets, part)
			}
		}
	}
	q.Diet = diets

	results, err := h.recipes.Search(c.Request.Context(), q.Query, q.Filters)
	if err != nil {
		common.LogError("食譜搜尋失敗",
			zap.Error(err),
			zap.String("query", q.Query),
			zap.String("request_id", requestid.Get(c)),
		)
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": results})
}

// HandleDetail GET /recipes/:id
func (h *Handler) HandleDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		common.RespondError(c, common.NewValidationError("invalid recipe id"))
		return
	}

	detail, err := h.recipes.GetDetail(c.Request.Context(), id)
	if err != nil {
		common.LogError("取得食譜詳情失敗",
			zap.Error(err),
			zap.Int("recipe_id", id),
			zap.String("request_id", requestid.Get(c)),
		)
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
