package recipe

import (
	"context"
	"net/http"

	"mealmate/internal/core/ingredient"
	"mealmate/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// IngredientLookup 食材查詢
type IngredientLookup interface {
	Search(ctx context.Context, query string) []ingredient.Result
	Autocomplete(ctx context.Context, query string) []ingredient.Result
	ByCategory(ctx context.Context, category string) []ingredient.Result
}

// IngredientHandler 食材查詢處理程序，上游錯誤一律回傳空清單
type IngredientHandler struct {
	lookup IngredientLookup
}

// NewIngredientHandler 創建食材查詢處理程序
func NewIngredientHandler(lookup IngredientLookup) *IngredientHandler {
	return &IngredientHandler{lookup: lookup}
}

// HandleSearch GET /ingredients/search?query=
func (h *IngredientHandler) HandleSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		common.RespondError(c, common.NewValidationError("query is required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": h.lookup.Search(c.Request.Context(), query)})
}

// HandleAutocomplete GET /ingredients/autocomplete?query=
func (h *IngredientHandler) HandleAutocomplete(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		common.RespondError(c, common.NewValidationError("query is required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": h.lookup.Autocomplete(c.Request.Context(), query)})
}

// HandleCategory GET /ingredients/category/:category
func (h *IngredientHandler) HandleCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ingredients": h.lookup.ByCategory(c.Request.Context(), c.Param("category"))})
}
