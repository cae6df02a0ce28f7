package pantry

import (
	"context"
	"net/http"

	"mealmate/internal/core/shopping"
	"mealmate/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// ShoppingService 購物清單操作
type ShoppingService interface {
	AddMultiple(ctx context.Context, items []shopping.Item) ([]shopping.Item, error)
	Remove(ctx context.Context, id string) error
	TogglePurchased(ctx context.Context, id string) (shopping.Item, error)
	ClearPurchased(ctx context.Context) (int64, error)
	ClearAll(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]shopping.Item, error)
}

// ShoppingItemRequest 新增購物清單項目
type ShoppingItemRequest struct {
	IngredientName string  `json:"ingredientName" binding:"required"`
	Quantity       float64 `json:"quantity" binding:"gte=0"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category,omitempty"`
}

// ShoppingBatchRequest 一次新增多項
type ShoppingBatchRequest struct {
	Items []ShoppingItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r ShoppingItemRequest) toItem() shopping.Item {
	return shopping.Item{
		IngredientName: r.IngredientName,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		Category:       r.Category,
	}
}

// ShoppingHandler 購物清單處理程序
type ShoppingHandler struct {
	shopping ShoppingService
}

// NewShoppingHandler 創建購物清單處理程序
func NewShoppingHandler(svc ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shopping: svc}
}

// HandleList GET /shopping
func (h *ShoppingHandler) HandleList(c *gin.Context) {
	items, err := h.shopping.List(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// HandleAdd POST /shopping
func (h *ShoppingHandler) HandleAdd(c *gin.Context) {
	var req ShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, common.NewValidationError("invalid item: "+err.Error()))
		return
	}

	items, err := h.shopping.AddMultiple(c.Request.Context(), []shopping.Item{req.toItem()})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, items[0])
}

// HandleAddBatch POST /shopping/batch
func (h *ShoppingHandler) HandleAddBatch(c *gin.Context) {
	var req ShoppingBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, common.NewValidationError("invalid items: "+err.Error()))
		return
	}

	items := make([]shopping.Item, len(req.Items))
	for i, r := range req.Items {
		items[i] = r.toItem()
	}

	added, err := h.shopping.AddMultiple(c.Request.Context(), items)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": added})
}

// HandleToggle PATCH /shopping/:id/toggle
func (h *ShoppingHandler) HandleToggle(c *gin.Context) {
	item, err := h.shopping.TogglePurchased(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// HandleRemove DELETE /shopping/:id
func (h *ShoppingHandler) HandleRemove(c *gin.Context) {
	if err := h.shopping.Remove(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleClearPurchased DELETE /shopping/purchased
func (h *ShoppingHandler) HandleClearPurchased(c *gin.Context) {
	n, err := h.shopping.ClearPurchased(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// HandleClearAll DELETE /shopping
func (h *ShoppingHandler) HandleClearAll(c *gin.Context) {
	n, err := h.shopping.ClearAll(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
