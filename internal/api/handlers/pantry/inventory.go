package pantry

import (
	"context"
	"net/http"
	"time"

	"mealmate/internal/core/inventory"
	"mealmate/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// InventoryService 庫存操作
type InventoryService interface {
	AddMultiple(ctx context.Context, items []inventory.Item) ([]inventory.Item, error)
	Remove(ctx context.Context, id string) error
	Update(ctx context.Context, id string, patch inventory.Patch) (inventory.Item, error)
	List(ctx context.Context) ([]inventory.Item, error)
}

// InventoryItemRequest 新增庫存食材，分類不認得時存成 other
type InventoryItemRequest struct {
	Name           string     `json:"name" binding:"required"`
	Category       string     `json:"category"`
	Quantity       *float64   `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	Unit           string     `json:"unit,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	ImageURL       string     `json:"imageUrl,omitempty"`
}

// InventoryBatchRequest 一次新增多項
type InventoryBatchRequest struct {
	Items []InventoryItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r InventoryItemRequest) toItem() inventory.Item {
	return inventory.Item{
		Name:           r.Name,
		Category:       inventory.Category(r.Category),
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		ExpirationDate: r.ExpirationDate,
		ImageURL:       r.ImageURL,
		Source:         inventory.SourceManual,
	}
}

// InventoryHandler 庫存處理程序
type InventoryHandler struct {
	inventory InventoryService
}

// NewInventoryHandler 創建庫存處理程序
func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: svc}
}

// HandleList GET /inventory
func (h *InventoryHandler) HandleList(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// HandleAdd POST /inventory
func (h *InventoryHandler) HandleAdd(c *gin.Context) {
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, common.NewValidationError("invalid item: "+err.Error()))
		return
	}

	items, err := h.inventory.AddMultiple(c.Request.Context(), []inventory.Item{req.toItem()})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, items[0])
}

// HandleAddBatch POST /inventory/batch
func (h *InventoryHandler) HandleAddBatch(c *gin.Context) {
	var req InventoryBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, common.NewValidationError("invalid items: "+err.Error()))
		return
	}

	items := make([]inventory.Item, len(req.Items))
	for i, r := range req.Items {
		items[i] = r.toItem()
	}

	added, err := h.inventory.AddMultiple(c.Request.Context(), items)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": added})
}

// HandleUpdate PUT /inventory/:id
func (h *InventoryHandler) HandleUpdate(c *gin.Context) {
	var patch inventory.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.RespondError(c, common.NewValidationError("invalid update: "+err.Error()))
		return
	}

	item, err := h.inventory.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// HandleRemove DELETE /inventory/:id
func (h *InventoryHandler) HandleRemove(c *gin.Context) {
	if err := h.inventory.Remove(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
