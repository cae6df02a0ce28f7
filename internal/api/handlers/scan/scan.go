package scan

import (
	"context"
	"net/http"
	"strings"

	"mealmate/internal/core/scan"
	"mealmate/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Scanner 掃描服務
type Scanner interface {
	Scan(ctx context.Context, imageData string) (*scan.Result, error)
}

// Request POST /scan
type Request struct {
	Image string `json:"image" binding:"required"`
}

// Handler 食材掃描處理程序
type Handler struct {
	scanner Scanner
}

// NewHandler 創建食材掃描處理程序
func NewHandler(scanner Scanner) *Handler {
	return &Handler{scanner: scanner}
}

// HandleScan 辨識圖片中的食材並加入庫存
func (h *Handler) HandleScan(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, common.NewValidationError("image is required"))
		return
	}

	common.LogInfo("收到掃描請求",
		zap.String("image_kind", imageKind(req.Image)),
		zap.Int("payload_bytes", len(req.Image)),
		zap.String("request_id", requestid.Get(c)),
	)

	result, err := h.scanner.Scan(c.Request.Context(), req.Image)
	if err != nil {
		common.LogWarn("掃描失敗",
			zap.Error(err),
			zap.String("request_id", requestid.Get(c)),
		)
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// imageKind 圖片資料種類（只用於日誌）
func imageKind(image string) string {
	switch {
	case strings.HasPrefix(image, "data:image/"):
		if i := strings.Index(image, ";"); i > 0 {
			return "data_uri_" + strings.TrimPrefix(image[:i], "data:image/")
		}
		return "invalid_data_uri"
	case strings.HasPrefix(image, "/9j/"):
		return "base64_jpeg"
	case strings.HasPrefix(image, "iVBORw0KGgo"):
		return "base64_png"
	default:
		return "base64"
	}
}
