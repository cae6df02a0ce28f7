package user

import (
	"context"
	"net/http"

	"mealmate/internal/core/user"
	"mealmate/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Service 使用者服務
type Service interface {
	Get(ctx context.Context) (user.User, error)
	UpgradeToPremium(ctx context.Context) (user.User, error)
	CompleteOnboarding(ctx context.Context) (user.User, error)
	ResetScanQuota(ctx context.Context) (user.User, error)
}

// Response 使用者與剩餘掃描次數
type Response struct {
	user.User
	ScansRemaining int `json:"scansRemaining"`
}

// Handler 使用者處理程序
type Handler struct {
	users Service
}

// NewHandler 創建使用者處理程序
func NewHandler(users Service) *Handler {
	return &Handler{users: users}
}

func (h *Handler) respond(c *gin.Context, u user.User, err error) {
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{User: u, ScansRemaining: user.ScansRemaining(u)})
}

// HandleGet GET /user
func (h *Handler) HandleGet(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context())
	h.respond(c, u, err)
}

// HandleUpgrade POST /user/upgrade
func (h *Handler) HandleUpgrade(c *gin.Context) {
	u, err := h.users.UpgradeToPremium(c.Request.Context())
	h.respond(c, u, err)
}

// HandleOnboarding POST /user/onboarding
func (h *Handler) HandleOnboarding(c *gin.Context) {
	u, err := h.users.CompleteOnboarding(c.Request.Context())
	h.respond(c, u, err)
}

// HandleResetQuota POST /user/reset-quota
func (h *Handler) HandleResetQuota(c *gin.Context) {
	u, err := h.users.ResetScanQuota(c.Request.Context())
	h.respond(c, u, err)
}
