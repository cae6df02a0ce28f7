package assistant

import (
	"context"
	"net/http"

	"mealmate/internal/core/assistant"
	"mealmate/internal/core/chat"
	"mealmate/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Conversations 對話服務
type Conversations interface {
	Send(ctx context.Context, conversationID, text, imageURI string) (*chat.Exchange, error)
	History(ctx context.Context, conversationID string) ([]chat.Message, error)
}

// Recorder 助理回覆指標
type Recorder interface {
	AssistantReply(intent string)
}

// ChatRequest POST /assistant/chat
type ChatRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message" binding:"required"`
	ImageURI       string `json:"imageUri,omitempty"`
}

// Handler 料理助理處理程序
type Handler struct {
	conversations Conversations
	recorder      Recorder
}

// NewHandler 創建料理助理處理程序
func NewHandler(conversations Conversations, recorder Recorder) *Handler {
	return &Handler{conversations: conversations, recorder: recorder}
}

// HandleChat 送出訊息並取得回覆
func (h *Handler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, common.NewValidationError("message is required"))
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = chat.DefaultConversationID
	}

	exchange, err := h.conversations.Send(c.Request.Context(), conversationID, req.Message, req.ImageURI)
	if err != nil {
		common.LogError("助理回覆失敗",
			zap.Error(err),
			zap.String("conversation_id", conversationID),
			zap.String("request_id", requestid.Get(c)),
		)
		common.RespondError(c, err)
		return
	}

	if h.recorder != nil {
		h.recorder.AssistantReply(exchange.Answer.Intent)
	}
	c.JSON(http.StatusOK, exchange)
}

// HandleHistory GET /assistant/history/:conversation_id
func (h *Handler) HandleHistory(c *gin.Context) {
	messages, err := h.conversations.History(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// HandleRecipe GET /assistant/recipes/:name，找不到時仍回傳 200 與提示文字
func (h *Handler) HandleRecipe(c *gin.Context) {
	name := c.Param("name")
	r, found := assistant.FindRecipe(name)
	resp := gin.H{
		"found": found,
		"text":  assistant.GetRecipeDetails(name),
	}
	if found {
		resp["recipe"] = r
	}
	c.JSON(http.StatusOK, resp)
}
