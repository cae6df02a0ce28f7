package common

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// RespondError 寫入錯誤響應
func RespondError(c *gin.Context, err error) {
	status, code := StatusOf(err)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:  code,
		Error: PublicMessage(err),
	})
}
