package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是请求关联 ID 使用的头部名称
const RequestIDHeader = "X-Request-ID"

// RequestID 为每个请求补齐关联 ID：
// 调用方已携带时原样透传，否则生成一个新的 UUID，并通过响应头回传。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}
