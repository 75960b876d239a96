package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 请求链路 ID 的 HTTP 头
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey gin 上下文中保存请求 ID 的键
	RequestIDKey = "request_id"
)

// RequestID 沿用上游传入的请求 ID，没有则生成一个 UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID 从上下文中取出请求 ID，未设置时返回空字符串
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
