package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationConfig 验证配置
type ValidationConfig struct {
	// 是否启用验证
	Enabled bool
	// 最大请求体大小（字节）
	MaxBodySize int64
	// 是否验证Content-Type
	ValidateContentType bool
	// 允许的Content-Type列表
	AllowedContentTypes []string
}

// NewValidationConfig 创建默认验证配置
// 整库文档可能较大，上限放宽到32MB
func NewValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		Enabled:             true,
		MaxBodySize:         32 * 1024 * 1024,
		ValidateContentType: true,
		AllowedContentTypes: []string{
			"application/json",
		},
	}
}

// ValidationMiddleware 请求验证中间件
// 限制请求体大小并校验写请求的Content-Type
func ValidationMiddleware(config *ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled {
			c.Next()
			return
		}

		// 限制请求体大小
		if config.MaxBodySize > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBodySize)
		}

		// 只校验带请求体的方法
		if config.ValidateContentType && hasRequestBody(c.Request.Method) {
			contentType := c.ContentType()
			if contentType != "" && !isAllowedContentType(contentType, config.AllowedContentTypes) {
				c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
					"error":   "unsupported_media_type",
					"message": "Content-Type not allowed",
				})
				return
			}
		}

		c.Next()
	}
}

// hasRequestBody 判断方法是否携带请求体
func hasRequestBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// isAllowedContentType 检查Content-Type是否在允许列表中
func isAllowedContentType(contentType string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(contentType, a) {
			return true
		}
	}
	return false
}
