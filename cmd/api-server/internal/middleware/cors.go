package middleware

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CORSConfig CORS配置
type CORSConfig struct {
	// 是否启用CORS
	Enabled bool
	// 允许的源列表（* 表示所有源）
	AllowedOrigins []string
	// 允许的HTTP方法
	AllowedMethods []string
	// 允许的请求头
	AllowedHeaders []string
	// 暴露给客户端的响应头
	ExposedHeaders []string
	// 是否允许携带凭证（cookies）
	AllowCredentials bool
	// 预检请求缓存时间（秒）
	MaxAge int
}

// DefaultCORSConfig 创建默认CORS配置
// 桌面客户端和内网前端都走本地源，默认放开
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		Enabled: true,
		AllowedOrigins: []string{
			"*",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Origin",
			"Content-Type",
			"Content-Length",
			"Accept",
			"Accept-Encoding",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"X-Request-ID",
		},
		AllowCredentials: false,
		MaxAge:           12 * 3600, // 12小时
	}
}

// CORSMiddleware CORS中间件
func CORSMiddleware(config *CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled {
			c.Next()
			return
		}

		origin := c.Request.Header.Get("Origin")

		// 如果没有Origin头，跳过CORS处理（同源请求）
		if origin == "" {
			c.Next()
			return
		}

		// 检查origin是否在允许列表中
		if !isAllowedOrigin(origin, config.AllowedOrigins) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden_origin",
				"message": "Origin not allowed",
			})
			return
		}

		// 设置CORS响应头
		c.Header("Access-Control-Allow-Origin", origin)

		if config.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if len(config.ExposedHeaders) > 0 {
			c.Header("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
		}

		// 处理预检请求（OPTIONS）
		if c.Request.Method == http.MethodOptions {
			if len(config.AllowedMethods) > 0 {
				c.Header("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
			}

			if len(config.AllowedHeaders) > 0 {
				c.Header("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
			}

			if config.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
			}

			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin 检查origin是否在允许列表中
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		// 支持通配符
		if allowed == "*" {
			return true
		}

		// 精确匹配
		if allowed == origin {
			return true
		}

		// 支持子域名通配符（例如：*.example.com）
		if strings.HasPrefix(allowed, "*.") {
			domain := strings.TrimPrefix(allowed, "*.")
			if strings.HasSuffix(origin, domain) {
				return true
			}
		}
	}

	return false
}

// RequestID 请求ID中间件
// 为每个请求生成唯一ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 尝试从请求头获取ID
		requestID := c.GetHeader("X-Request-ID")

		// 如果没有，生成新ID
		if requestID == "" {
			requestID = generateRequestID()
		}

		// 设置到上下文和响应头
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// generateRequestID 生成请求ID
func generateRequestID() string {
	// 简单实现：时间戳 + 随机数
	return fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Int63())
}
