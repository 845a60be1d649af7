package middleware

import (
	"strconv"
	"time"

	"github.com/assetdesk/backend/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware HTTP请求指标中间件
// 按路由模板而不是原始路径打点，避免标签基数爆炸
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// 未匹配到路由（404），统一归到一个桶
			path = "unmatched"
		}

		m.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		m.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
