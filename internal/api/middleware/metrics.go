package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"face-attendance/backend/pkg/metrics"
)

// Metrics 请求计数中间件
// 以注册的路由模板（而非原始 URL）作为 path 维度，避免高基数标签
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
