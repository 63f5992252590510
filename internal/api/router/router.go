package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"face-attendance/backend/config"
	"face-attendance/backend/internal/api/handler"
	"face-attendance/backend/internal/api/middleware"
	"face-attendance/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// 路由路径与既有前端约定保持一致，不加版本前缀
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if cfg.Server.EnableMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// 写接口限流（摄像头轮询识别最容易打爆）
	limited := middleware.RateLimit(rdb, cfg.Server.RateLimit, cfg.Server.RateWindow)

	// ── 业务路由 ──
	r.POST("/register", limited, h.Registration.Register)
	r.POST("/recognize", limited, h.Recognition.Recognize)
	r.POST("/status", h.Status.CheckStatus)
	r.GET("/export", h.Export.ExportUsers)

	admin := r.Group("/admin")
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/user/:reg_no", h.Admin.GetUser)
		admin.DELETE("/user/:reg_no", h.Admin.DeleteUser)
	}

	return r
}
