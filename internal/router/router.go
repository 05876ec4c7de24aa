package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhi78nath/universal-app-opener/internal/config"
	"github.com/abhi78nath/universal-app-opener/internal/handler"
	"github.com/abhi78nath/universal-app-opener/internal/middleware"
	"github.com/abhi78nath/universal-app-opener/internal/service"
)

// Dependencies 路由依赖
type Dependencies struct {
	Config           *config.Config
	TranslateService *service.TranslateService
	Logger           *zap.Logger
	Version          string
}

// SetupRouter 设置路由
func SetupRouter(deps *Dependencies) *gin.Engine {
	// 设置 Gin 模式
	if deps.Config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS(&deps.Config.CORS))

	// 创建限流器
	rateLimiter := middleware.NewRateLimiter(&deps.Config.RateLimit)

	// 创建处理器
	translateHandler := handler.NewTranslateHandler(deps.TranslateService, deps.Logger)
	healthHandler := handler.NewHealthHandler(deps.Version)

	// 健康检查 (不限流)
	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/version", healthHandler.Version)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/live", healthHandler.Live)

	// API v1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.IPRateLimit(rateLimiter))
	{
		// 翻译
		v1.POST("/translate", translateHandler.Translate)
		v1.GET("/translate", translateHandler.TranslateByQuery)

		// 平台列表
		v1.GET("/platforms", translateHandler.Platforms)
	}

	return r
}
