package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/abhi78nath/universal-app-opener/internal/config"
	"github.com/abhi78nath/universal-app-opener/internal/router"
	"github.com/abhi78nath/universal-app-opener/internal/service"
)

const version = "1.0.0"

func main() {
	// 1. 初始化日志
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. 加载配置
	cfg, err := config.LoadConfig("config/dev.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Starting Universal App Opener",
		zap.String("version", version),
		zap.Int("port", cfg.Server.Port))

	// 3. 初始化翻译服务
	translateService := service.NewTranslateService(cfg, logger)
	logger.Info("✓ Translate service initialized",
		zap.Strings("platforms", translateService.Platforms()))

	// 4. 设置路由
	deps := &router.Dependencies{
		Config:           cfg,
		TranslateService: translateService,
		Logger:           logger,
		Version:          version,
	}
	r := router.SetupRouter(deps)

	// 5. 创建 HTTP 服务器
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r,
		ReadTimeout:    cfg.Server.GetReadTimeout(),
		WriteTimeout:   cfg.Server.GetWriteTimeout(),
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// 6. 启动服务器
	go func() {
		logger.Info("✓ HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 7. 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// 8. 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}
