package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/abhi78nath/universal-app-opener/internal/config"
	"github.com/abhi78nath/universal-app-opener/internal/translator"
	"github.com/abhi78nath/universal-app-opener/internal/utils"
)

// TranslateService 翻译服务
type TranslateService struct {
	registry *translator.Registry
	logger   *zap.Logger
}

// NewTranslateService 创建翻译服务
func NewTranslateService(cfg *config.Config, logger *zap.Logger) *TranslateService {
	var handlers []translator.Handler

	// Google地图处理器
	if platformCfg, ok := cfg.Platforms[translator.PlatformGoogleMaps]; ok && platformCfg.Enabled {
		handlers = append(handlers, translator.NewGoogleMapsHandler(translator.MapsStyle(platformCfg.AndroidStyle)))
	}

	// YouTube处理器
	if platformCfg, ok := cfg.Platforms[translator.PlatformYouTube]; ok && platformCfg.Enabled {
		handlers = append(handlers, translator.NewYouTubeHandler())
	}

	// Zoom处理器
	if platformCfg, ok := cfg.Platforms[translator.PlatformZoom]; ok && platformCfg.Enabled {
		handlers = append(handlers, translator.NewZoomHandler())
	}

	return &TranslateService{
		registry: translator.NewRegistry(handlers...),
		logger:   logger,
	}
}

// Translate 将网页URL翻译为各端深链
//
// 翻译本身永不失败: 未识别或畸形的URL降级为未知结果;
// 只有空输入返回错误。
func (s *TranslateService) Translate(ctx context.Context, rawURL string) (*translator.Result, error) {
	// 1. 校验输入
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, utils.ErrEmptyURL
	}

	// 2. 非http(s)输入直接降级为未知结果
	if !utils.IsValidURL(rawURL) {
		s.logger.Warn("invalid URL, falling back to unknown", zap.String("url", rawURL))
		return &translator.Result{
			Platform: translator.PlatformUnknown,
			WebURL:   rawURL,
		}, nil
	}

	// 3. 分发到平台处理器
	result := s.registry.Translate(rawURL)

	s.logger.Info("translate",
		zap.String("url", rawURL),
		zap.String("platform", result.Platform),
		zap.Bool("has_ios", result.IOS != ""),
		zap.Bool("has_android", result.Android != ""))

	return result, nil
}

// Platforms 返回已启用的平台标识列表
func (s *TranslateService) Platforms() []string {
	return s.registry.Platforms()
}
