package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhi78nath/universal-app-opener/internal/models"
	"github.com/abhi78nath/universal-app-opener/internal/service"
	"github.com/abhi78nath/universal-app-opener/internal/translator"
	"github.com/abhi78nath/universal-app-opener/internal/utils"
)

// TranslateHandler 翻译处理器
type TranslateHandler struct {
	translateService *service.TranslateService
	logger           *zap.Logger
}

// NewTranslateHandler 创建翻译处理器
func NewTranslateHandler(translateService *service.TranslateService, logger *zap.Logger) *TranslateHandler {
	return &TranslateHandler{
		translateService: translateService,
		logger:           logger,
	}
}

// Translate 翻译URL (POST, JSON请求体)
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.translateService.Translate(c.Request.Context(), req.URL)
	if err != nil {
		models.BadRequest(c, err.Error())
		return
	}

	models.Success(c, toTranslateResponse(result))
}

// TranslateByQuery 翻译URL (GET, 查询参数)
func (h *TranslateHandler) TranslateByQuery(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		models.BadRequest(c, utils.ErrEmptyURL.Error())
		return
	}

	result, err := h.translateService.Translate(c.Request.Context(), rawURL)
	if err != nil {
		models.BadRequest(c, err.Error())
		return
	}

	models.Success(c, toTranslateResponse(result))
}

// Platforms 返回已启用的平台列表
func (h *TranslateHandler) Platforms(c *gin.Context) {
	models.Success(c, models.PlatformsResponse{
		Platforms: h.translateService.Platforms(),
	})
}

// toTranslateResponse 转换翻译结果
func toTranslateResponse(result *translator.Result) models.TranslateResponse {
	return models.TranslateResponse{
		Platform: result.Platform,
		WebURL:   result.WebURL,
		IOS:      result.IOS,
		Android:  result.Android,
	}
}
