package translator

// UnknownHandler 兜底处理器
//
// 无条件接受任意URL: 平台未知时无法定位应用,
// 只返回原始输入作为 WebURL。
type UnknownHandler struct{}

// NewUnknownHandler 创建兜底处理器
func NewUnknownHandler() *UnknownHandler {
	return &UnknownHandler{}
}

// Platform 返回平台标识
func (h *UnknownHandler) Platform() string {
	return PlatformUnknown
}

// Translate 原样返回输入
func (h *UnknownHandler) Translate(rawURL string) (*Result, bool) {
	return &Result{
		Platform: PlatformUnknown,
		WebURL:   rawURL,
	}, true
}
