package translator

// Handler 平台处理器接口
//
// 每个处理器内部分为识别和构造两步: 识别失败返回 false,
// 不抛错误; 构造对相同输入总是产生相同结果。
type Handler interface {
	// Platform 返回平台标识
	Platform() string
	// Translate 尝试翻译URL, 无法识别时返回 (nil, false)
	Translate(rawURL string) (*Result, bool)
}

// Registry 处理器注册表
//
// 处理器列表在启动时构建一次, 之后只读,
// 因此 Translate 可被多个 goroutine 并发调用。
type Registry struct {
	handlers []Handler
	fallback *UnknownHandler
}

// NewRegistry 创建注册表, 兜底处理器始终放在最后
func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{
		handlers: handlers,
		fallback: NewUnknownHandler(),
	}
}

// Translate 按顺序尝试各处理器, 返回第一个成功的翻译结果
//
// 所有处理器都未识别时返回兜底结果, 永不失败。
func (r *Registry) Translate(rawURL string) *Result {
	for _, h := range r.handlers {
		if result, ok := h.Translate(rawURL); ok {
			return result
		}
	}

	result, _ := r.fallback.Translate(rawURL)
	return result
}

// Platforms 返回已注册的平台标识列表
func (r *Registry) Platforms() []string {
	platforms := make([]string, 0, len(r.handlers))
	for _, h := range r.handlers {
		platforms = append(platforms, h.Platform())
	}
	return platforms
}
