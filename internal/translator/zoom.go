package translator

import "regexp"

const (
	zoomIOSScheme      = "zoomus"
	zoomIntentScheme   = "zoomus"
	zoomAndroidPackage = "us.zoom.videomeetings"
)

// 单一形态: 任意 zoom.us 子域下的 /j/<会议号>, 可选 pwd 参数
var zoomRe = regexp.MustCompile(`^https?://(?:[A-Za-z0-9-]+\.)*zoom\.us/j/(\d+)(?:\?(?:[^#&]*&)*pwd=([A-Za-z0-9.]+))?`)

// zoomMatch 识别结果
type zoomMatch struct {
	meetingID string
	password  string
}

// ZoomHandler Zoom会议链接处理器
type ZoomHandler struct{}

// NewZoomHandler 创建Zoom处理器
func NewZoomHandler() *ZoomHandler {
	return &ZoomHandler{}
}

// Platform 返回平台标识
func (h *ZoomHandler) Platform() string {
	return PlatformZoom
}

// Translate 尝试翻译Zoom会议URL
func (h *ZoomHandler) Translate(rawURL string) (*Result, bool) {
	m, ok := h.recognize(rawURL)
	if !ok {
		return nil, false
	}
	return h.build(m), true
}

// recognize 提取会议号与可选密码
func (h *ZoomHandler) recognize(rawURL string) (zoomMatch, bool) {
	m := zoomRe.FindStringSubmatch(rawURL)
	if m == nil {
		return zoomMatch{}, false
	}
	return zoomMatch{meetingID: m[1], password: m[2]}, true
}

// build 构造翻译结果
//
// confno 参数串在应用URI和次级URI中原样复用;
// 密码缺失时整段省略, 不渲染空的 pwd=。
func (h *ZoomHandler) build(m zoomMatch) *Result {
	params := "confno=" + m.meetingID
	if m.password != "" {
		params += "&pwd=" + m.password
	}

	webURL := "https://zoom.us/j/" + m.meetingID
	if m.password != "" {
		webURL += "?pwd=" + m.password
	}

	return &Result{
		Platform: PlatformZoom,
		WebURL:   webURL,
		IOS:      zoomIOSScheme + "://zoom.us/join?" + params,
		Android: BuildIntentURI("zoom.us/join?"+params,
			zoomIntentScheme, zoomAndroidPackage, webURL),
	}
}
