package translator

// 支持的平台标识
const (
	PlatformGoogleMaps = "googlemaps"
	PlatformYouTube    = "youtube"
	PlatformZoom       = "zoom"
	PlatformUnknown    = "unknown"
)

// Result 翻译结果
//
// WebURL 永远非空; 未识别的URL对应 Platform == "unknown",
// 此时 IOS/Android 为空, WebURL 为原始输入。
type Result struct {
	Platform string `json:"platform"`
	WebURL   string `json:"web_url"`
	IOS      string `json:"ios,omitempty"`
	Android  string `json:"android,omitempty"`
}
