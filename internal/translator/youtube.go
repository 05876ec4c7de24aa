package translator

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	youtubeIOSScheme      = "vnd.youtube"
	youtubeIntentScheme   = "https"
	youtubeAndroidPackage = "com.google.android.youtube"
)

var (
	// 视频ID为固定11位
	youtubeIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	// h-m-s 组合时间戳, 各单位至多一次且顺序固定
	youtubeTimestampRe = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)
)

// youtubeMatch 识别结果
type youtubeMatch struct {
	videoID string
	seconds int
}

// YouTubeHandler YouTube处理器
//
// 五种独立URL形态: watch?v= 长链接, youtu.be 短链接,
// /shorts/ /embed/ /live/ 路径; 附带可选时间戳。
type YouTubeHandler struct{}

// NewYouTubeHandler 创建YouTube处理器
func NewYouTubeHandler() *YouTubeHandler {
	return &YouTubeHandler{}
}

// Platform 返回平台标识
func (h *YouTubeHandler) Platform() string {
	return PlatformYouTube
}

// Translate 尝试翻译YouTube URL
func (h *YouTubeHandler) Translate(rawURL string) (*Result, bool) {
	m, ok := h.recognize(rawURL)
	if !ok {
		return nil, false
	}
	return h.build(m), true
}

// recognize 提取视频ID与可选时间戳
func (h *YouTubeHandler) recognize(rawURL string) (youtubeMatch, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return youtubeMatch{}, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return youtubeMatch{}, false
	}

	videoID := extractYouTubeID(u)
	if !youtubeIDRe.MatchString(videoID) {
		return youtubeMatch{}, false
	}

	return youtubeMatch{
		videoID: videoID,
		seconds: extractTimestamp(u.Query()),
	}, true
}

// extractYouTubeID 从各形态中提取视频ID
func extractYouTubeID(u *url.URL) string {
	host := strings.TrimPrefix(u.Host, "www.")
	host = strings.TrimPrefix(host, "m.")

	// 短链接: youtu.be/<id>
	if host == "youtu.be" {
		return strings.Trim(u.Path, "/")
	}

	if host != "youtube.com" {
		return ""
	}

	// 长链接: /watch?v=<id>, v 参数可出现在任意位置
	if u.Path == "/watch" {
		return u.Query().Get("v")
	}

	// 路径形态: /shorts/<id>, /embed/<id>, /live/<id>
	for _, prefix := range []string{"/shorts/", "/embed/", "/live/"} {
		if strings.HasPrefix(u.Path, prefix) {
			rest := strings.TrimPrefix(u.Path, prefix)
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				rest = rest[:i]
			}
			return rest
		}
	}

	return ""
}

// extractTimestamp 从 t= 或 start= 参数提取时间戳秒数
//
// t 接受纯秒数/带s后缀/h-m-s组合; start 只接受纯秒数。
func extractTimestamp(values url.Values) int {
	if t := values.Get("t"); t != "" {
		return parseTimestampToSeconds(t)
	}
	if s := values.Get("start"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// parseTimestampToSeconds 时间戳字符串转秒数
//
// 纯数字直接按秒解析; h-m-s 组合按各单位求和, 缺失单位计零;
// 无法识别的输入计零。
func parseTimestampToSeconds(s string) int {
	if s == "" {
		return 0
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	m := youtubeTimestampRe.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return 0
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	return hours*3600 + minutes*60 + seconds
}

// build 构造翻译结果
//
// 时间戳仅在严格为正时附加, 不渲染 &t=0s。
func (h *YouTubeHandler) build(m youtubeMatch) *Result {
	suffix := ""
	if m.seconds > 0 {
		suffix = "&t=" + strconv.Itoa(m.seconds) + "s"
	}

	webURL := "https://www.youtube.com/watch?v=" + m.videoID + suffix

	return &Result{
		Platform: PlatformYouTube,
		WebURL:   webURL,
		IOS:      youtubeIOSScheme + "://watch?v=" + m.videoID + suffix,
		Android: BuildIntentURI("www.youtube.com/watch?v="+m.videoID+suffix,
			youtubeIntentScheme, youtubeAndroidPackage, webURL),
	}
}
