package translator

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhi78nath/universal-app-opener/internal/utils"
)

// MapsStyle Android 端次级 URI 风格
type MapsStyle string

const (
	// MapsStyleIntent intent URI 风格 (与其他平台处理器一致, 默认)
	MapsStyleIntent MapsStyle = "intent"
	// MapsStyleGeo geo URI 风格
	MapsStyleGeo MapsStyle = "geo"
)

const (
	mapsIOSScheme      = "comgooglemaps"
	mapsIntentScheme   = "https"
	mapsAndroidPackage = "com.google.android.apps.maps"
)

// mapsShape URL形态标签
type mapsShape int

const (
	mapsShapeQuery       mapsShape = iota // 显式查询参数
	mapsShapeSearchPath                   // search/<term> 路径
	mapsShapeDirections                   // dir/<start>/<end> 路径
	mapsShapePlace                        // place/<name>/@<lat>,<lng>,<zoom> 路径
	mapsShapeCoordinates                  // 纯 @<lat>,<lng>,<zoom> 路径
)

// mapsMatch 识别结果
//
// query 为空当且仅当形态是纯坐标。
type mapsMatch struct {
	shape mapsShape
	query string
	lat   string
	lng   string
	zoom  string
}

var (
	mapsHostRe   = regexp.MustCompile(`^(?:www\.|maps\.)?google\.[a-z.]+$`)
	mapsSearchRe = regexp.MustCompile(`^/(?:maps/)?search/([^/]+)`)
	mapsDirRe    = regexp.MustCompile(`^/(?:maps/)?dir/([^/]+)/([^/]+)`)
	mapsPlaceRe  = regexp.MustCompile(`^/(?:maps/)?place/([^/]+)/@(-?[0-9]+(?:\.[0-9]+)?),(-?[0-9]+(?:\.[0-9]+)?),([0-9]+(?:\.[0-9]+)?)([zm])`)
	mapsCoordsRe = regexp.MustCompile(`^/(?:maps/)?@(-?[0-9]+(?:\.[0-9]+)?),(-?[0-9]+(?:\.[0-9]+)?),([0-9]+(?:\.[0-9]+)?)([zm])`)
)

// GoogleMapsHandler Google地图处理器
//
// 五种URL形态, 按从具体到宽泛的顺序识别;
// Android 端次级URI风格 (intent/geo) 由配置决定。
type GoogleMapsHandler struct {
	style MapsStyle
}

// NewGoogleMapsHandler 创建Google地图处理器
func NewGoogleMapsHandler(style MapsStyle) *GoogleMapsHandler {
	if style != MapsStyleGeo {
		style = MapsStyleIntent
	}
	return &GoogleMapsHandler{style: style}
}

// Platform 返回平台标识
func (h *GoogleMapsHandler) Platform() string {
	return PlatformGoogleMaps
}

// Translate 尝试翻译Google地图URL
func (h *GoogleMapsHandler) Translate(rawURL string) (*Result, bool) {
	m, ok := h.recognize(rawURL)
	if !ok {
		return nil, false
	}
	return h.build(rawURL, m), true
}

// recognize 按形态优先级识别URL
func (h *GoogleMapsHandler) recognize(rawURL string) (mapsMatch, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return mapsMatch{}, false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || !mapsHostRe.MatchString(u.Host) {
		return mapsMatch{}, false
	}

	// 1. 显式查询参数 (仅限 /maps 路径或 maps. 子域, 避免误吞普通搜索URL)
	if strings.HasPrefix(u.Path, "/maps") || strings.HasPrefix(u.Host, "maps.") {
		values := u.Query()
		q := values.Get("q")
		if q == "" {
			q = values.Get("query")
		}
		if q = utils.SanitizeString(q); q != "" {
			return mapsMatch{shape: mapsShapeQuery, query: q}, true
		}
	}

	// 2. search/<term> 路径
	if m := mapsSearchRe.FindStringSubmatch(u.Path); m != nil {
		if q := decodePathSegment(m[1]); q != "" {
			return mapsMatch{shape: mapsShapeSearchPath, query: q}, true
		}
	}

	// 3. dir/<start>/<end> 路径, 归一为单个查询串
	if m := mapsDirRe.FindStringSubmatch(u.Path); m != nil {
		start := decodePathSegment(m[1])
		end := decodePathSegment(m[2])
		if start != "" && end != "" {
			return mapsMatch{shape: mapsShapeDirections, query: start + " to " + end}, true
		}
	}

	// 4. place/<name>/@<lat>,<lng>,<zoom> 路径
	if m := mapsPlaceRe.FindStringSubmatch(u.Path); m != nil {
		name := decodePathSegment(m[1])
		zoom, ok := convertZoom(m[4], m[5])
		if name != "" && ok {
			return mapsMatch{
				shape: mapsShapePlace,
				query: name,
				lat:   m[2],
				lng:   m[3],
				zoom:  zoom,
			}, true
		}
	}

	// 5. 纯坐标路径
	if m := mapsCoordsRe.FindStringSubmatch(u.Path); m != nil {
		if zoom, ok := convertZoom(m[3], m[4]); ok {
			return mapsMatch{
				shape: mapsShapeCoordinates,
				lat:   m[1],
				lng:   m[2],
				zoom:  zoom,
			}, true
		}
	}

	return mapsMatch{}, false
}

// build 构造翻译结果
//
// 凡是能推导出查询串的形态 (查询参数/搜索/路线/地点) 都归一为
// 规范的按查询搜索形式, 使返回的 WebURL 成为不动点;
// 纯坐标形态没有查询串, WebURL 保持原始输入。
func (h *GoogleMapsHandler) build(rawURL string, m mapsMatch) *Result {
	if m.shape == mapsShapeCoordinates {
		center := m.lat + "," + m.lng
		webURL := "https://www.google.com/maps/@" + center + "," + m.zoom + "z"

		android := BuildIntentURI("www.google.com/maps/@"+center+","+m.zoom+"z",
			mapsIntentScheme, mapsAndroidPackage, webURL)
		if h.style == MapsStyleGeo {
			android = BuildGeoURI(m.lat, m.lng, m.zoom, "")
		}

		return &Result{
			Platform: PlatformGoogleMaps,
			WebURL:   rawURL,
			IOS:      mapsIOSScheme + "://?center=" + center + "&zoom=" + m.zoom,
			Android:  android,
		}
	}

	encoded := url.QueryEscape(m.query)
	webURL := "https://www.google.com/maps?q=" + encoded

	android := BuildIntentURI("www.google.com/maps?q="+encoded,
		mapsIntentScheme, mapsAndroidPackage, webURL)
	if h.style == MapsStyleGeo {
		lat, lng := m.lat, m.lng
		if lat == "" {
			lat, lng = "0", "0"
		}
		android = BuildGeoURI(lat, lng, m.zoom, m.query)
	}

	return &Result{
		Platform: PlatformGoogleMaps,
		WebURL:   webURL,
		IOS:      mapsIOSScheme + "://?q=" + encoded,
		Android:  android,
	}
}

// convertZoom 缩放值转换
//
// 单位 z 原样透传; 单位 m (地面距离米数) 按
// round(18 - log2(m/500)) 换算后钳制到 [1, 20]。
func convertZoom(value, unit string) (string, bool) {
	if unit == "z" {
		return value, true
	}

	meters, err := strconv.ParseFloat(value, 64)
	if err != nil || meters <= 0 {
		return "", false
	}

	z := math.Round(18 - math.Log2(meters/500))
	if z < 1 {
		z = 1
	}
	if z > 20 {
		z = 20
	}
	return strconv.Itoa(int(z)), true
}

// decodePathSegment 解码路径段中的地名/查询词
//
// Google地图用 '+' 表示空格。
func decodePathSegment(segment string) string {
	return utils.SanitizeString(strings.ReplaceAll(segment, "+", " "))
}
