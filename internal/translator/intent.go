package translator

import "net/url"

// intent URI 的固定动作与类别
const (
	intentAction   = "android.intent.action.VIEW"
	intentCategory = "android.intent.category.BROWSABLE"
)

// BuildIntentURI 构造 Android intent URI
//
// fallbackURL 作为单个参数值整体百分号编码,
// 避免其中的 ';' '#' 破坏 intent 语法。
func BuildIntentURI(authority, scheme, pkg, fallbackURL string) string {
	return "intent://" + authority +
		"#Intent" +
		";scheme=" + scheme +
		";package=" + pkg +
		";action=" + intentAction +
		";category=" + intentCategory +
		";S.browser_fallback_url=" + url.QueryEscape(fallbackURL) +
		";end"
}

// BuildGeoURI 构造 geo URI (intent 风格的简化替代形式)
//
// 有查询词时输出 geo:<lat>,<lng>?q=<query>, 否则输出 geo:<lat>,<lng>?z=<zoom>。
func BuildGeoURI(lat, lng, zoom, query string) string {
	if query != "" {
		return "geo:" + lat + "," + lng + "?q=" + url.QueryEscape(query)
	}
	return "geo:" + lat + "," + lng + "?z=" + zoom
}
