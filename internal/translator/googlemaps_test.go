package translator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleMapsRecognizeShapes(t *testing.T) {
	h := NewGoogleMapsHandler(MapsStyleIntent)

	tests := []struct {
		name      string
		url       string
		wantMatch bool
		wantShape mapsShape
		wantQuery string
		wantZoom  string
	}{
		{
			name:      "显式q参数",
			url:       "https://www.google.com/maps?q=coffee+near+me",
			wantMatch: true,
			wantShape: mapsShapeQuery,
			wantQuery: "coffee near me",
		},
		{
			name:      "显式query参数",
			url:       "https://www.google.com/maps?query=pizza",
			wantMatch: true,
			wantShape: mapsShapeQuery,
			wantQuery: "pizza",
		},
		{
			name:      "maps子域加q参数",
			url:       "https://maps.google.com/?q=pizza",
			wantMatch: true,
			wantShape: mapsShapeQuery,
			wantQuery: "pizza",
		},
		{
			name:      "search路径",
			url:       "https://www.google.com/maps/search/sushi+bar",
			wantMatch: true,
			wantShape: mapsShapeSearchPath,
			wantQuery: "sushi bar",
		},
		{
			name:      "dir路径归一为查询串",
			url:       "https://www.google.com/maps/dir/Central+Park/Times+Square",
			wantMatch: true,
			wantShape: mapsShapeDirections,
			wantQuery: "Central Park to Times Square",
		},
		{
			name:      "place路径带坐标",
			url:       "https://www.google.com/maps/place/Eiffel+Tower/@48.8584,2.2945,17z",
			wantMatch: true,
			wantShape: mapsShapePlace,
			wantQuery: "Eiffel Tower",
			wantZoom:  "17",
		},
		{
			name:      "纯坐标路径",
			url:       "https://www.google.com/maps/@48.8584,2.2945,15z",
			wantMatch: true,
			wantShape: mapsShapeCoordinates,
			wantZoom:  "15",
		},
		{
			name:      "米数单位换算为缩放级别",
			url:       "https://www.google.com/maps/@48.8584,2.2945,1000m",
			wantMatch: true,
			wantShape: mapsShapeCoordinates,
			wantZoom:  "17",
		},
		{
			name:      "普通谷歌搜索不误判",
			url:       "https://www.google.com/search?q=eiffel+tower",
			wantMatch: false,
		},
		{
			name:      "非谷歌域名",
			url:       "https://example.com/maps?q=pizza",
			wantMatch: false,
		},
		{
			name:      "坐标缺少缩放后缀",
			url:       "https://www.google.com/maps/@48.8584,2.2945",
			wantMatch: false,
		},
		{
			name:      "畸形URL",
			url:       "://not-a-url",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := h.recognize(tt.url)
			if !tt.wantMatch {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantShape, m.shape)
			assert.Equal(t, tt.wantQuery, m.query)
			if tt.wantZoom != "" {
				assert.Equal(t, tt.wantZoom, m.zoom)
			}
		})
	}
}

// 查询参数形态优先于路径形态
func TestGoogleMapsShapePrecedence(t *testing.T) {
	h := NewGoogleMapsHandler(MapsStyleIntent)

	m, ok := h.recognize("https://www.google.com/maps/place/Foo/@1.0,2.0,10z?q=bar")
	require.True(t, ok)
	assert.Equal(t, mapsShapeQuery, m.shape)
	assert.Equal(t, "bar", m.query)
}

func TestConvertZoom(t *testing.T) {
	tests := []struct {
		value string
		unit  string
		want  string
		ok    bool
	}{
		{"15", "z", "15", true},
		{"500", "m", "18", true},
		{"1000", "m", "17", true},
		{"128000", "m", "10", true},
		{"1", "m", "20", true},          // 上限钳制
		{"100000000", "m", "1", true},   // 下限钳制
		{"0", "m", "", false},
		{"-5", "m", "", false},
		{"abc", "m", "", false},
	}

	for _, tt := range tests {
		got, ok := convertZoom(tt.value, tt.unit)
		assert.Equal(t, tt.ok, ok, "convertZoom(%q, %q)", tt.value, tt.unit)
		assert.Equal(t, tt.want, got, "convertZoom(%q, %q)", tt.value, tt.unit)
	}
}

// 米数换算在单位内单调: 米数越大, 缩放级别越小
func TestConvertZoomMonotonic(t *testing.T) {
	values := []string{"100", "500", "2000", "8000", "64000", "512000"}

	prev := 21
	for _, v := range values {
		got, ok := convertZoom(v, "m")
		require.True(t, ok)

		z, err := strconv.Atoi(got)
		require.NoError(t, err)
		assert.LessOrEqual(t, z, prev, "meters=%s", v)
		assert.GreaterOrEqual(t, z, 1)
		assert.LessOrEqual(t, z, 20)
		prev = z
	}
}

func TestGoogleMapsBuildQueryForm(t *testing.T) {
	h := NewGoogleMapsHandler(MapsStyleIntent)

	result, ok := h.Translate("https://www.google.com/maps/place/Eiffel+Tower/@48.8584,2.2945,17z")
	require.True(t, ok)

	assert.Equal(t, PlatformGoogleMaps, result.Platform)
	assert.Equal(t, "https://www.google.com/maps?q=Eiffel+Tower", result.WebURL)
	assert.Equal(t, "comgooglemaps://?q=Eiffel+Tower", result.IOS)
	assert.Equal(t,
		"intent://www.google.com/maps?q=Eiffel+Tower"+
			"#Intent;scheme=https;package=com.google.android.apps.maps"+
			";action=android.intent.action.VIEW;category=android.intent.category.BROWSABLE"+
			";S.browser_fallback_url=https%3A%2F%2Fwww.google.com%2Fmaps%3Fq%3DEiffel%2BTower;end",
		result.Android)
}

func TestGoogleMapsBuildCoordinates(t *testing.T) {
	h := NewGoogleMapsHandler(MapsStyleIntent)

	input := "https://www.google.com/maps/@48.8584,2.2945,15z"
	result, ok := h.Translate(input)
	require.True(t, ok)

	assert.Equal(t, PlatformGoogleMaps, result.Platform)
	// 纯坐标没有查询串, WebURL 保持原始输入
	assert.Equal(t, input, result.WebURL)
	assert.Equal(t, "comgooglemaps://?center=48.8584,2.2945&zoom=15", result.IOS)
	assert.Contains(t, result.Android, "intent://www.google.com/maps/@48.8584,2.2945,15z#Intent;")
}

func TestGoogleMapsGeoStyle(t *testing.T) {
	h := NewGoogleMapsHandler(MapsStyleGeo)

	tests := []struct {
		name        string
		url         string
		wantAndroid string
	}{
		{
			name:        "place带坐标",
			url:         "https://www.google.com/maps/place/Eiffel+Tower/@48.8584,2.2945,17z",
			wantAndroid: "geo:48.8584,2.2945?q=Eiffel+Tower",
		},
		{
			name:        "纯坐标",
			url:         "https://www.google.com/maps/@48.8584,2.2945,15z",
			wantAndroid: "geo:48.8584,2.2945?z=15",
		},
		{
			name:        "无坐标查询",
			url:         "https://www.google.com/maps?q=pizza",
			wantAndroid: "geo:0,0?q=pizza",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := h.Translate(tt.url)
			require.True(t, ok)
			assert.Equal(t, tt.wantAndroid, result.Android)
		})
	}
}

// 规范化后的 WebURL 是不动点: 再次翻译得到完全相同的结果
func TestGoogleMapsNormalizationIdempotent(t *testing.T) {
	h := NewGoogleMapsHandler(MapsStyleIntent)

	inputs := []string{
		"https://www.google.com/maps/place/Eiffel+Tower/@48.8584,2.2945,17z",
		"https://www.google.com/maps/search/sushi+bar",
		"https://www.google.com/maps/dir/Central+Park/Times+Square",
	}

	for _, input := range inputs {
		first, ok := h.Translate(input)
		require.True(t, ok, "input %s", input)

		second, ok := h.Translate(first.WebURL)
		require.True(t, ok, "web_url %s", first.WebURL)
		assert.Equal(t, first, second, "input %s", input)
	}
}
