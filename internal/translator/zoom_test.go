package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomRecognize(t *testing.T) {
	h := NewZoomHandler()

	tests := []struct {
		name      string
		url       string
		wantMatch bool
		wantID    string
		wantPwd   string
	}{
		{
			name:      "会议号加密码",
			url:       "https://zoom.us/j/1234567890?pwd=abcdef",
			wantMatch: true,
			wantID:    "1234567890",
			wantPwd:   "abcdef",
		},
		{
			name:      "无密码",
			url:       "https://zoom.us/j/1234567890",
			wantMatch: true,
			wantID:    "1234567890",
		},
		{
			name:      "任意子域",
			url:       "https://us02web.zoom.us/j/9876543210?pwd=Xy.Z123",
			wantMatch: true,
			wantID:    "9876543210",
			wantPwd:   "Xy.Z123",
		},
		{
			name:      "pwd不是第一个参数",
			url:       "https://zoom.us/j/111222333?uname=x&pwd=secret1",
			wantMatch: true,
			wantID:    "111222333",
			wantPwd:   "secret1",
		},
		{
			name:      "个人会议室路径不匹配",
			url:       "https://zoom.us/my/someroom",
			wantMatch: false,
		},
		{
			name:      "会议号非数字",
			url:       "https://zoom.us/j/notdigits",
			wantMatch: false,
		},
		{
			name:      "非zoom域名",
			url:       "https://notzoom.example.com/j/1234567890",
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
			assert.Equal(t, tt.wantID, m.meetingID)
			assert.Equal(t, tt.wantPwd, m.password)
		})
	}
}

func TestZoomBuildWithPassword(t *testing.T) {
	h := NewZoomHandler()

	result, ok := h.Translate("https://zoom.us/j/1234567890?pwd=abcdef")
	require.True(t, ok)

	assert.Equal(t, PlatformZoom, result.Platform)
	assert.Equal(t, "zoomus://zoom.us/join?confno=1234567890&pwd=abcdef", result.IOS)
	assert.Equal(t, "https://zoom.us/j/1234567890?pwd=abcdef", result.WebURL)
	assert.Equal(t,
		"intent://zoom.us/join?confno=1234567890&pwd=abcdef"+
			"#Intent;scheme=zoomus;package=us.zoom.videomeetings"+
			";action=android.intent.action.VIEW;category=android.intent.category.BROWSABLE"+
			";S.browser_fallback_url=https%3A%2F%2Fzoom.us%2Fj%2F1234567890%3Fpwd%3Dabcdef;end",
		result.Android)
}

// 密码缺失时整段省略, 不渲染空的 pwd=
func TestZoomBuildWithoutPassword(t *testing.T) {
	h := NewZoomHandler()

	result, ok := h.Translate("https://us02web.zoom.us/j/9876543210")
	require.True(t, ok)

	assert.Equal(t, "zoomus://zoom.us/join?confno=9876543210", result.IOS)
	assert.Equal(t, "https://zoom.us/j/9876543210", result.WebURL)
	assert.NotContains(t, result.IOS, "pwd")
	assert.NotContains(t, result.Android, "pwd")
}
