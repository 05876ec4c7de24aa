package models

// TranslateRequest 翻译请求
type TranslateRequest struct {
	URL string `json:"url" binding:"required"`
}

// TranslateResponse 翻译响应
type TranslateResponse struct {
	Platform string `json:"platform"`
	WebURL   string `json:"web_url"`
	IOS      string `json:"ios,omitempty"`
	Android  string `json:"android,omitempty"`
}

// PlatformsResponse 平台列表响应
type PlatformsResponse struct {
	Platforms []string `json:"platforms"`
}
