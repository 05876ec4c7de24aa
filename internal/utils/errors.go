package utils

import "errors"

var (
	// 请求相关错误
	ErrEmptyURL = errors.New("empty URL")
)
