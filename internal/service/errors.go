package service

import "errors"

// 服务层哨兵错误，由 handler 统一映射到 HTTP 状态码
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid old password")
	ErrWeakPassword       = errors.New("password does not meet policy")
)

// ValidationError 输入校验错误，handler 统一映射为 400
type ValidationError string

// Error 实现 error 接口
func (e ValidationError) Error() string {
	return string(e)
}

// 校验类错误常量
const (
	ErrTitleRequired     = ValidationError("title is required")
	ErrInvalidVideoType  = ValidationError("videoType must be url or embed")
	ErrInvalidMediaKind  = ValidationError("category must be image or video")
	ErrInvalidSourceType = ValidationError("sourceType must be upload, link or embed")
	ErrURLRequired       = ValidationError("url is required for upload and link sources")
	ErrEmbedRequired     = ValidationError("embedCode is required for embed sources")
	ErrEmbedRejected     = ValidationError("embedCode contains no allowed embed")
	ErrInvalidMonth      = ValidationError("month must be between 0 and 11")
	ErrInvalidDay        = ValidationError("date does not exist in the given month")
	ErrInvalidSeats      = ValidationError("seats must not be negative")
	ErrInvalidAvailable  = ValidationError("available must be between 0 and seats")
)
