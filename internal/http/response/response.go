package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误响应体
type ErrorBody struct {
	Error     string `json:"error"`               // 人类可读消息
	Kind      string `json:"kind,omitempty"`      // 机器可读错误类别
	RequestID string `json:"requestId,omitempty"` // 请求追踪 ID
}

// Success 200 成功响应，直接输出实体
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Deleted 删除成功响应
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Fail 错误响应
func Fail(c *gin.Context, status int, kind, msg string) {
	c.JSON(status, ErrorBody{
		Error:     msg,
		Kind:      kind,
		RequestID: requestID(c),
	})
}

// NotFound 404 响应，消息文案对外固定
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, KindNotFound, "Not found")
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, KindValidation, msg)
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, msg string) {
	Fail(c, http.StatusUnauthorized, KindUnauthorized, msg)
}

// TooManyRequests 429 响应
func TooManyRequests(c *gin.Context, msg string) {
	Fail(c, http.StatusTooManyRequests, KindRateLimited, msg)
}

// Internal 500 响应
func Internal(c *gin.Context, kind, msg string) {
	Fail(c, http.StatusInternalServerError, kind, msg)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
