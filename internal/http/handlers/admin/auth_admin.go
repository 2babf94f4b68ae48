package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/newsroom-next/internal/http/handlers/shared"
	"github.com/newsroom-next/internal/http/response"
	"github.com/newsroom-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string                 `json:"token"`
	ExpiresAt string                 `json:"expiresAt"`
	Admin     map[string]interface{} `json:"admin"`
}

// Login 管理员登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RequestLog(c).Warnw("admin_login_rejected",
				"username", req.Username,
				"ip", c.ClientIP(),
			)
			response.Unauthorized(c, "Invalid username or password")
			return
		}
		shared.RespondError(c, http.StatusInternalServerError, response.KindStorage, "Login failed", err)
		return
	}

	shared.RequestLog(c).Infow("admin_login",
		"admin_id", admin.ID,
		"username", admin.Username,
		"ip", c.ClientIP(),
	)
	response.Success(c, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		Admin: map[string]interface{}{
			"id":          admin.ID,
			"username":    admin.Username,
			"lastLoginAt": admin.LastLoginAt,
		},
	})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdatePassword 修改当前管理员密码；成功后旧 Token 全部失效
func (h *Handler) UpdatePassword(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "oldPassword and newPassword are required")
		return
	}

	if err := h.AuthService.ChangePassword(adminID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			response.BadRequest(c, "Old password is incorrect")
		case errors.Is(err, service.ErrWeakPassword):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c)
		default:
			shared.RespondError(c, http.StatusInternalServerError, response.KindStorage, "Password update failed", err)
		}
		return
	}

	shared.RequestLog(c).Infow("admin_password_changed", "admin_id", adminID)
	response.Success(c, gin.H{"success": true})
}
