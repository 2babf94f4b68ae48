package admin

import (
	"github.com/newsroom-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return shared.GetContextUint(c, "admin_id")
}

// getAdminUsername 取当前登录管理员用户名；缺失时返回空串
func getAdminUsername(c *gin.Context) string {
	if value, ok := c.Get("admin_username"); ok {
		if username, ok := value.(string); ok {
			return username
		}
	}
	return ""
}
