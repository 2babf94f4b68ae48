package admin

import (
	"net/http"
	"strconv"

	"github.com/newsroom-next/internal/http/handlers/shared"
	"github.com/newsroom-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs 最近的内容变更审计记录
func (h *Handler) ListAuditLogs(c *gin.Context) {
	kind := c.Query("kind")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	logs, err := h.AuditService.List(kind, limit)
	if err != nil {
		shared.RespondError(c, http.StatusInternalServerError, response.KindStorage, "Audit log fetch failed", err)
		return
	}
	response.Success(c, logs)
}
