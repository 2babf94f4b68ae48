package admin

import (
	"time"

	"github.com/newsroom-next/internal/http/handlers/shared"
	"github.com/newsroom-next/internal/provider"
	"github.com/newsroom-next/internal/queue"

	"github.com/gin-gonic/gin"
)

// Handler 管理接口处理器
type Handler struct {
	*provider.Container
}

// New 创建管理接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// auditContentChange 推送内容变更审计任务；入队失败只记日志，不影响请求结果
func (h *Handler) auditContentChange(c *gin.Context, kind, entityID, action string) {
	payload := queue.ContentAuditPayload{
		Kind:     kind,
		EntityID: entityID,
		Action:   action,
		Actor:    getAdminUsername(c),
		At:       time.Now(),
	}
	if err := h.QueueClient.EnqueueContentAudit(payload); err != nil {
		shared.RequestLog(c).Warnw("audit_enqueue_failed",
			"kind", kind,
			"entity_id", entityID,
			"action", action,
			"error", err,
		)
	}
}
