package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/newsroom-next/internal/logger"
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/provider"
	"github.com/newsroom-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskContentAudit, c.handleContentAudit)
}

func (c *Consumer) handleContentAudit(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_content_audit_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ContentAuditPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_content_audit_unmarshal_failed", "error", err)
		return err
	}
	if payload.Kind == "" || payload.EntityID == "" || payload.Action == "" {
		logger.Debugw("worker_content_audit_skip_invalid_payload",
			"kind", payload.Kind,
			"entity_id", payload.EntityID,
			"action", payload.Action,
		)
		return nil
	}
	if c.AuditLogRepo == nil {
		logger.Warnw("worker_content_audit_skip_repo_nil", "entity_id", payload.EntityID)
		return nil
	}

	at := payload.At
	if at.IsZero() {
		at = time.Now()
	}
	entry := &models.AuditLog{
		Kind:      payload.Kind,
		EntityID:  payload.EntityID,
		Action:    payload.Action,
		Actor:     payload.Actor,
		CreatedAt: at,
	}
	if err := c.AuditLogRepo.Create(entry); err != nil {
		logger.Warnw("worker_content_audit_persist_failed",
			"kind", payload.Kind,
			"entity_id", payload.EntityID,
			"action", payload.Action,
			"error", err,
		)
		return err
	}
	return nil
}
