package queue

import (
	"encoding/json"
	"time"

	"github.com/newsroom-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskContentAudit 内容变更审计任务
	TaskContentAudit = constants.TaskContentAudit
)

// ContentAuditPayload 内容变更审计任务载荷
type ContentAuditPayload struct {
	Kind     string    `json:"kind"`
	EntityID string    `json:"entity_id"`
	Action   string    `json:"action"`
	Actor    string    `json:"actor"`
	At       time.Time `json:"at"`
}

// NewContentAuditTask 创建内容审计任务
func NewContentAuditTask(payload ContentAuditPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContentAudit, body), nil
}
