package models

import (
	"time"
)

// AuditLog 内容变更审计表（由队列 worker 写入）
type AuditLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`                        // 主键
	Kind      string    `gorm:"type:varchar(20);not null;index" json:"kind"` // 内容种类（news/training/media）
	EntityID  string    `gorm:"size:36;not null;index" json:"entityId"`      // 内容主键
	Action    string    `gorm:"type:varchar(20);not null" json:"action"`     // 动作（created/updated/deleted）
	Actor     string    `gorm:"type:varchar(120)" json:"actor"`              // 操作人账号
	CreatedAt time.Time `gorm:"index" json:"createdAt"`                      // 记录时间
}

// TableName 指定表名
func (AuditLog) TableName() string {
	return "audit_logs"
}
