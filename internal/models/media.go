package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media 媒体资源表
type Media struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`                      // 主键（UUID）
	Title       string    `gorm:"type:varchar(500);not null" json:"title"`           // 标题
	Category    string    `gorm:"type:varchar(20);not null;index" json:"category"`   // 分类（image/video）
	SourceType  string    `gorm:"type:varchar(20);not null;index" json:"sourceType"` // 来源（upload/link/embed）
	URL         string    `gorm:"type:varchar(1000)" json:"url"`                     // 资源地址（upload/link 必填）
	EmbedCode   string    `gorm:"type:text" json:"embedCode"`                        // 嵌入代码（embed 必填，入库前已消毒）
	Description string    `gorm:"type:text" json:"description"`                      // 描述（HTML，入库前已消毒）
	Views       int64     `gorm:"not null;default:0" json:"views"`                   // 浏览次数（只增）
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`                            // 创建时间
}

// TableName 指定表名
func (Media) TableName() string {
	return "media"
}

// BeforeCreate 生成主键
func (m *Media) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
