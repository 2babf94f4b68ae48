package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Training 培训活动表
type Training struct {
	ID           string    `gorm:"primarykey;size:36" json:"id"`                 // 主键（UUID）
	Title        string    `gorm:"type:varchar(500);not null" json:"title"`      // 标题
	Date         int       `gorm:"not null;default:1" json:"date"`               // 日（1 起）
	Month        int       `gorm:"not null;default:0;index" json:"month"`        // 月（0 起）
	Year         int       `gorm:"not null;index" json:"year"`                   // 公历年份
	Time         string    `gorm:"type:varchar(120)" json:"time"`                // 时间段文案
	Location     string    `gorm:"type:varchar(500)" json:"location"`            // 地点
	Seats        int       `gorm:"not null;default:0" json:"seats"`              // 总席位
	Available    int       `gorm:"not null;default:0" json:"available"`          // 剩余席位（0..seats）
	Price        string    `gorm:"type:varchar(120)" json:"price"`               // 价格文案
	Type         string    `gorm:"type:varchar(60);index" json:"type"`           // 形式（Onsite/Online/...）
	Speaker      string    `gorm:"type:varchar(300)" json:"speaker"`             // 讲师
	SpeakerImage string    `gorm:"type:varchar(1000)" json:"speakerImage"`       // 讲师照片
	Description  string    `gorm:"type:text" json:"description"`                 // 介绍（HTML，入库前已消毒）
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`                       // 创建时间
}

// TableName 指定表名
func (Training) TableName() string {
	return "trainings"
}

// BeforeCreate 生成主键
func (t *Training) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
