package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// News 新闻表
type News struct {
	ID         string      `gorm:"primarykey;size:36" json:"id"`                   // 主键（UUID）
	Title      string      `gorm:"type:varchar(500);not null" json:"title"`        // 标题
	Category   string      `gorm:"type:varchar(120);not null;index" json:"category"` // 分类（自由文本）
	Image      string      `gorm:"type:varchar(1000)" json:"image"`                // 封面图
	Album      StringArray `gorm:"type:json" json:"album"`                         // 相册图片地址
	Time       string      `gorm:"type:varchar(120)" json:"time"`                  // 展示用时间文案
	Content    string      `gorm:"type:text" json:"content"`                       // 正文（HTML，入库前已消毒）
	Video      string      `gorm:"type:varchar(1000)" json:"video"`                // 视频地址
	VideoType  string      `gorm:"type:varchar(20)" json:"videoType"`              // 视频类型（url/embed）
	VideoEmbed string      `gorm:"type:text" json:"videoEmbed"`                    // 嵌入代码
	Views      int64       `gorm:"not null;default:0" json:"views"`                // 浏览次数（只增）
	IsVisible  bool        `gorm:"not null;default:true;index" json:"isVisible"`   // 是否对外可见
	CreatedAt  time.Time   `gorm:"index" json:"createdAt"`                         // 创建时间
}

// TableName 指定表名
func (News) TableName() string {
	return "news"
}

// BeforeCreate 生成主键
func (n *News) BeforeCreate(*gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
