package constants

// 新闻默认值（沿用站点的泰文文案）
const (
	NewsDefaultCategory  = "ทั่วไป"
	NewsDefaultTimeLabel = "เมื่อสักครู่"
	NewsFallbackImageURL = "https://images.unsplash.com/photo-1585829365295-ab7cd400c167?q=80&w=400&auto=format&fit=crop"
)

// 新闻视频附件类型常量
const (
	VideoTypeURL   = "url"
	VideoTypeEmbed = "embed"
)

// 媒体分类常量
const (
	MediaCategoryImage = "image"
	MediaCategoryVideo = "video"
)

// 媒体来源类型常量
const (
	MediaSourceUpload = "upload"
	MediaSourceLink   = "link"
	MediaSourceEmbed  = "embed"
)

// 培训形式默认值
const (
	TrainingTypeDefault = "Onsite"
)

// 内容种类常量（审计与日志共用）
const (
	ContentKindNews     = "news"
	ContentKindTraining = "training"
	ContentKindMedia    = "media"
)

// 审计动作常量
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
)

// 相关媒体回退条数
const (
	RelatedMediaLimit = 4
)

// 对象存储提供方常量
const (
	BlobProviderS3    = "s3"
	BlobProviderLocal = "local"
)

// 队列常量
const (
	QueueDefault     = "default"
	TaskContentAudit = "content:audit"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "nr"
)
