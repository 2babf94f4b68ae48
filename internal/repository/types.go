package repository

// NewsListFilter 查询新闻列表的过滤条件
type NewsListFilter struct {
	IncludeHidden bool
	Category      string
	Search        string
	Limit         int
	OrderBy       string
}

// TrainingListFilter 查询培训列表的过滤条件
type TrainingListFilter struct {
	Year    *int
	Month   *int
	Type    string
	Search  string
	Limit   int
	OrderBy string
}

// MediaListFilter 查询媒体列表的过滤条件
type MediaListFilter struct {
	Category   string
	SourceType string
	ExcludeID  string
	Limit      int
	OrderBy    string
}

// AuditLogListFilter 查询审计日志的过滤条件
type AuditLogListFilter struct {
	Kind     string
	EntityID string
	Limit    int
}
