package response

// 错误 kind 常量，随错误体返回给调用方做机器判断
const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindUnauthorized = "unauthorized"
	KindRateLimited  = "rate_limited"
	KindStorage      = "storage"
	KindUpload       = "upload"
)
