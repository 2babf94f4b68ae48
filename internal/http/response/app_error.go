package response

// AppError 统一错误包装，用于日志与上层归类
type AppError struct {
	Status  int
	Kind    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(status int, kind, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
