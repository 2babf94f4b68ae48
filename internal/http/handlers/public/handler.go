package public

import (
	"github.com/newsroom-next/internal/provider"
)

// Handler 公共接口处理器
type Handler struct {
	*provider.Container
}

// New 创建公共接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
