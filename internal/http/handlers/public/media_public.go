package public

import (
	"github.com/newsroom-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListMedia 媒体列表
func (h *Handler) ListMedia(c *gin.Context) {
	media, err := h.MediaService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, media)
}

// GetMedia 媒体详情
func (h *Handler) GetMedia(c *gin.Context) {
	detail, err := h.MediaService.Detail(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, detail)
}

// IncrementMediaView 媒体浏览计数加一
func (h *Handler) IncrementMediaView(c *gin.Context) {
	media, err := h.MediaService.IncrementViews(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, media)
}

// GetRelatedMedia 相关媒体，最多四条
func (h *Handler) GetRelatedMedia(c *gin.Context) {
	related, err := h.MediaService.Related(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, related)
}
