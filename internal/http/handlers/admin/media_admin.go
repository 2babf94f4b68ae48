package admin

import (
	"github.com/newsroom-next/internal/constants"
	"github.com/newsroom-next/internal/http/handlers/shared"
	"github.com/newsroom-next/internal/http/response"
	"github.com/newsroom-next/internal/service"

	"github.com/gin-gonic/gin"
)

// MediaCreateRequest 创建媒体请求
type MediaCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	SourceType  string `json:"sourceType"`
	URL         string `json:"url"`
	EmbedCode   string `json:"embedCode"`
	Description string `json:"description"`
}

// MediaUpdateRequest 更新媒体请求；缺省字段不改动
type MediaUpdateRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	SourceType  *string `json:"sourceType"`
	URL         *string `json:"url"`
	EmbedCode   *string `json:"embedCode"`
	Description *string `json:"description"`
}

// CreateMedia 创建媒体
func (h *Handler) CreateMedia(c *gin.Context) {
	var req MediaCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title is required")
		return
	}

	media, err := h.MediaService.Create(service.MediaInput{
		Title:       req.Title,
		Category:    req.Category,
		SourceType:  req.SourceType,
		URL:         req.URL,
		EmbedCode:   req.EmbedCode,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("media_created", "id", media.ID, "title", media.Title)
	h.auditContentChange(c, constants.ContentKindMedia, media.ID, constants.AuditActionCreated)
	response.Created(c, media)
}

// UpdateMedia 局部更新媒体
func (h *Handler) UpdateMedia(c *gin.Context) {
	var req MediaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	media, err := h.MediaService.Update(c.Param("id"), service.MediaUpdateInput{
		Title:       req.Title,
		Category:    req.Category,
		SourceType:  req.SourceType,
		URL:         req.URL,
		EmbedCode:   req.EmbedCode,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("media_updated", "id", media.ID)
	h.auditContentChange(c, constants.ContentKindMedia, media.ID, constants.AuditActionUpdated)
	response.Success(c, media)
}

// DeleteMedia 删除媒体
func (h *Handler) DeleteMedia(c *gin.Context) {
	id := c.Param("id")
	if err := h.MediaService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("media_deleted", "id", id)
	h.auditContentChange(c, constants.ContentKindMedia, id, constants.AuditActionDeleted)
	response.Deleted(c)
}
