package admin

import (
	"github.com/newsroom-next/internal/constants"
	"github.com/newsroom-next/internal/http/handlers/shared"
	"github.com/newsroom-next/internal/http/response"
	"github.com/newsroom-next/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsCreateRequest 创建新闻请求
type NewsCreateRequest struct {
	Title      string   `json:"title" binding:"required"`
	Category   string   `json:"category"`
	Image      string   `json:"image"`
	Album      []string `json:"album"`
	Time       string   `json:"time"`
	Content    string   `json:"content"`
	Video      string   `json:"video"`
	VideoType  string   `json:"videoType"`
	VideoEmbed string   `json:"videoEmbed"`
	IsVisible  *bool    `json:"isVisible"`
}

// NewsUpdateRequest 更新新闻请求；缺省字段不改动
type NewsUpdateRequest struct {
	Title      *string   `json:"title"`
	Category   *string   `json:"category"`
	Image      *string   `json:"image"`
	Album      *[]string `json:"album"`
	Time       *string   `json:"time"`
	Content    *string   `json:"content"`
	Video      *string   `json:"video"`
	VideoType  *string   `json:"videoType"`
	VideoEmbed *string   `json:"videoEmbed"`
	IsVisible  *bool     `json:"isVisible"`
}

// CreateNews 创建新闻
func (h *Handler) CreateNews(c *gin.Context) {
	var req NewsCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title is required")
		return
	}

	news, err := h.NewsService.Create(service.NewsInput{
		Title:      req.Title,
		Category:   req.Category,
		Image:      req.Image,
		Album:      req.Album,
		Time:       req.Time,
		Content:    req.Content,
		Video:      req.Video,
		VideoType:  req.VideoType,
		VideoEmbed: req.VideoEmbed,
		IsVisible:  req.IsVisible,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("news_created", "id", news.ID, "title", news.Title)
	h.auditContentChange(c, constants.ContentKindNews, news.ID, constants.AuditActionCreated)
	response.Created(c, news)
}

// UpdateNews 局部更新新闻
func (h *Handler) UpdateNews(c *gin.Context) {
	var req NewsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	news, err := h.NewsService.Update(c.Param("id"), service.NewsUpdateInput{
		Title:      req.Title,
		Category:   req.Category,
		Image:      req.Image,
		Album:      req.Album,
		Time:       req.Time,
		Content:    req.Content,
		Video:      req.Video,
		VideoType:  req.VideoType,
		VideoEmbed: req.VideoEmbed,
		IsVisible:  req.IsVisible,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("news_updated", "id", news.ID)
	h.auditContentChange(c, constants.ContentKindNews, news.ID, constants.AuditActionUpdated)
	response.Success(c, news)
}

// DeleteNews 删除新闻
func (h *Handler) DeleteNews(c *gin.Context) {
	id := c.Param("id")
	if err := h.NewsService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("news_deleted", "id", id)
	h.auditContentChange(c, constants.ContentKindNews, id, constants.AuditActionDeleted)
	response.Deleted(c)
}
