package public

import (
	"github.com/newsroom-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListNews 新闻列表；?all=true 时包含隐藏项
func (h *Handler) ListNews(c *gin.Context) {
	includeHidden := c.Query("all") == "true"

	news, err := h.NewsService.List(includeHidden)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, news)
}

// GetNews 新闻详情
func (h *Handler) GetNews(c *gin.Context) {
	detail, err := h.NewsService.Detail(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, detail)
}

// IncrementNewsView 新闻浏览计数加一
func (h *Handler) IncrementNewsView(c *gin.Context) {
	news, err := h.NewsService.IncrementViews(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, news)
}
