package admin

import (
	"github.com/newsroom-next/internal/constants"
	"github.com/newsroom-next/internal/http/handlers/shared"
	"github.com/newsroom-next/internal/http/response"
	"github.com/newsroom-next/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainingCreateRequest 创建培训请求；month 从 0 起
type TrainingCreateRequest struct {
	Title        string `json:"title" binding:"required"`
	Date         int    `json:"date"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Seats        int    `json:"seats"`
	Available    *int   `json:"available"`
	Price        string `json:"price"`
	Type         string `json:"type"`
	Speaker      string `json:"speaker"`
	SpeakerImage string `json:"speakerImage"`
	Description  string `json:"description"`
}

// TrainingUpdateRequest 更新培训请求；缺省字段不改动
type TrainingUpdateRequest struct {
	Title        *string `json:"title"`
	Date         *int    `json:"date"`
	Month        *int    `json:"month"`
	Year         *int    `json:"year"`
	Time         *string `json:"time"`
	Location     *string `json:"location"`
	Seats        *int    `json:"seats"`
	Available    *int    `json:"available"`
	Price        *string `json:"price"`
	Type         *string `json:"type"`
	Speaker      *string `json:"speaker"`
	SpeakerImage *string `json:"speakerImage"`
	Description  *string `json:"description"`
}

// CreateTraining 创建培训
func (h *Handler) CreateTraining(c *gin.Context) {
	var req TrainingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title is required")
		return
	}

	training, err := h.TrainingService.Create(service.TrainingInput{
		Title:        req.Title,
		Date:         req.Date,
		Month:        req.Month,
		Year:         req.Year,
		Time:         req.Time,
		Location:     req.Location,
		Seats:        req.Seats,
		Available:    req.Available,
		Price:        req.Price,
		Type:         req.Type,
		Speaker:      req.Speaker,
		SpeakerImage: req.SpeakerImage,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("training_created", "id", training.ID, "title", training.Title)
	h.auditContentChange(c, constants.ContentKindTraining, training.ID, constants.AuditActionCreated)
	response.Created(c, training)
}

// UpdateTraining 局部更新培训
func (h *Handler) UpdateTraining(c *gin.Context) {
	var req TrainingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	training, err := h.TrainingService.Update(c.Param("id"), service.TrainingUpdateInput{
		Title:        req.Title,
		Date:         req.Date,
		Month:        req.Month,
		Year:         req.Year,
		Time:         req.Time,
		Location:     req.Location,
		Seats:        req.Seats,
		Available:    req.Available,
		Price:        req.Price,
		Type:         req.Type,
		Speaker:      req.Speaker,
		SpeakerImage: req.SpeakerImage,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("training_updated", "id", training.ID)
	h.auditContentChange(c, constants.ContentKindTraining, training.ID, constants.AuditActionUpdated)
	response.Success(c, training)
}

// DeleteTraining 删除培训
func (h *Handler) DeleteTraining(c *gin.Context) {
	id := c.Param("id")
	if err := h.TrainingService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	shared.RequestLog(c).Infow("training_deleted", "id", id)
	h.auditContentChange(c, constants.ContentKindTraining, id, constants.AuditActionDeleted)
	response.Deleted(c)
}
