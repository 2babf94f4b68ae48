package public

import (
	"github.com/newsroom-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListTrainings 培训列表
func (h *Handler) ListTrainings(c *gin.Context) {
	trainings, err := h.TrainingService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, trainings)
}

// GetTraining 培训详情
func (h *Handler) GetTraining(c *gin.Context) {
	training, err := h.TrainingService.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, training)
}
