package admin

import (
	"errors"
	"net/http"

	"github.com/newsroom-next/internal/http/handlers/shared"
	"github.com/newsroom-next/internal/http/response"
	"github.com/newsroom-next/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError 将服务层错误映射为对外响应
func respondServiceError(c *gin.Context, err error) {
	var validationErr service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c)
	case errors.As(err, &validationErr):
		response.BadRequest(c, validationErr.Error())
	default:
		shared.RespondError(c, http.StatusInternalServerError, response.KindStorage, "Internal server error", err)
	}
}
