package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/newsroom-next/internal/blobstore"
	"github.com/newsroom-next/internal/http/handlers/shared"
	"github.com/newsroom-next/internal/http/response"
	"github.com/newsroom-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PresignUpload 生成对象存储直传地址
func (h *Handler) PresignUpload(c *gin.Context) {
	filename := strings.TrimSpace(c.Query("filename"))
	contentType := strings.TrimSpace(c.Query("contentType"))
	if filename == "" || contentType == "" {
		response.Fail(c, http.StatusBadRequest, response.KindUpload, "filename and contentType are required")
		return
	}

	presigned, err := h.UploadService.Presign(c.Request.Context(), filename)
	if err != nil {
		var validationErr service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.BadRequest(c, validationErr.Error())
		case errors.Is(err, blobstore.ErrPresignUnsupported):
			shared.RespondError(c, http.StatusInternalServerError, response.KindUpload, "Presigned uploads are not supported by the configured storage", err)
		default:
			shared.RespondError(c, http.StatusInternalServerError, response.KindUpload, "Upload URL generation failed", err)
		}
		return
	}

	shared.RequestLog(c).Infow("upload_presigned", "filename", presigned.Filename)
	response.Success(c, presigned)
}

// UploadFile 接收 multipart 文件并写入对象存储
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindUpload, "No file uploaded")
		return
	}

	url, err := h.UploadService.SaveFile(c.Request.Context(), file)
	if err != nil {
		var validationErr service.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(c, validationErr.Error())
			return
		}
		shared.RespondError(c, http.StatusInternalServerError, response.KindUpload, "File upload failed", err)
		return
	}

	shared.RequestLog(c).Infow("file_uploaded", "name", file.Filename, "size", file.Size, "url", url)
	response.Success(c, gin.H{"url": url})
}
