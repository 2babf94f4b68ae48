package admin

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/newsroom-next/internal/blobstore"
	"github.com/newsroom-next/internal/config"
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/provider"
	"github.com/newsroom-next/internal/repository"
	"github.com/newsroom-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var adminTestDBSeq int

func newTestContainer(t *testing.T) *provider.Container {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adminTestDBSeq++
	dsn := fmt.Sprintf("file:admin_test_%d?mode=memory&cache=shared", adminTestDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.News{}, &models.Training{}, &models.Media{}, &models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "0123456789abcdef0123456789abcdef"
	cfg.JWT.ExpireHours = 24
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png"}
	cfg.Upload.AllowedExtensions = []string{".jpg", ".png"}
	cfg.Blob.PresignExpireMinutes = 15
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}

	c := &provider.Container{
		Config:       cfg,
		BlobStore:    blobstore.NewLocalStore(t.TempDir()),
		AdminRepo:    repository.NewAdminRepository(db),
		NewsRepo:     repository.NewNewsRepository(db),
		TrainingRepo: repository.NewTrainingRepository(db),
		MediaRepo:    repository.NewMediaRepository(db),
		AuditLogRepo: repository.NewAuditLogRepository(db),
	}
	c.AuthService = service.NewAuthService(cfg, c.AdminRepo)
	c.NewsService = service.NewNewsService(c.NewsRepo)
	c.TrainingService = service.NewTrainingService(c.TrainingRepo)
	c.MediaService = service.NewMediaService(c.MediaRepo, c.NewsRepo)
	c.UploadService = service.NewUploadService(cfg, c.BlobStore)
	c.AuditService = service.NewAuditService(c.AuditLogRepo)
	return c
}

func newTestRouter(t *testing.T) (*gin.Engine, *provider.Container) {
	t.Helper()
	c := newTestContainer(t)
	h := New(c)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", h.Login)
	api.POST("/news", h.CreateNews)
	api.PUT("/news/:id", h.UpdateNews)
	api.DELETE("/news/:id", h.DeleteNews)
	api.POST("/trainings", h.CreateTraining)
	api.POST("/media", h.CreateMedia)
	api.GET("/upload", h.PresignUpload)
	api.POST("/upload", h.UploadFile)
	api.GET("/audit-logs", h.ListAuditLogs)
	return r, c
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantKind, wantMessage string) {
	t.Helper()
	if w.Code != wantStatus {
		t.Fatalf("status want %d got %d body=%s", wantStatus, w.Code, w.Body.String())
	}
	var body struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
	}
	decodeBody(t, w, &body)
	if body.Kind != wantKind {
		t.Fatalf("kind want %q got %q", wantKind, body.Kind)
	}
	if wantMessage != "" && body.Error != wantMessage {
		t.Fatalf("error want %q got %q", wantMessage, body.Error)
	}
}
