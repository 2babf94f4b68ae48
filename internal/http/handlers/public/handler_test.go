package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newsroom-next/internal/config"
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/provider"
	"github.com/newsroom-next/internal/repository"
	"github.com/newsroom-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var publicTestDBSeq int

func newTestRouter(t *testing.T) (*gin.Engine, *provider.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	publicTestDBSeq++
	dsn := fmt.Sprintf("file:public_test_%d?mode=memory&cache=shared", publicTestDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.News{}, &models.Training{}, &models.Media{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	c := &provider.Container{
		Config:       &config.Config{},
		NewsRepo:     repository.NewNewsRepository(db),
		TrainingRepo: repository.NewTrainingRepository(db),
		MediaRepo:    repository.NewMediaRepository(db),
	}
	c.NewsService = service.NewNewsService(c.NewsRepo)
	c.TrainingService = service.NewTrainingService(c.TrainingRepo)
	c.MediaService = service.NewMediaService(c.MediaRepo, c.NewsRepo)

	h := New(c)
	r := gin.New()
	api := r.Group("/api")
	api.GET("/news", h.ListNews)
	api.GET("/news/:id", h.GetNews)
	api.PATCH("/news/:id/view", h.IncrementNewsView)
	api.GET("/trainings", h.ListTrainings)
	api.GET("/trainings/:id", h.GetTraining)
	api.GET("/media", h.ListMedia)
	api.GET("/media/:id", h.GetMedia)
	api.PATCH("/media/:id/view", h.IncrementMediaView)
	api.GET("/media/:id/related", h.GetRelatedMedia)
	return r, c
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
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

func assertNotFound(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
	}
	decodeBody(t, w, &body)
	if body.Error != "Not found" || body.Kind != "not_found" {
		t.Fatalf("error body mismatch: %s", w.Body.String())
	}
}
