package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/newsroom-next/internal/constants"
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var serviceTestDBSeq int

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	serviceTestDBSeq++
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", serviceTestDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.News{}, &models.Training{}, &models.Media{}, &models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newNewsService(t *testing.T) *NewsService {
	t.Helper()
	return NewNewsService(repository.NewNewsRepository(newServiceTestDB(t)))
}

func TestNewsCreateAppliesDefaults(t *testing.T) {
	svc := newNewsService(t)

	news, err := svc.Create(NewsInput{Title: "  ข่าวทดสอบ  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if news.ID == "" {
		t.Fatal("id should be assigned")
	}
	if news.Title != "ข่าวทดสอบ" {
		t.Fatalf("title should be trimmed, got %q", news.Title)
	}
	if news.Category != constants.NewsDefaultCategory {
		t.Fatalf("category want %q got %q", constants.NewsDefaultCategory, news.Category)
	}
	if news.Image != constants.NewsFallbackImageURL {
		t.Fatalf("image should fall back to default, got %q", news.Image)
	}
	if news.Time != constants.NewsDefaultTimeLabel {
		t.Fatalf("time want %q got %q", constants.NewsDefaultTimeLabel, news.Time)
	}
	if news.Album == nil || len(news.Album) != 0 {
		t.Fatalf("album should be empty array, got %#v", news.Album)
	}
	if !news.IsVisible {
		t.Fatal("new articles should be visible by default")
	}
	if news.Views != 0 {
		t.Fatalf("views want 0 got %d", news.Views)
	}
	if news.VideoType != constants.VideoTypeURL {
		t.Fatalf("video type want url got %q", news.VideoType)
	}
}

func TestNewsCreateRequiresTitle(t *testing.T) {
	svc := newNewsService(t)

	if _, err := svc.Create(NewsInput{Title: "   "}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("want ErrTitleRequired got %v", err)
	}
}

func TestNewsCreateRejectsUnknownVideoType(t *testing.T) {
	svc := newNewsService(t)

	if _, err := svc.Create(NewsInput{Title: "a", VideoType: "stream"}); !errors.Is(err, ErrInvalidVideoType) {
		t.Fatalf("want ErrInvalidVideoType got %v", err)
	}
}

func TestNewsCreateSanitizesContent(t *testing.T) {
	svc := newNewsService(t)

	news, err := svc.Create(NewsInput{Title: "a", Content: `<p>ok</p><script>alert(1)</script>`})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if news.Content != "<p>ok</p>" {
		t.Fatalf("content should be sanitized, got %q", news.Content)
	}
}

func TestNewsCreateRoundTrip(t *testing.T) {
	svc := newNewsService(t)

	created, err := svc.Create(NewsInput{
		Title:    "งานแถลงข่าว",
		Category: "ประกาศ",
		Album:    []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Title != created.Title || loaded.Category != "ประกาศ" {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if len(loaded.Album) != 2 || loaded.Album[0] != "https://cdn.example.com/a.jpg" {
		t.Fatalf("album round trip mismatch: %#v", loaded.Album)
	}
}

func TestNewsListFiltersHidden(t *testing.T) {
	svc := newNewsService(t)

	hidden := false
	if _, err := svc.Create(NewsInput{Title: "visible"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(NewsInput{Title: "hidden", IsVisible: &hidden}); err != nil {
		t.Fatalf("create: %v", err)
	}

	visible, err := svc.List(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "visible" {
		t.Fatalf("default list should only contain visible items, got %+v", visible)
	}

	all, err := svc.List(true)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("include-hidden list want 2 items got %d", len(all))
	}
}

func TestNewsUpdatePartial(t *testing.T) {
	svc := newNewsService(t)

	created, err := svc.Create(NewsInput{Title: "เดิม", Category: "ประกาศ"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "ใหม่"
	updated, err := svc.Update(created.ID, NewsUpdateInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "ใหม่" {
		t.Fatalf("title want ใหม่ got %q", updated.Title)
	}
	if updated.Category != "ประกาศ" {
		t.Fatalf("untouched field should keep value, got %q", updated.Category)
	}
}

func TestNewsUpdateMissingReturnsNotFound(t *testing.T) {
	svc := newNewsService(t)

	title := "x"
	if _, err := svc.Update("no-such-id", NewsUpdateInput{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestNewsDeleteMissingReturnsNotFound(t *testing.T) {
	svc := newNewsService(t)

	if err := svc.Delete("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestNewsIncrementViews(t *testing.T) {
	svc := newNewsService(t)

	created, err := svc.Create(NewsInput{Title: "views"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.IncrementViews(created.ID); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	loaded, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Views != 3 {
		t.Fatalf("views want 3 got %d", loaded.Views)
	}

	if _, err := svc.IncrementViews("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestNewsDetailDerivesEmbedURL(t *testing.T) {
	svc := newNewsService(t)

	created, err := svc.Create(NewsInput{
		Title: "มีวิดีโอ",
		Video: "https://youtu.be/abc123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	detail, err := svc.Detail(created.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.EmbedURL != "https://www.youtube.com/embed/abc123" {
		t.Fatalf("embed url want youtube embed got %q", detail.EmbedURL)
	}
}
