package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/newsroom-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var repoTestDBSeq int

func newRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	repoTestDBSeq++
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", repoTestDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.News{}, &models.Training{}, &models.Media{}, &models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedNews(t *testing.T, repo *GormNewsRepository, title string, visible bool, createdAt time.Time) *models.News {
	t.Helper()
	news := &models.News{
		Title:     title,
		Category:  "ข่าวสาร",
		IsVisible: visible,
		CreatedAt: createdAt,
	}
	if err := repo.Create(news); err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
	return news
}

func TestNewsListOrdersNewestFirst(t *testing.T) {
	repo := NewNewsRepository(newRepoTestDB(t))
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	seedNews(t, repo, "เก่า", true, base)
	seedNews(t, repo, "กลาง", true, base.Add(time.Hour))
	seedNews(t, repo, "ใหม่", true, base.Add(2*time.Hour))

	items, err := repo.List(NewsListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("want 3 items got %d", len(items))
	}
	if items[0].Title != "ใหม่" || items[2].Title != "เก่า" {
		t.Fatalf("list should be newest first, got %q..%q", items[0].Title, items[2].Title)
	}
}

func TestNewsListFilters(t *testing.T) {
	repo := NewNewsRepository(newRepoTestDB(t))
	now := time.Now()

	seedNews(t, repo, "เผยแพร่แล้ว", true, now)
	seedNews(t, repo, "ฉบับร่าง", false, now.Add(time.Second))

	visible, err := repo.List(NewsListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "เผยแพร่แล้ว" {
		t.Fatalf("hidden items should be excluded by default, got %+v", visible)
	}

	all, err := repo.List(NewsListFilter{IncludeHidden: true})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("include-hidden want 2 got %d", len(all))
	}

	matched, err := repo.List(NewsListFilter{IncludeHidden: true, Search: "ร่าง"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matched) != 1 || matched[0].Title != "ฉบับร่าง" {
		t.Fatalf("search should match title, got %+v", matched)
	}

	limited, err := repo.List(NewsListFilter{IncludeHidden: true, Limit: 1})
	if err != nil {
		t.Fatalf("limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit want 1 got %d", len(limited))
	}
}

func TestNewsGetByIDMissingReturnsNil(t *testing.T) {
	repo := NewNewsRepository(newRepoTestDB(t))

	news, err := repo.GetByID("no-such-id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if news != nil {
		t.Fatalf("missing id should yield nil, got %+v", news)
	}
}

func TestNewsIncrementViewsAccumulates(t *testing.T) {
	repo := NewNewsRepository(newRepoTestDB(t))
	seeded := seedNews(t, repo, "นับยอดเข้าชม", true, time.Now())

	for i := 0; i < 5; i++ {
		updated, err := repo.IncrementViews(seeded.ID)
		if err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
		if updated == nil {
			t.Fatalf("increment %d: want entity back", i)
		}
	}

	loaded, err := repo.GetByID(seeded.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Views != 5 {
		t.Fatalf("views want 5 got %d", loaded.Views)
	}

	missing, err := repo.IncrementViews("no-such-id")
	if err != nil {
		t.Fatalf("increment missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing id should yield nil, got %+v", missing)
	}
}

func TestNewsUpdateKeepsConcurrentViewCounts(t *testing.T) {
	repo := NewNewsRepository(newRepoTestDB(t))
	seeded := seedNews(t, repo, "แก้ไขระหว่างอ่าน", true, time.Now())

	// 先取快照，再有读者进来计数，最后用快照写回
	stale, err := repo.GetByID(seeded.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := repo.IncrementViews(seeded.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}

	stale.Title = "แก้ไขแล้ว"
	if err := repo.Update(stale); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := repo.GetByID(seeded.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Title != "แก้ไขแล้ว" {
		t.Fatalf("title want แก้ไขแล้ว got %q", loaded.Title)
	}
	if loaded.Views != 1 {
		t.Fatalf("update must not roll back views, want 1 got %d", loaded.Views)
	}
}

func TestNewsIncrementViewsConcurrent(t *testing.T) {
	db := newRepoTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// sqlite 按单连接池运行，与运行时一致
	sqlDB.SetMaxOpenConns(1)

	repo := NewNewsRepository(db)
	seeded := seedNews(t, repo, "นับพร้อมกัน", true, time.Now())

	const workers = 25
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementViews(seeded.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent increment: %v", err)
		}
	}

	loaded, err := repo.GetByID(seeded.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Views != workers {
		t.Fatalf("views want %d got %d", workers, loaded.Views)
	}
}

func TestNewsDeleteThenGet(t *testing.T) {
	repo := NewNewsRepository(newRepoTestDB(t))
	seeded := seedNews(t, repo, "ลบทิ้ง", true, time.Now())

	if err := repo.Delete(seeded.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	news, err := repo.GetByID(seeded.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if news != nil {
		t.Fatalf("deleted row should be gone, got %+v", news)
	}
}
