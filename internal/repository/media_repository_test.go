package repository

import (
	"testing"

	"github.com/newsroom-next/internal/models"
)

func seedMedia(t *testing.T, repo *GormMediaRepository, title string) *models.Media {
	t.Helper()
	media := &models.Media{
		Title:      title,
		Category:   "image",
		SourceType: "upload",
		URL:        "https://cdn.example.com/a.jpg",
	}
	if err := repo.Create(media); err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
	return media
}

func TestMediaListExcludesID(t *testing.T) {
	repo := NewMediaRepository(newRepoTestDB(t))

	first := seedMedia(t, repo, "หนึ่ง")
	seedMedia(t, repo, "สอง")

	items, err := repo.List(MediaListFilter{ExcludeID: first.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Title != "สอง" {
		t.Fatalf("exclude filter mismatch: %+v", items)
	}
}

func TestMediaUpdateKeepsConcurrentViewCounts(t *testing.T) {
	repo := NewMediaRepository(newRepoTestDB(t))
	seeded := seedMedia(t, repo, "แก้ไขระหว่างอ่าน")

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

func TestMediaIncrementViewsMissingReturnsNil(t *testing.T) {
	repo := NewMediaRepository(newRepoTestDB(t))

	media, err := repo.IncrementViews("no-such-id")
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if media != nil {
		t.Fatalf("missing id should yield nil, got %+v", media)
	}
}
