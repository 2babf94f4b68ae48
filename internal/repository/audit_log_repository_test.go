package repository

import (
	"testing"
	"time"

	"github.com/newsroom-next/internal/models"
)

func seedAuditLog(t *testing.T, repo *GormAuditLogRepository, kind, entityID, action string, createdAt time.Time) {
	t.Helper()
	entry := &models.AuditLog{
		Kind:      kind,
		EntityID:  entityID,
		Action:    action,
		Actor:     "admin",
		CreatedAt: createdAt,
	}
	if err := repo.Create(entry); err != nil {
		t.Fatalf("seed audit log: %v", err)
	}
}

func TestAuditLogListNewestFirst(t *testing.T) {
	repo := NewAuditLogRepository(newRepoTestDB(t))
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	seedAuditLog(t, repo, "news", "n-1", "created", base)
	seedAuditLog(t, repo, "news", "n-1", "updated", base.Add(time.Minute))
	seedAuditLog(t, repo, "media", "m-1", "deleted", base.Add(2*time.Minute))

	entries, err := repo.List(AuditLogListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("want 3 entries got %d", len(entries))
	}
	if entries[0].Action != "deleted" || entries[2].Action != "created" {
		t.Fatalf("list should be newest first, got %q..%q", entries[0].Action, entries[2].Action)
	}
}

func TestAuditLogListFilters(t *testing.T) {
	repo := NewAuditLogRepository(newRepoTestDB(t))
	now := time.Now()

	seedAuditLog(t, repo, "news", "n-1", "created", now)
	seedAuditLog(t, repo, "training", "t-1", "created", now)
	seedAuditLog(t, repo, "training", "t-2", "updated", now)

	byKind, err := repo.List(AuditLogListFilter{Kind: "training"})
	if err != nil {
		t.Fatalf("list by kind: %v", err)
	}
	if len(byKind) != 2 {
		t.Fatalf("kind filter want 2 got %d", len(byKind))
	}

	byEntity, err := repo.List(AuditLogListFilter{EntityID: "t-2"})
	if err != nil {
		t.Fatalf("list by entity: %v", err)
	}
	if len(byEntity) != 1 || byEntity[0].Action != "updated" {
		t.Fatalf("entity filter mismatch: %+v", byEntity)
	}

	limited, err := repo.List(AuditLogListFilter{Limit: 1})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit want 1 got %d", len(limited))
	}
}
