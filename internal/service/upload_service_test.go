package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/newsroom-next/internal/blobstore"
	"github.com/newsroom-next/internal/config"
)

func newUploadService(t *testing.T) *UploadService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Upload.MaxSize = 1024 * 1024
	cfg.Upload.AllowedExtensions = []string{".jpg", ".png", "mp4"}
	cfg.Blob.PresignExpireMinutes = 15
	return NewUploadService(cfg, blobstore.NewLocalStore(t.TempDir()))
}

func TestUniqueObjectNameSanitizesFilename(t *testing.T) {
	got := uniqueObjectName("  รูป ภาพ (1).jpg  ")
	if strings.Contains(got, " ") {
		t.Fatalf("object name should not contain spaces, got %q", got)
	}
	if !strings.HasSuffix(got, ".jpg") {
		t.Fatalf("extension should survive, got %q", got)
	}

	got = uniqueObjectName("../../etc/passwd")
	if strings.Contains(got, "/") || strings.Contains(got, "..") {
		t.Fatalf("path segments should be stripped, got %q", got)
	}

	got = uniqueObjectName("ไทยล้วน")
	if !strings.HasSuffix(got, "-file") {
		t.Fatalf("fully stripped name should fall back to file, got %q", got)
	}
}

func TestIsAllowedExtensionNormalizes(t *testing.T) {
	allowed := []string{".jpg", "PNG", " mp4 "}
	cases := map[string]bool{
		".jpg": true,
		".png": true,
		".mp4": true,
		".exe": false,
	}
	for ext, want := range cases {
		if got := isAllowedExtension(ext, allowed); got != want {
			t.Fatalf("ext %s want %v got %v", ext, want, got)
		}
	}
}

func TestPresignRequiresFilename(t *testing.T) {
	svc := newUploadService(t)

	var validationErr ValidationError
	_, err := svc.Presign(context.Background(), "   ")
	if !errors.As(err, &validationErr) {
		t.Fatalf("blank filename should be a validation error, got %v", err)
	}
}

func TestPresignRejectsDisallowedExtension(t *testing.T) {
	svc := newUploadService(t)

	var validationErr ValidationError
	_, err := svc.Presign(context.Background(), "payload.exe")
	if !errors.As(err, &validationErr) {
		t.Fatalf("disallowed extension should be a validation error, got %v", err)
	}
}

func TestPresignUnsupportedOnLocalStore(t *testing.T) {
	svc := newUploadService(t)

	if _, err := svc.Presign(context.Background(), "photo.jpg"); !errors.Is(err, blobstore.ErrPresignUnsupported) {
		t.Fatalf("local store should not support presign, got %v", err)
	}
}
