package settings

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reklaminn/pin25-foods-sub001/internal/cache"
)

type fakeUploader struct {
	calls int
	url   string
	err   error
}

func (u *fakeUploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

func TestLogoURLPrimesCache(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.Set(context.Background(), KeyLogoURL, "https://cdn.example.com/logo.png")

	store := cache.NewMemoryStore()
	service := NewService(repo, &fakeUploader{}, store)

	url, err := service.LogoURL(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.example.com/logo.png" {
		t.Fatalf("unexpected url: %s", url)
	}

	// Second read must come from cache, not the repository
	repo.Set(context.Background(), KeyLogoURL, "https://cdn.example.com/other.png")
	url, _ = service.LogoURL(context.Background())
	if url != "https://cdn.example.com/logo.png" {
		t.Fatalf("expected cached url, got %s", url)
	}
}

func TestUpdateLogoInvalidatesCache(t *testing.T) {
	repo := NewInMemoryRepository()
	store := cache.NewMemoryStore()
	uploader := &fakeUploader{url: "https://cdn.example.com/new.png"}
	service := NewService(repo, uploader, store)

	repo.Set(context.Background(), KeyLogoURL, "https://cdn.example.com/old.png")
	if _, err := service.LogoURL(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := service.UpdateLogo(context.Background(), strings.NewReader("png"), "logo.png", "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.example.com/new.png" {
		t.Fatalf("unexpected url: %s", url)
	}
	if uploader.calls != 1 {
		t.Fatalf("expected one upload, got %d", uploader.calls)
	}

	// Cache was invalidated: next read sees the new value
	url, _ = service.LogoURL(context.Background())
	if url != "https://cdn.example.com/new.png" {
		t.Fatalf("stale cache survived update: %s", url)
	}
}

func TestUpdateLogoRejectsFileWithoutExtension(t *testing.T) {
	service := NewService(NewInMemoryRepository(), &fakeUploader{}, cache.NewMemoryStore())

	_, err := service.UpdateLogo(context.Background(), strings.NewReader("png"), "logo", "image/png")
	if err == nil {
		t.Fatalf("expected error for missing extension")
	}
}

func TestLogoURLMissing(t *testing.T) {
	service := NewService(NewInMemoryRepository(), &fakeUploader{}, cache.NewMemoryStore())

	_, err := service.LogoURL(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
