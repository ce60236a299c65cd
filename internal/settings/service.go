package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reklaminn/pin25-foods-sub001/internal/cache"
)

// logoCacheTTL sets how long the public logo URL is served from cache
// before hitting the repository again.
const logoCacheTTL = 5 * time.Minute

type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo     Repository
	uploader Uploader
	cache    cache.Store
}

func NewService(repo Repository, uploader Uploader, store cache.Store) *Service {
	return &Service{repo: repo, uploader: uploader, cache: store}
}

// --------------------------------------------------
// Logo URL (cached)
// --------------------------------------------------
func (s *Service) LogoURL(ctx context.Context) (string, error) {
	if v, ok := s.cache.Get(logoCacheKey); ok {
		return v.(string), nil
	}

	url, err := s.repo.Get(ctx, KeyLogoURL)
	if err != nil {
		return "", err
	}

	s.cache.Set(logoCacheKey, url, logoCacheTTL)
	return url, nil
}

// --------------------------------------------------
// Logo upload (ADMIN)
// --------------------------------------------------
func (s *Service) UpdateLogo(
	ctx context.Context,
	file io.Reader,
	filename string,
	contentType string,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf("site/logo/%s%s", uuid.New().String(), ext)

	url, err := s.uploader.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.Set(ctx, KeyLogoURL, url); err != nil {
		return "", err
	}

	// Stale cached URL must not outlive the update
	s.cache.Invalidate(logoCacheKey)

	return url, nil
}

// --------------------------------------------------
// Generic settings (ADMIN)
// --------------------------------------------------
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	return s.repo.All(ctx)
}

func (s *Service) Update(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if key == "" {
			return errors.New("empty setting key")
		}
		if err := s.repo.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
