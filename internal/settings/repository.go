package settings

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("setting not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}
