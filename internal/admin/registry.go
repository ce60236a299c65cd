package admin

import (
	"context"
	"errors"
)

// ErrNotFound means the principal is not in the admin registry. The gate
// treats it exactly like any other lookup failure: deny.
var ErrNotFound = errors.New("admin not found")

// Registry defines the data-access contract.
// Service and gate depend ONLY on this interface.
type Registry interface {
	FindByID(ctx context.Context, id string) (*Principal, error)
	FindByEmail(ctx context.Context, email string) (*Principal, error)
}
