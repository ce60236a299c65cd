package catalog

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	ListPackages(ctx context.Context) ([]Package, error)
	ListMeals(ctx context.Context) ([]Meal, error)
}
