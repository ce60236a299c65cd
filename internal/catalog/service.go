package catalog

import (
	"context"
	"errors"
)

// Service holds the catalog in memory. The catalog is static for the
// process lifetime: loaded once at startup, read-only afterwards.
type Service struct {
	packages []Package
	meals    []Meal
}

func NewService(ctx context.Context, repo Repository) (*Service, error) {
	packages, err := repo.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, errors.New("empty package catalog")
	}

	meals, err := repo.ListMeals(ctx)
	if err != nil {
		return nil, err
	}

	return &Service{packages: packages, meals: meals}, nil
}

func (s *Service) Packages() []Package {
	return s.packages
}

func (s *Service) Meals() []Meal {
	return s.meals
}

// PackageByID returns the package with the given id, or false.
func (s *Service) PackageByID(id string) (Package, bool) {
	for _, p := range s.packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}
