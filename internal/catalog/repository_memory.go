package catalog

import "context"

// InMemoryRepository serves a seeded catalog. Used by tests and local dev
// without a database.
type InMemoryRepository struct {
	packages []Package
	meals    []Meal
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		packages: SeedPackages(),
		meals:    SeedMeals(),
	}
}

func (r *InMemoryRepository) ListPackages(ctx context.Context) ([]Package, error) {
	return append([]Package(nil), r.packages...), nil
}

func (r *InMemoryRepository) ListMeals(ctx context.Context) ([]Meal, error) {
	return append([]Meal(nil), r.meals...), nil
}

// SeedPackages is the launch tier lineup.
func SeedPackages() []Package {
	return []Package{
		{
			ID: "tadim-5", Name: "Taste Week", DurationDays: 5, MealsPerDay: 1,
			PlanPattern: "lunch-only", ServesMin: 1, ServesMax: 2,
			PriceCents: 89900, SortOrder: 1,
			Features: []string{"save-time"},
		},
		{
			ID: "denge-10", Name: "Balance 10", DurationDays: 10, MealsPerDay: 2,
			PlanPattern: "lunch-dinner", ServesMin: 1, ServesMax: 2,
			PriceCents: 169900, SortOrder: 2,
			Features: []string{"lose-weight", "improve-health"},
		},
		{
			ID: "form-20", Name: "Form 20", DurationDays: 20, MealsPerDay: 2,
			PlanPattern: "lunch-dinner", ServesMin: 1, ServesMax: 4,
			PriceCents: 309900, SortOrder: 3,
			Features: []string{"lose-weight", "gain-muscle"},
		},
		{
			ID: "aile-30", Name: "Family Month", DurationDays: 30, MealsPerDay: 3,
			PlanPattern: "full-day", ServesMin: 2, ServesMax: 6,
			PriceCents: 499900, SortOrder: 4,
			Features: []string{"save-time", "improve-health"},
		},
	}
}

// SeedMeals is a small sample-menu pool.
func SeedMeals() []Meal {
	return []Meal{
		{
			ID: "izgara-tavuk", Name: "Grilled chicken bowl",
			DietTags:       []string{"klasik", "glutensiz"},
			ProteinTags:    []string{"chicken"},
			IngredientTags: []string{"onion"},
		},
		{
			ID: "sebzeli-kinoa", Name: "Vegetable quinoa",
			DietTags:       []string{"klasik", "vegan", "vejetaryen", "akdeniz", "glutensiz"},
			ProteinTags:    nil,
			IngredientTags: []string{"mushroom"},
		},
		{
			ID: "firin-somon", Name: "Baked salmon",
			DietTags:       []string{"klasik", "akdeniz", "glutensiz"},
			ProteinTags:    []string{"fish"},
			IngredientTags: nil,
		},
		{
			ID: "mercimek-kofte", Name: "Lentil patties",
			DietTags:       []string{"klasik", "vegan", "vejetaryen"},
			ProteinTags:    nil,
			IngredientTags: []string{"gluten", "onion"},
		},
		{
			ID: "et-sote", Name: "Beef saute",
			DietTags:       []string{"klasik"},
			ProteinTags:    []string{"red-meat"},
			IngredientTags: []string{"onion", "eggplant"},
		},
		{
			ID: "yogurtlu-makarna", Name: "Pasta with yogurt",
			DietTags:       []string{"klasik", "vejetaryen"},
			ProteinTags:    nil,
			IngredientTags: []string{"gluten", "lactose"},
		},
	}
}
