package catalog

// Package is a subscription tier: a duration/plan combination, not a fixed
// menu. Excluding ingredients never disqualifies a package, only the meals
// shown alongside it.
type Package struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DurationDays int      `json:"duration_days"`
	MealsPerDay  int      `json:"meals_per_day"`
	PlanPattern  string   `json:"plan_pattern"` // lunch-only | dinner-only | lunch-dinner | full-day
	ServesMin    int      `json:"serves_min"`
	ServesMax    int      `json:"serves_max"`
	PriceCents   int      `json:"price_cents"`
	Features     []string `json:"features"`
	SortOrder    int      `json:"-"`
}

// Meal is one sample-menu entry with the tags the recommendation filters on.
type Meal struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	DietTags       []string `json:"diet_tags"`
	ProteinTags    []string `json:"protein_tags"`
	IngredientTags []string `json:"ingredient_tags"`
}
