package wizard

// DefaultCalories is pre-seeded on every new Selection. The calories step
// always has a value, even before the user touches it.
const DefaultCalories = "1500"

// Selection is one user's in-progress package configuration.
// It is scoped to a single wizard session and mutated only by the Controller.
type Selection struct {
	Goals            []string `json:"goals"`
	DietType         string   `json:"diet_type"`
	AvoidProteins    []string `json:"avoid_proteins"`
	AvoidIngredients []string `json:"avoid_ingredients"`
	PeopleCount      string   `json:"people_count"`
	Calories         string   `json:"calories"`
	MealPlan         string   `json:"meal_plan"`
}

func NewSelection() *Selection {
	return &Selection{
		Calories: DefaultCalories,
	}
}

// Clone returns an independent copy. The recommendation engine receives a
// copy, never a reference into live wizard state.
func (s *Selection) Clone() *Selection {
	out := *s
	out.Goals = append([]string(nil), s.Goals...)
	out.AvoidProteins = append([]string(nil), s.AvoidProteins...)
	out.AvoidIngredients = append([]string(nil), s.AvoidIngredients...)
	return &out
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func remove(values []string, v string) []string {
	out := values[:0]
	for _, x := range values {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
