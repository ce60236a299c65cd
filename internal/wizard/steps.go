package wizard

// Cardinality describes how many options a step accepts.
type Cardinality string

const (
	// CardinalitySingle: exactly one value; re-selecting the current value
	// is a no-op, selecting another replaces it.
	CardinalitySingle Cardinality = "single"

	// CardinalityMulti: zero or more values up to MaxSelections (when set);
	// toggling a selected value removes it.
	CardinalityMulti Cardinality = "multi"

	// CardinalityRange: a single value chosen from a scale. Behaves like
	// single, but the step ships with a pre-seeded default and is always
	// satisfied.
	CardinalityRange Cardinality = "range"
)

type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// StepDefinition is one entry of the static wizard catalog. The binding
// ties the step to its Selection field, so applying a toggle never goes
// through a step-id string switch.
type StepDefinition struct {
	ID            string
	Title         string
	Cardinality   Cardinality
	MaxSelections int // bounded multi only, 0 = unbounded
	Options       []Option

	binding fieldBinding
}

// HasOption reports whether id names one of the step's options.
func (d StepDefinition) HasOption(id string) bool {
	for _, o := range d.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// fieldBinding is the accessor/mutator pair for a step's Selection field.
type fieldBinding interface {
	values(*Selection) []string
	toggle(*Selection, StepDefinition, string)
	satisfied(*Selection) bool
}

// singleField binds a single-choice step to a string field.
type singleField struct {
	ptr func(*Selection) *string
}

func (f singleField) values(s *Selection) []string {
	if v := *f.ptr(s); v != "" {
		return []string{v}
	}
	return nil
}

func (f singleField) toggle(s *Selection, _ StepDefinition, optionID string) {
	p := f.ptr(s)
	if *p == optionID {
		// Re-selecting the sole value leaves it in place. This mirrors
		// "pick one of N", not "pick zero or one".
		return
	}
	*p = optionID
}

func (f singleField) satisfied(s *Selection) bool {
	return *f.ptr(s) != ""
}

// rangeField is a singleField whose step carries a default, so it is
// always satisfied.
type rangeField struct {
	singleField
}

func (f rangeField) satisfied(*Selection) bool { return true }

// multiField binds a multi-choice step to a slice field.
type multiField struct {
	ptr func(*Selection) *[]string
}

func (f multiField) values(s *Selection) []string {
	return *f.ptr(s)
}

func (f multiField) toggle(s *Selection, def StepDefinition, optionID string) {
	p := f.ptr(s)
	if contains(*p, optionID) {
		*p = remove(*p, optionID)
		return
	}
	if def.MaxSelections > 0 && len(*p) >= def.MaxSelections {
		// At the bound: refused, state stays intact
		return
	}
	*p = append(*p, optionID)
}

func (f multiField) satisfied(s *Selection) bool {
	return len(*f.ptr(s)) > 0
}

// DefaultSteps is the wizard catalog. Loaded once, immutable for the
// process lifetime.
func DefaultSteps() []StepDefinition {
	return []StepDefinition{
		{
			ID:            "goals",
			Title:         "What are your goals?",
			Cardinality:   CardinalityMulti,
			MaxSelections: 3,
			Options: []Option{
				{ID: "lose-weight", Label: "Lose weight"},
				{ID: "gain-muscle", Label: "Gain muscle"},
				{ID: "improve-health", Label: "Eat healthier"},
				{ID: "save-time", Label: "Save time"},
			},
			binding: multiField{ptr: func(s *Selection) *[]string { return &s.Goals }},
		},
		{
			ID:          "diet-type",
			Title:       "How do you eat?",
			Cardinality: CardinalitySingle,
			Options: []Option{
				{ID: "klasik", Label: "Classic"},
				{ID: "vegan", Label: "Vegan"},
				{ID: "vejetaryen", Label: "Vegetarian"},
				{ID: "akdeniz", Label: "Mediterranean"},
				{ID: "glutensiz", Label: "Gluten-free"},
			},
			binding: singleField{ptr: func(s *Selection) *string { return &s.DietType }},
		},
		{
			ID:          "avoid-proteins",
			Title:       "Any proteins to avoid?",
			Cardinality: CardinalityMulti,
			Options: []Option{
				{ID: "red-meat", Label: "Red meat"},
				{ID: "chicken", Label: "Chicken"},
				{ID: "fish", Label: "Fish"},
				{ID: "seafood", Label: "Seafood"},
				{ID: "lamb", Label: "Lamb"},
			},
			binding: multiField{ptr: func(s *Selection) *[]string { return &s.AvoidProteins }},
		},
		{
			ID:          "avoid-ingredients",
			Title:       "Any ingredients to avoid?",
			Cardinality: CardinalityMulti,
			Options: []Option{
				{ID: "gluten", Label: "Gluten"},
				{ID: "lactose", Label: "Lactose"},
				{ID: "nuts", Label: "Nuts"},
				{ID: "mushroom", Label: "Mushroom"},
				{ID: "onion", Label: "Onion"},
				{ID: "eggplant", Label: "Eggplant"},
			},
			binding: multiField{ptr: func(s *Selection) *[]string { return &s.AvoidIngredients }},
		},
		{
			ID:          "people-count",
			Title:       "How many people?",
			Cardinality: CardinalitySingle,
			Options: []Option{
				{ID: "1", Label: "Just me"},
				{ID: "2", Label: "2 people"},
				{ID: "3", Label: "3 people"},
				{ID: "4-plus", Label: "4 or more"},
			},
			binding: singleField{ptr: func(s *Selection) *string { return &s.PeopleCount }},
		},
		{
			ID:          "calories",
			Title:       "Daily calorie target",
			Cardinality: CardinalityRange,
			Options: []Option{
				{ID: "1200", Label: "1200 kcal"},
				{ID: "1500", Label: "1500 kcal"},
				{ID: "1800", Label: "1800 kcal"},
				{ID: "2000", Label: "2000 kcal"},
				{ID: "2500", Label: "2500 kcal"},
			},
			binding: rangeField{singleField{ptr: func(s *Selection) *string { return &s.Calories }}},
		},
		{
			ID:          "meal-plan",
			Title:       "Which meals should we cover?",
			Cardinality: CardinalitySingle,
			Options: []Option{
				{ID: "lunch-only", Label: "Lunch only"},
				{ID: "dinner-only", Label: "Dinner only"},
				{ID: "lunch-dinner", Label: "Lunch + dinner"},
				{ID: "full-day", Label: "Full day"},
			},
			binding: singleField{ptr: func(s *Selection) *string { return &s.MealPlan }},
		},
	}
}
