package recommend

import (
	"sort"
	"strconv"
	"strings"

	"github.com/reklaminn/pin25-foods-sub001/internal/catalog"
	"github.com/reklaminn/pin25-foods-sub001/internal/wizard"
)

// sampleMenuSize caps how many meals are shown per candidate.
const sampleMenuSize = 3

// Candidate is one ranked package offer.
type Candidate struct {
	Package    catalog.Package `json:"package"`
	Score      int             `json:"score"`
	Eligible   bool            `json:"eligible"`
	SampleMenu []catalog.Meal  `json:"sample_menu"`
}

// Engine maps a completed selection onto the package catalog. It is
// deterministic: identical selection + identical catalog always yields the
// same ordered result. An incomplete selection never fails; it degrades to
// the general lineup.
type Engine struct {
	catalog *catalog.Service
}

func NewEngine(cat *catalog.Service) *Engine {
	return &Engine{catalog: cat}
}

func (e *Engine) Recommend(sel *wizard.Selection) []Candidate {
	packages := e.catalog.Packages()
	meals := e.catalog.Meals()

	candidates := make([]Candidate, 0, len(packages))
	for _, p := range packages {
		candidates = append(candidates, Candidate{
			Package:    p,
			Score:      score(sel, p),
			Eligible:   planCompatible(sel.MealPlan, p.PlanPattern),
			SampleMenu: sampleMenu(sel, meals),
		})
	}

	// Stable sort keeps catalog order on ties
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

func score(sel *wizard.Selection, p catalog.Package) int {
	total := 0

	if sel.MealPlan != "" && sel.MealPlan == p.PlanPattern {
		total += 3
	}

	for _, goal := range sel.Goals {
		if contains(p.Features, goal) {
			total++
		}
	}

	if n, ok := peopleCount(sel.PeopleCount); ok {
		if n >= p.ServesMin && n <= p.ServesMax {
			total++
		}
	}

	return total
}

// planCompatible is vacuously true when no meal plan was picked: packages
// stay eligible on minimal input.
func planCompatible(selected, pattern string) bool {
	if selected == "" {
		return true
	}
	return selected == pattern
}

func peopleCount(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(id, "-plus"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// sampleMenu filters the meal pool by diet type and exclusions. Exclusions
// drop individual meals, never whole packages.
func sampleMenu(sel *wizard.Selection, meals []catalog.Meal) []catalog.Meal {
	var out []catalog.Meal
	for _, m := range meals {
		if len(out) == sampleMenuSize {
			break
		}
		if sel.DietType != "" && !contains(m.DietTags, sel.DietType) {
			continue
		}
		if intersects(m.ProteinTags, sel.AvoidProteins) {
			continue
		}
		if intersects(m.IngredientTags, sel.AvoidIngredients) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}
