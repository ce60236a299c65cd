package wizard

import (
	"reflect"
	"testing"
)

func testSteps() []StepDefinition {
	return []StepDefinition{
		{
			ID:            "goals",
			Cardinality:   CardinalityMulti,
			MaxSelections: 3,
			Options: []Option{
				{ID: "lose-weight"},
				{ID: "gain-muscle"},
				{ID: "improve-health"},
				{ID: "save-time"},
			},
			binding: multiField{ptr: func(s *Selection) *[]string { return &s.Goals }},
		},
		{
			ID:          "diet-type",
			Cardinality: CardinalitySingle,
			Options: []Option{
				{ID: "vegan"},
				{ID: "akdeniz"},
			},
			binding: singleField{ptr: func(s *Selection) *string { return &s.DietType }},
		},
	}
}

func TestMultiStepRespectsMaxSelections(t *testing.T) {
	ctrl := NewController(testSteps())

	ctrl.ToggleOption("lose-weight")
	ctrl.ToggleOption("gain-muscle")
	ctrl.ToggleOption("improve-health")

	if got := ctrl.SelectionsForCurrentStep(); len(got) != 3 {
		t.Fatalf("expected 3 goals, got %v", got)
	}

	// Fourth distinct option is refused, not stored
	ctrl.ToggleOption("save-time")
	if got := ctrl.SelectionsForCurrentStep(); len(got) != 3 {
		t.Fatalf("expected refusal to keep size 3, got %v", got)
	}

	// Toggling an already-selected option removes it
	ctrl.ToggleOption("lose-weight")
	got := ctrl.SelectionsForCurrentStep()
	if len(got) != 2 {
		t.Fatalf("expected removal to leave 2, got %v", got)
	}
	if !reflect.DeepEqual(got, []string{"gain-muscle", "improve-health"}) {
		t.Fatalf("expected insertion order kept, got %v", got)
	}
}

func TestSingleStepReplacesDoesNotAccumulate(t *testing.T) {
	ctrl := NewController(testSteps())
	ctrl.ToggleOption("lose-weight")
	ctrl.Advance()

	ctrl.ToggleOption("vegan")
	ctrl.ToggleOption("akdeniz")

	got := ctrl.SelectionsForCurrentStep()
	if len(got) != 1 || got[0] != "akdeniz" {
		t.Fatalf("expected single replace, got %v", got)
	}
}

func TestSingleStepReselectIsNoOpNotClear(t *testing.T) {
	ctrl := NewController(testSteps())
	ctrl.ToggleOption("lose-weight")
	ctrl.Advance()

	ctrl.ToggleOption("vegan")
	ctrl.ToggleOption("vegan")

	got := ctrl.SelectionsForCurrentStep()
	if len(got) != 1 || got[0] != "vegan" {
		t.Fatalf("re-select must keep the value, got %v", got)
	}
}

func TestUnknownOptionIsRefused(t *testing.T) {
	ctrl := NewController(testSteps())

	ctrl.ToggleOption("not-an-option")

	if got := ctrl.SelectionsForCurrentStep(); len(got) != 0 {
		t.Fatalf("expected unchanged state, got %v", got)
	}
}

func TestAdvanceGuardedByCardinality(t *testing.T) {
	ctrl := NewController(testSteps())

	if ctrl.CanAdvance() {
		t.Fatalf("empty multi step must not advance")
	}

	ctrl.Advance()
	if idx, _ := ctrl.StepIndex(); idx != 0 {
		t.Fatalf("guarded advance must be a no-op, cursor at %d", idx)
	}

	ctrl.ToggleOption("save-time")
	if !ctrl.CanAdvance() {
		t.Fatalf("one selection satisfies a multi step")
	}

	ctrl.Advance()
	if idx, _ := ctrl.StepIndex(); idx != 1 {
		t.Fatalf("expected cursor 1, got %d", idx)
	}
}

func TestAdvancePastLastStepReachesRecommendations(t *testing.T) {
	ctrl := NewController(testSteps())
	ctrl.ToggleOption("lose-weight")
	ctrl.Advance()
	ctrl.ToggleOption("vegan")
	ctrl.Advance()

	if !ctrl.Done() {
		t.Fatalf("expected terminal recommendations state")
	}
	if _, ok := ctrl.CurrentStep(); ok {
		t.Fatalf("terminal state is not a step")
	}

	// Advancing at the terminal state stays put
	ctrl.Advance()
	if idx, total := ctrl.StepIndex(); idx != total {
		t.Fatalf("expected cursor pinned at %d, got %d", total, idx)
	}
}

func TestRetreat(t *testing.T) {
	ctrl := NewController(testSteps())

	// Cannot retreat past the first step
	ctrl.Retreat()
	if idx, _ := ctrl.StepIndex(); idx != 0 {
		t.Fatalf("retreat at first step must be a no-op")
	}

	ctrl.ToggleOption("lose-weight")
	ctrl.Advance()
	ctrl.ToggleOption("vegan")
	ctrl.Advance()

	// From the terminal state, retreat returns to the last real step
	ctrl.Retreat()
	step, ok := ctrl.CurrentStep()
	if !ok || step.ID != "diet-type" {
		t.Fatalf("expected diet-type, got %v", step.ID)
	}
}

func TestRangeStepAlwaysSatisfied(t *testing.T) {
	steps := []StepDefinition{
		{
			ID:          "calories",
			Cardinality: CardinalityRange,
			Options:     []Option{{ID: "1200"}, {ID: "1500"}},
			binding:     rangeField{singleField{ptr: func(s *Selection) *string { return &s.Calories }}},
		},
	}
	ctrl := NewController(steps)

	if !ctrl.CanAdvance() {
		t.Fatalf("range step ships with a default and is always satisfied")
	}
	if got := ctrl.SelectionsForCurrentStep(); len(got) != 1 || got[0] != DefaultCalories {
		t.Fatalf("expected pre-seeded default, got %v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	ctrl := NewController(testSteps())
	ctrl.ToggleOption("lose-weight")

	snap := ctrl.Snapshot()
	snap.Goals = append(snap.Goals, "gain-muscle")
	snap.DietType = "vegan"

	if got := ctrl.SelectionsForCurrentStep(); len(got) != 1 {
		t.Fatalf("mutating the snapshot leaked into live state: %v", got)
	}
}

func TestDefaultStepsCoverEverySelectionField(t *testing.T) {
	steps := DefaultSteps()

	seen := map[string]bool{}
	for _, s := range steps {
		if s.binding == nil {
			t.Fatalf("step %s has no field binding", s.ID)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate step id %s", s.ID)
		}
		seen[s.ID] = true

		ids := map[string]bool{}
		for _, o := range s.Options {
			if ids[o.ID] {
				t.Fatalf("step %s has duplicate option %s", s.ID, o.ID)
			}
			ids[o.ID] = true
		}
	}

	for _, want := range []string{
		"goals", "diet-type", "avoid-proteins", "avoid-ingredients",
		"people-count", "calories", "meal-plan",
	} {
		if !seen[want] {
			t.Fatalf("missing step %s", want)
		}
	}
}
