package wizard

// Controller owns the current-step cursor and applies validated mutations
// to the Selection. It is a pure, synchronous reducer: every operation is
// total, invalid toggles are refused and invalid moves are no-ops.
//
// The cursor runs from 0 to len(steps); len(steps) is the virtual
// "recommendations" state, not a step itself.
type Controller struct {
	steps  []StepDefinition
	cursor int
	sel    *Selection
}

func NewController(steps []StepDefinition) *Controller {
	return &Controller{
		steps: steps,
		sel:   NewSelection(),
	}
}

// CurrentStep returns the step at the cursor. ok is false at the terminal
// recommendations state.
func (c *Controller) CurrentStep() (StepDefinition, bool) {
	if c.cursor >= len(c.steps) {
		return StepDefinition{}, false
	}
	return c.steps[c.cursor], true
}

// StepIndex returns the cursor position and the number of real steps.
func (c *Controller) StepIndex() (int, int) {
	return c.cursor, len(c.steps)
}

// Done reports whether the wizard reached the recommendations state.
func (c *Controller) Done() bool {
	return c.cursor == len(c.steps)
}

// SelectionsForCurrentStep projects the Selection field bound to the
// current step, in insertion order.
func (c *Controller) SelectionsForCurrentStep() []string {
	step, ok := c.CurrentStep()
	if !ok {
		return nil
	}
	return step.binding.values(c.sel)
}

// ToggleOption applies one user toggle to the current step's field under
// its cardinality rule. Unknown option ids and over-bound toggles are
// refused; the cursor never moves.
func (c *Controller) ToggleOption(optionID string) {
	step, ok := c.CurrentStep()
	if !ok {
		return
	}
	if !step.HasOption(optionID) {
		return
	}
	step.binding.toggle(c.sel, step, optionID)
}

// CanAdvance reports whether the current step's cardinality rule is
// satisfied. At the terminal state there is nothing to advance to.
func (c *Controller) CanAdvance() bool {
	step, ok := c.CurrentStep()
	if !ok {
		return false
	}
	return step.binding.satisfied(c.sel)
}

// Advance moves the cursor forward one step, or from the last real step
// into the recommendations state. A no-op when CanAdvance is false; the
// guard holds even if the caller forgot to check.
func (c *Controller) Advance() {
	if !c.CanAdvance() {
		return
	}
	c.cursor++
}

// Retreat moves back one step; from the recommendations state it returns
// to the last real step. A no-op at the first step.
func (c *Controller) Retreat() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// Snapshot hands off a copy of the selection. Callers never see live
// wizard state.
func (c *Controller) Snapshot() *Selection {
	return c.sel.Clone()
}
