package wizard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie carries the wizard session id. The cookie is host-scoped
// and short-lived; losing it just restarts the wizard.
const SessionCookie = "pin25_wizard"

type Handler struct {
	sessions *Sessions
}

func NewHandler(sessions *Sessions) *Handler {
	return &Handler{sessions: sessions}
}

// Start opens a new wizard session and returns the first step.
func (h *Handler) Start(c *gin.Context) {
	sessionID := uuid.New().String()
	ctrl := h.sessions.Start(sessionID)

	c.SetCookie(SessionCookie, sessionID, int(SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusCreated, stepView(ctrl))
}

// CurrentStep returns the step at the cursor with the user's selections.
func (h *Handler) CurrentStep(c *gin.Context) {
	ctrl, _, ok := h.controller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stepView(ctrl))
}

// Toggle applies one option toggle to the current step. A refused toggle
// is not an error; the response simply shows unchanged selections.
func (h *Handler) Toggle(c *gin.Context) {
	ctrl, sessionID, ok := h.controller(c)
	if !ok {
		return
	}

	var req struct {
		OptionID string `json:"option_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctrl.ToggleOption(req.OptionID)
	h.sessions.Touch(sessionID, ctrl)

	c.JSON(http.StatusOK, stepView(ctrl))
}

// Next advances the cursor. Advancing past an unsatisfied step is a no-op.
func (h *Handler) Next(c *gin.Context) {
	ctrl, sessionID, ok := h.controller(c)
	if !ok {
		return
	}

	ctrl.Advance()
	h.sessions.Touch(sessionID, ctrl)

	c.JSON(http.StatusOK, stepView(ctrl))
}

// Back retreats the cursor.
func (h *Handler) Back(c *gin.Context) {
	ctrl, sessionID, ok := h.controller(c)
	if !ok {
		return
	}

	ctrl.Retreat()
	h.sessions.Touch(sessionID, ctrl)

	c.JSON(http.StatusOK, stepView(ctrl))
}

func (h *Handler) controller(c *gin.Context) (*Controller, string, bool) {
	sessionID, err := c.Cookie(SessionCookie)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no wizard session"})
		return nil, "", false
	}

	ctrl := h.sessions.Load(sessionID)
	if ctrl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no wizard session"})
		return nil, "", false
	}

	return ctrl, sessionID, true
}

func stepView(ctrl *Controller) gin.H {
	index, total := ctrl.StepIndex()

	if ctrl.Done() {
		return gin.H{
			"done":        true,
			"step":        index,
			"total_steps": total,
		}
	}

	step, _ := ctrl.CurrentStep()
	return gin.H{
		"done":           false,
		"step":           index,
		"total_steps":    total,
		"step_id":        step.ID,
		"title":          step.Title,
		"cardinality":    step.Cardinality,
		"max_selections": step.MaxSelections,
		"options":        step.Options,
		"selected":       ctrl.SelectionsForCurrentStep(),
		"can_advance":    ctrl.CanAdvance(),
	}
}
