package wizard

import (
	"time"

	"github.com/reklaminn/pin25-foods-sub001/internal/cache"
)

// SessionTTL bounds how long an abandoned wizard session is kept.
const SessionTTL = 30 * time.Minute

// Sessions stores one Controller per in-progress wizard session. State is
// scoped to a single user's session and never shared between users.
type Sessions struct {
	store cache.Store
	steps []StepDefinition
}

func NewSessions(store cache.Store, steps []StepDefinition) *Sessions {
	return &Sessions{store: store, steps: steps}
}

// Start creates a fresh controller under the given session id.
func (s *Sessions) Start(sessionID string) *Controller {
	ctrl := NewController(s.steps)
	s.store.Set(sessionKey(sessionID), ctrl, SessionTTL)
	return ctrl
}

// Load returns the controller for a session, or nil if the session is
// unknown or expired.
func (s *Sessions) Load(sessionID string) *Controller {
	v, ok := s.store.Get(sessionKey(sessionID))
	if !ok {
		return nil
	}
	ctrl, ok := v.(*Controller)
	if !ok {
		return nil
	}
	return ctrl
}

// Touch refreshes the session TTL after a mutation.
func (s *Sessions) Touch(sessionID string, ctrl *Controller) {
	s.store.Set(sessionKey(sessionID), ctrl, SessionTTL)
}

// Discard drops an abandoned session.
func (s *Sessions) Discard(sessionID string) {
	s.store.Invalidate(sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return "wizard:" + sessionID
}
