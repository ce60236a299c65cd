package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/reklaminn/pin25-foods-sub001/internal/cache"
	"github.com/reklaminn/pin25-foods-sub001/internal/wizard"
)

// HandoffTTL bounds how long a completed configuration waits for checkout.
const HandoffTTL = 15 * time.Minute

// Handoff is the record the wizard writes and the checkout flow reads once:
// the completed selection plus the chosen package.
type Handoff struct {
	ID        string            `json:"id"`
	PackageID string            `json:"package_id"`
	Selection *wizard.Selection `json:"selection"`
	CreatedAt time.Time         `json:"created_at"`
}

// Store keeps hand-offs in the session-scoped cache, keyed by wizard
// session id.
type Store struct {
	cache cache.Store
}

func NewStore(c cache.Store) *Store {
	return &Store{cache: c}
}

func (s *Store) Put(sessionID, packageID string, sel *wizard.Selection) Handoff {
	h := Handoff{
		ID:        uuid.New().String(),
		PackageID: packageID,
		Selection: sel,
		CreatedAt: time.Now().UTC(),
	}
	s.cache.Set(handoffKey(sessionID), h, HandoffTTL)
	return h
}

// Take retrieves and invalidates in one step: the record is readable once.
func (s *Store) Take(sessionID string) (Handoff, bool) {
	v, ok := s.cache.Get(handoffKey(sessionID))
	if !ok {
		return Handoff{}, false
	}
	s.cache.Invalidate(handoffKey(sessionID))

	h, ok := v.(Handoff)
	return h, ok
}

func handoffKey(sessionID string) string {
	return "handoff:" + sessionID
}
