package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reklaminn/pin25-foods-sub001/internal/catalog"
	"github.com/reklaminn/pin25-foods-sub001/internal/wizard"
)

type Handler struct {
	sessions *wizard.Sessions
	catalog  *catalog.Service
	store    *Store
}

func NewHandler(sessions *wizard.Sessions, cat *catalog.Service, store *Store) *Handler {
	return &Handler{sessions: sessions, catalog: cat, store: store}
}

// Choose records the picked package with the completed selection for the
// checkout flow.
func (h *Handler) Choose(c *gin.Context) {
	sessionID, err := c.Cookie(wizard.SessionCookie)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no wizard session"})
		return
	}

	ctrl := h.sessions.Load(sessionID)
	if ctrl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no wizard session"})
		return
	}
	if !ctrl.Done() {
		c.JSON(http.StatusConflict, gin.H{"error": "wizard not complete"})
		return
	}

	var req struct {
		PackageID string `json:"package_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PackageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if _, ok := h.catalog.PackageByID(req.PackageID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown package"})
		return
	}

	handoff := h.store.Put(sessionID, req.PackageID, ctrl.Snapshot())
	c.JSON(http.StatusCreated, gin.H{"handoff_id": handoff.ID})
}

// Handoff hands the stored record to the checkout flow. Reading consumes
// it; a second read misses.
func (h *Handler) Handoff(c *gin.Context) {
	sessionID, err := c.Cookie(wizard.SessionCookie)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no handoff"})
		return
	}

	handoff, ok := h.store.Take(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no handoff"})
		return
	}

	c.JSON(http.StatusOK, handoff)
}
