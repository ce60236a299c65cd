package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reklaminn/pin25-foods-sub001/internal/wizard"
)

type Handler struct {
	sessions *wizard.Sessions
	engine   *Engine
}

func NewHandler(sessions *wizard.Sessions, engine *Engine) *Handler {
	return &Handler{sessions: sessions, engine: engine}
}

// List serves recommendations for a completed wizard session.
func (h *Handler) List(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"candidates": h.engine.Recommend(ctrl.Snapshot()),
	})
}
