package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/reklaminn/pin25-foods-sub001/internal/admin"
	"github.com/reklaminn/pin25-foods-sub001/internal/session"
)

const (
	LoginPath        = "/admin/login"
	UnauthorizedPath = "/admin/unauthorized"
)

// AdminGate decides allow/redirect for every request under the admin
// prefix before any handler runs.
//
// Fail closed: a registry error, a missing principal, and an inactive
// principal all collapse into the same unauthorized redirect. Ambiguity is
// never "admin". Do not loosen this on transient errors.
//
// The login and unauthorized pages are registered outside the gated group,
// so the gate never evaluates session state for them.
func AdminGate(sessions session.Provider, registry admin.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.FromRequest(c)
		if err != nil {
			// Unauthenticated: send to login, preserving the target path
			c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}

		principal, err := registry.FindByID(c.Request.Context(), sess.PrincipalID)
		if err != nil || principal == nil || !principal.IsActive {
			c.Redirect(http.StatusFound, UnauthorizedPath)
			c.Abort()
			return
		}

		// Attach admin identity to request context
		c.Set("adminID", principal.ID)
		c.Set("adminEmail", principal.Email)
		c.Set("adminRole", principal.Role)
		c.Next()
	}
}
