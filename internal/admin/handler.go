package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reklaminn/pin25-foods-sub001/internal/session"
)

type Handler struct {
	service  *Service
	sessions *session.JWTProvider
}

func NewHandler(service *Service, sessions *session.JWTProvider) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// LoginPage serves the login form shell. This route is exempt from the
// gate; gating it would loop the redirect.
func (h *Handler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page": "admin-login",
		"next": c.Query("next"),
	})
}

// UnauthorizedPage is the generic denial target. It never says why.
func (h *Handler) UnauthorizedPage(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"page":  "admin-unauthorized",
		"error": "unauthorized",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	principal, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.sessions.Issue(principal.ID, principal.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetCookie(session.Cookie, token, session.CookieMaxAge(), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"email": principal.Email,
		"role":  principal.Role,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(session.Cookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the gate-resolved identity for the admin shell header.
func (h *Handler) Me(c *gin.Context) {
	email, _ := c.Get("adminEmail")
	role, _ := c.Get("adminRole")
	c.JSON(http.StatusOK, gin.H{
		"email": email,
		"role":  role,
	})
}
