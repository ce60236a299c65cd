package session

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Cookie names the admin session cookie.
const Cookie = "pin25_admin"

const lifetime = 24 * time.Hour

// ErrNoSession covers every way a request can lack a usable session:
// missing cookie, expired token, bad signature. Callers never learn which.
var ErrNoSession = errors.New("no active session")

// Session is the identity embedded in a valid session cookie.
type Session struct {
	PrincipalID string
	Email       string
}

// Provider resolves the session for an incoming request.
type Provider interface {
	FromRequest(c *gin.Context) (*Session, error)
}

// JWTProvider issues and verifies HS256 session cookies.
type JWTProvider struct{}

func NewJWTProvider() *JWTProvider {
	return &JWTProvider{}
}

func getSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

func (p *JWTProvider) Issue(principalID, email string) (string, error) {
	if principalID == "" {
		return "", errors.New("empty principal id passed to Issue")
	}

	secret, err := getSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":   principalID,
		"email": email,
		"exp":   time.Now().Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (p *JWTProvider) FromRequest(c *gin.Context) (*Session, error) {
	raw, err := c.Cookie(Cookie)
	if err != nil || raw == "" {
		return nil, ErrNoSession
	}

	secret, err := getSecret()
	if err != nil {
		return nil, ErrNoSession
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}

	principalID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if principalID == "" {
		return nil, ErrNoSession
	}

	return &Session{PrincipalID: principalID, Email: email}, nil
}

// CookieMaxAge is what handlers pass to SetCookie.
func CookieMaxAge() int {
	return int(lifetime.Seconds())
}
