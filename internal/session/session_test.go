package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func resolve(t *testing.T, cookie *http.Cookie) (*Session, error) {
	t.Helper()

	var (
		sess *Session
		err  error
	)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		sess, err = NewJWTProvider().FromRequest(c)
	})

	req := httptest.NewRequest("GET", "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)
	return sess, err
}

func TestIssueAndResolve(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := NewJWTProvider().Issue("a1", "admin@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	sess, err := resolve(t, &http.Cookie{Name: Cookie, Value: token})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.PrincipalID != "a1" || sess.Email != "admin@example.com" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestMissingCookieIsNoSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := resolve(t, nil); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestTamperedTokenIsNoSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := NewJWTProvider().Issue("a1", "admin@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	_, err = resolve(t, &http.Cookie{Name: Cookie, Value: token + "x"})
	if err != ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestIssueRequiresPrincipal(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := NewJWTProvider().Issue("", "admin@example.com"); err == nil {
		t.Fatalf("expected error for empty principal id")
	}
}
