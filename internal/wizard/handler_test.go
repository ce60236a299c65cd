package wizard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/reklaminn/pin25-foods-sub001/internal/cache"
)

func newTestRouter() (*gin.Engine, *Sessions) {
	sessions := NewSessions(cache.NewMemoryStore(), DefaultSteps())
	handler := NewHandler(sessions)

	router := gin.New()
	router.POST("/wizard/start", handler.Start)
	router.GET("/wizard/step", handler.CurrentStep)
	router.POST("/wizard/toggle", handler.Toggle)
	router.POST("/wizard/next", handler.Next)
	router.POST("/wizard/back", handler.Back)
	return router, sessions
}

func startSession(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest("POST", "/wizard/start", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("no session cookie set")
	return nil
}

func TestStartReturnsFirstStep(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest("POST", "/wizard/start", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"step_id":"goals"`) {
		t.Fatalf("expected goals step, got %s", w.Body.String())
	}
}

func TestStepWithoutSessionIs404(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest("GET", "/wizard/step", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestToggleThenNext(t *testing.T) {
	router, _ := newTestRouter()
	cookie := startSession(t, router)

	req := httptest.NewRequest("POST", "/wizard/toggle", strings.NewReader(`{"option_id":"lose-weight"}`))
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"can_advance":true`) {
		t.Fatalf("expected can_advance true, got %s", w.Body.String())
	}

	req = httptest.NewRequest("POST", "/wizard/next", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `"step_id":"diet-type"`) {
		t.Fatalf("expected diet-type step, got %s", w.Body.String())
	}
}

func TestNextOnEmptyStepStaysPut(t *testing.T) {
	router, _ := newTestRouter()
	cookie := startSession(t, router)

	req := httptest.NewRequest("POST", "/wizard/next", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `"step_id":"goals"`) {
		t.Fatalf("expected to stay on goals, got %s", w.Body.String())
	}
}

func TestExpiredSessionIs404(t *testing.T) {
	router, sessions := newTestRouter()
	cookie := startSession(t, router)

	sessions.Discard(cookie.Value)

	req := httptest.NewRequest("GET", "/wizard/step", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after discard, got %d", w.Code)
	}
}
