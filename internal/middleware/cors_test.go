package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/api/public/events/1/bookings", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/public/events/1/bookings", nil)
	req.Header.Set("Origin", "https://agenda.example.com")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://agenda.example.com" {
		t.Fatalf("expected origin to be echoed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != HeaderRequestID {
		t.Fatalf("expected request id to be exposed, got %q", got)
	}
}
