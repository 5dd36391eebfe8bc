package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestReportRateLimiterNoRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Without a Redis client the limiter must pass requests straight through.
	r := gin.New()
	r.POST("/reports", func(c *gin.Context) {
		c.Set("user_id", "64f000000000000000000001")
	}, ReportRateLimiter(1), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("request %d: status = %d, want %d", i, w.Code, http.StatusCreated)
		}
	}
}
