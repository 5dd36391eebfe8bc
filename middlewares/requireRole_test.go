package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"ward officer allowed", "ward_officer", http.StatusOK},
		{"admin allowed", "admin", http.StatusOK},
		{"citizen forbidden", "citizen", http.StatusForbidden},
		{"volunteer forbidden", "volunteer", http.StatusForbidden},
		{"missing role forbidden", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.PATCH("/gated", func(c *gin.Context) {
				if tt.role != "" {
					c.Set("user_role", tt.role)
				}
			}, RequireRole("ward_officer", "admin"), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/gated", nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}
