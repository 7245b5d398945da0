package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"event-management-backend/config"
)

func newGuardedRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(&config.Config{APIKey: apiKey}))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func doGet(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if key != "" {
		req.Header.Set("x-api-key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantCode   int
		wantBody   string
	}{
		{
			name:       "missing header",
			configured: "secret",
			sent:       "",
			wantCode:   http.StatusUnauthorized,
			wantBody:   "Missing x-api-key header.",
		},
		{
			name:       "wrong key",
			configured: "secret",
			sent:       "nope",
			wantCode:   http.StatusUnauthorized,
			wantBody:   "Invalid API key.",
		},
		{
			name:       "correct key",
			configured: "secret",
			sent:       "secret",
			wantCode:   http.StatusOK,
			wantBody:   "pong",
		},
		{
			name:       "empty configured key rejects everything",
			configured: "",
			sent:       "anything",
			wantCode:   http.StatusUnauthorized,
			wantBody:   "Invalid API key.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newGuardedRouter(tt.configured)
			w := doGet(r, tt.sent)
			require.Equal(t, tt.wantCode, w.Code)
			require.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
