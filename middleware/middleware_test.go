package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"speakerhub/config"
	"speakerhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID"), "deviceID": c.GetString("deviceID")})
	})
	return r
}

func TestDeviceDetailsMiddleware(t *testing.T) {
	r := newRouter(DeviceDetailsMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Device-ID", "dev-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"","deviceID":"dev-1"}`, w.Body.String())
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "mw-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })

	r := newRouter(DeviceDetailsMiddleware(), JWTAuthUserMiddleware())
	token, err := utils.GenerateToken("user-1", "dev-1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		device   string
		auth     string
		wantCode int
	}{
		{name: "valid", device: "dev-1", auth: "Bearer " + token, wantCode: http.StatusOK},
		{name: "missing header", device: "dev-1", auth: "", wantCode: http.StatusUnauthorized},
		{name: "garbage token", device: "dev-1", auth: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "other device", device: "dev-2", auth: "Bearer " + token, wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Device-ID", tt.device)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"userID":"user-1","deviceID":"dev-1"}`, w.Body.String())
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newRouter(RateLimitMiddleware(2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
