package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrycheck/pkg/config"
	"entrycheck/pkg/contracts"
	"entrycheck/pkg/logger"
	"entrycheck/pkg/middleware"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()

	cfg := &config.Config{
		Port:              "0",
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    time.Second,
		MaxRequestSize:    1024,
		Log:               logger.Discard(),
	}

	appRoutes := contracts.RoutesFunc(func(r *httprouter.Router) {
		r.POST("/api/v1/echo", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			w.WriteHeader(http.StatusOK)
		})
		r.POST("/api/v1/panic", func(http.ResponseWriter, *http.Request, httprouter.Params) {
			panic("boom")
		})
	})
	healthRoutes := contracts.RoutesFunc(func(r *httprouter.Router) {
		r.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			w.WriteHeader(http.StatusOK)
		})
	})

	a := NewApplication()
	a.SetApp(cfg, appRoutes, healthRoutes)
	t.Cleanup(a.rateLimiter.Stop)
	return a
}

func post(h http.Handler, path, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestApplication_MiddlewareChain(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := post(h, "/api/v1/echo", "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	// rejected before the rate limiter, so it does not use up the budget
	rec = post(h, "/api/v1/echo", "text/plain")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = post(h, "/api/v1/echo", "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = post(h, "/api/v1/echo", "application/json")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestApplication_HealthBypassesRateLimit(t *testing.T) {
	h := newTestApp(t).Handler()

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestApplication_RecoversPanics(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := post(h, "/api/v1/panic", "application/json")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
