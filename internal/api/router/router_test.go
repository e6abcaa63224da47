package router

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/sungminna/exchange-credentials/internal/api/middleware"
	"github.com/sungminna/exchange-credentials/internal/domain/model"
	"github.com/sungminna/exchange-credentials/internal/domain/repository/mocks"
	"github.com/sungminna/exchange-credentials/internal/service/credential"
	"github.com/sungminna/exchange-credentials/pkg/ratelimit"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T, limiter *ratelimit.ClientLimiter) (*gin.Engine, *mocks.MockCredentialStore) {
	store := mocks.NewMockCredentialStore(gomock.NewController(t))
	return Setup(&Config{Repository: credential.NewRepository(store), Limiter: limiter}), store
}

func TestHealth(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		r, store := setup(t, nil)
		store.EXPECT().Ping(gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("store down", func(t *testing.T) {
		r, store := setup(t, nil)
		store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unavailable")
	})
}

func TestRoutes(t *testing.T) {
	r, _ := setup(t, nil)

	want := map[string]bool{
		"GET /health":              false,
		"POST /account":            false,
		"PUT /account":             false,
		"PATCH /account":           false,
		"DELETE /account/:uid":     false,
		"PUT /key/account":         false,
		"DELETE /key/account/:uid": false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		assert.True(t, found, "route %s is not registered", route)
	}
}

func TestRateLimitedRoutes(t *testing.T) {
	r, store := setup(t, ratelimit.NewClientLimiter(1, time.Minute))
	store.EXPECT().ClearAPIKey(gomock.Any(), model.AccountID("u1"), nil).Return(model.AccountID("u1"), nil)
	store.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodDelete, "/key/account/u1", bytes.NewReader(nil)))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodDelete, "/key/account/u1", bytes.NewReader(nil)))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// health checks bypass the limiter
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
