package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct{ err error }

func (f fakeStore) Ping(context.Context) error { return f.err }
func (f fakeStore) Kind() string               { return "fake" }

func serveHealth(t *testing.T, h *HealthHandler, method, path string) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	h.RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, path, nil))

	var response HealthResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	}
	return rr, response
}

func TestHealthCheck(t *testing.T) {
	for _, path := range []string{"/health", "/healthz"} {
		rr, response := serveHealth(t, NewHealthHandler("test-service", "1.0.0", fakeStore{}, "mock"), http.MethodGet, path)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "test-service", response.Service)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "up", response.Store)
		assert.Equal(t, "fake", response.StoreKind)
		assert.Equal(t, "mock", response.Summarizer)
	}
}

func TestHealthCheckStoreDown(t *testing.T) {
	rr, response := serveHealth(t, NewHealthHandler("svc", "1", fakeStore{err: errors.New("refused")}, "gemini"), http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "degraded", response.Status)
	assert.Equal(t, "down", response.Store)
}

func TestHealthCheckWithoutStore(t *testing.T) {
	_, response := serveHealth(t, NewHealthHandler("svc", "1", nil, ""), http.MethodGet, "/health")
	assert.Equal(t, "disabled", response.Store)
	assert.Equal(t, "healthy", response.Status)
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr, _ := serveHealth(t, NewHealthHandler("test-service", "1.0.0", nil, ""), http.MethodPost, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
