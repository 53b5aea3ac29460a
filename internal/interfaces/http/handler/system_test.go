package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/beerworks/backend/internal/infrastructure/persistence"
)

type fakeDB struct {
	pingErr error
}

func (f *fakeDB) Ping() error { return f.pingErr }

func (f *fakeDB) Stats() (persistence.ConnectionStats, error) {
	return persistence.ConnectionStats{OpenConnections: 3, InUse: 1, Idle: 2}, nil
}

func systemEngine(db DatabaseHealth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api/v1")
	NewSystemHandler(db).RegisterRoutes(api)
	return engine
}

func TestSystemPing(t *testing.T) {
	engine := systemEngine(nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestSystemHealthUp(t *testing.T) {
	engine := systemEngine(&fakeDB{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"up"`)
	assert.Contains(t, w.Body.String(), `"open_connections":3`)
}

func TestSystemHealthDatabaseDown(t *testing.T) {
	engine := systemEngine(&fakeDB{pingErr: errors.New("connection refused")})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"down"`)
}

func TestSystemInfo(t *testing.T) {
	engine := systemEngine(nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/info", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_version")
}
