package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbess/bessd/pkg/manager"
)

func newTestHealthServer(t *testing.T) (*HealthServer, *manager.Manager) {
	t.Helper()
	mgr := manager.New(manager.Config{DefaultCore: 0})
	t.Cleanup(func() {
		mgr.Workers().Barrier().Resume()
		mgr.DestroyAllWorkers()
	})
	return NewHealthServer(mgr), mgr
}

func TestHealthEndpoint(t *testing.T) {
	hs, mgr := newTestHealthServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	hs.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, mgr.InstanceID(), resp.InstanceID)
}

func TestHealthRejectsPost(t *testing.T) {
	hs, _ := newTestHealthServer(t)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	hs.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReadyReflectsPauseState(t *testing.T) {
	hs, mgr := newTestHealthServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	hs.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	mgr.Workers().Barrier().Pause()
	rec = httptest.NewRecorder()
	hs.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "paused", resp.Checks["workers"])

	mgr.Workers().Barrier().Resume()
	rec = httptest.NewRecorder()
	hs.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpointRegistered(t *testing.T) {
	hs, _ := newTestHealthServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	hs.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bessd_workers_active")
}
