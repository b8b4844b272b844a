package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEndpoint(t *testing.T) {
	ts := newTestServer(t)
	RegisterStatusEndpoints(ts.Server)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.NotEmpty(t, response.Version)
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		ts := newTestServer(t)
		RegisterStatusEndpoints(ts.Server)

		ts.Health.On("CheckConnectivity").Return(nil)

		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		ts.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		ts := newTestServer(t)
		RegisterStatusEndpoints(ts.Server)

		ts.Health.On("CheckConnectivity").Return(errors.New("connection refused"))

		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		ts.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
