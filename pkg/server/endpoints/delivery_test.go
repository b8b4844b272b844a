package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

func TestRecordDeliveryAttempt(t *testing.T) {
	ts := newTestServer(t)
	RegisterDeliveryEndpoints(ts.Server)

	ts.Deliveries.On("Append", mock.MatchedBy(func(row *model.NotificationDeliveryLog) bool {
		return row.Attempt == 2 &&
			row.StatusCode != nil && *row.StatusCode == 502 &&
			row.Success != nil && !*row.Success &&
			row.RequestBody["event"] == "senha_alterada"
	})).Return(nil)

	body := `{
		"attempt": 2,
		"status_code": 502,
		"success": false,
		"error_message": "bad gateway",
		"request_body": {"event": "senha_alterada"}
	}`

	req := httptest.NewRequest("POST", "/deliveries", strings.NewReader(body))
	req.Header.Set("Authorization", ts.authHeader(t, uuid.New(), ""))
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ts.Deliveries.AssertExpectations(t)
}

func TestRecordDeliveryAttemptValidation(t *testing.T) {
	ts := newTestServer(t)
	RegisterDeliveryEndpoints(ts.Server)

	t.Run("missing request_body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/deliveries", strings.NewReader(`{"attempt":1}`))
		req.Header.Set("Authorization", ts.authHeader(t, uuid.New(), ""))
		w := httptest.NewRecorder()
		ts.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("attempt below one", func(t *testing.T) {
		ts.Deliveries.On("Append", mock.AnythingOfType("*model.NotificationDeliveryLog")).
			Return(store.ErrInvalidAttempt).Once()

		req := httptest.NewRequest(
			"POST",
			"/deliveries",
			strings.NewReader(`{"attempt":0,"request_body":{"event":"x"}}`),
		)
		req.Header.Set("Authorization", ts.authHeader(t, uuid.New(), ""))
		w := httptest.NewRecorder()
		ts.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestRecordDeliveryAttemptDisabled(t *testing.T) {
	ts := newTestServer(t)
	ts.Config.DeliveryLogEnabled = false
	RegisterDeliveryEndpoints(ts.Server)

	req := httptest.NewRequest(
		"POST",
		"/deliveries",
		strings.NewReader(`{"attempt":1,"request_body":{"event":"x"}}`),
	)
	req.Header.Set("Authorization", ts.authHeader(t, uuid.New(), ""))
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	ts.Deliveries.AssertNotCalled(t, "Append", mock.Anything)
}

func TestListDeliveries(t *testing.T) {
	ts := newTestServer(t)
	RegisterDeliveryEndpoints(ts.Server)

	ts.Deliveries.On("List").Return(nil, nil)

	req := httptest.NewRequest("GET", "/deliveries", nil)
	req.Header.Set("Authorization", ts.authHeader(t, uuid.New(), ""))
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPurgeDeliveries(t *testing.T) {
	ts := newTestServer(t)
	RegisterDeliveryEndpoints(ts.Server)

	ts.Deliveries.On("DeleteAll").Return(int64(7), nil)

	req := httptest.NewRequest("DELETE", "/deliveries", nil)
	req.Header.Set("Authorization", ts.authHeader(t, uuid.New(), ""))
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response DeliveryPurgeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(7), response.Deleted)
}

func TestDeleteDelivery(t *testing.T) {
	ts := newTestServer(t)
	RegisterDeliveryEndpoints(ts.Server)

	id := uuid.New()
	ts.Deliveries.On("DeleteOne", id).Return(nil)

	req := httptest.NewRequest("DELETE", "/deliveries/"+id.String(), nil)
	req.Header.Set("Authorization", ts.authHeader(t, uuid.New(), ""))
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	ts.Deliveries.AssertExpectations(t)
}
