package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franqsuite/backoffice/pkg/model"
)

func TestWhoami(t *testing.T) {
	ts := newTestServer(t)
	RegisterWhoamiEndpoint(ts.Server)

	userID := uuid.New()
	ts.Users.On("FetchUser", userID).Return(&model.User{
		ID:       userID,
		FullName: "Maria Souza",
		Email:    "maria@franqsuite.com.br",
	})
	ts.Permissions.On("FetchUserRole", userID).Return("gerente")
	ts.Permissions.On("ListOverridesForUser", userID).Return([]model.UserTablePermissionOverride{
		{UserID: userID, Table: "senhas", PermissionFlags: model.PermissionFlags{CanRead: true}},
	}, nil)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", ts.authHeader(t, userID, "M. Souza"))
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response WhoamiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, userID.String(), response.UserID)
	// Identity data wins over the token claim
	assert.Equal(t, "Maria Souza", response.FullName)
	assert.Equal(t, "maria@franqsuite.com.br", response.Email)
	assert.Equal(t, "gerente", response.Role)
	require.Len(t, response.Overrides, 1)
	assert.Equal(t, "senhas", response.Overrides[0].Table)
}

func TestWhoamiUnknownUser(t *testing.T) {
	ts := newTestServer(t)
	RegisterWhoamiEndpoint(ts.Server)

	userID := uuid.New()
	ts.Users.On("FetchUser", userID).Return(nil)
	ts.Permissions.On("FetchUserRole", userID).Return("")
	ts.Permissions.On("ListOverridesForUser", userID).Return(nil, errors.New("boom"))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", ts.authHeader(t, userID, "Token Name"))
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response WhoamiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	// Falls back to the token claim
	assert.Equal(t, "Token Name", response.FullName)
	assert.Empty(t, response.Role)
	assert.Empty(t, response.Overrides)
}

func TestWhoamiRequiresSession(t *testing.T) {
	ts := newTestServer(t)
	RegisterWhoamiEndpoint(ts.Server)

	req := httptest.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
