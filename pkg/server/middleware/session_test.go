package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-session-secret")

func protectedHandler(t *testing.T, captured **Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionMiddlewareAcceptsValidToken(t *testing.T) {
	authenticator := NewSessionAuthenticator(testSecret, time.Hour)
	userID := uuid.New()

	token, err := authenticator.IssueToken(userID, "Maria Souza")
	require.NoError(t, err)

	var captured *Session
	handler := authenticator.Middleware(protectedHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, captured)
	assert.Equal(t, userID, captured.UserID)
	assert.Equal(t, "Maria Souza", captured.FullName)
}

func TestSessionMiddlewareRejectsBadRequests(t *testing.T) {
	authenticator := NewSessionAuthenticator(testSecret, time.Hour)

	expired, err := NewSessionAuthenticator(testSecret, -time.Hour).
		IssueToken(uuid.New(), "")
	require.NoError(t, err)

	otherKey, err := NewSessionAuthenticator([]byte("other-secret"), time.Hour).
		IssueToken(uuid.New(), "")
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(testSecret)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		body   string
	}{
		{
			name:   "missing header",
			header: "",
			body:   "Authorization missing",
		},
		{
			name:   "not a bearer token",
			header: `Token token="abc"`,
			body:   "Malformed authorization header",
		},
		{
			name:   "garbage token",
			header: "Bearer not.a.jwt",
			body:   "Invalid session token",
		},
		{
			name:   "expired token",
			header: "Bearer " + expired,
			body:   "Invalid session token",
		},
		{
			name:   "wrong signing key",
			header: "Bearer " + otherKey,
			body:   "Invalid session token",
		},
		{
			name:   "subject is not a user id",
			header: "Bearer " + badSubject,
			body:   "Invalid session token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var captured *Session
			handler := authenticator.Middleware(protectedHandler(t, &captured))

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, tc.body, recorder.Body.String())
			assert.Nil(t, captured, "handler must not run")
		})
	}
}
