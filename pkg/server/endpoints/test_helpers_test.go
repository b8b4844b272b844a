package endpoints

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/franqsuite/backoffice/pkg/audit"
	"github.com/franqsuite/backoffice/pkg/authz"
	"github.com/franqsuite/backoffice/pkg/config"
	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/middleware"
)

// testServer bundles a handler-level server with the mocks behind it
type testServer struct {
	*server.Server
	Permissions *MockPermissionsStore
	Roles       *MockRolesStore
	Tables      *MockTablesStore
	Users       *MockUsersStore
	Records     *MockRecordsStore
	Audit       *MockAuditStore
	Deliveries  *MockDeliveryStore
	Health      *MockHealthStore
}

// newTestServer builds a server over mock stores. No database is
// involved; handlers are exercised through the router with httptest.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	permissions := &MockPermissionsStore{}
	roles := &MockRolesStore{}
	tables := &MockTablesStore{}
	users := &MockUsersStore{}
	records := &MockRecordsStore{}
	auditStore := &MockAuditStore{}
	deliveries := &MockDeliveryStore{}
	health := &MockHealthStore{}

	resolver := authz.NewResolver(permissions)
	recorder := audit.NewRecorder(auditStore)

	// Keep operator output out of test logs
	logger := audit.NewLogger()
	logger.SetWriter(io.Discard)
	recorder.SetLogger(logger)

	cfg := &config.Config{
		APIListLimitMax:    1000,
		SessionTokenTTL:    480,
		AuditEnabled:       true,
		DeliveryLogEnabled: true,
	}

	sessions := middleware.NewSessionAuthenticator([]byte("endpoint-test-secret"), time.Hour)

	srv := &server.Server{
		Router:   mux.NewRouter().UseEncodedPath(),
		Config:   cfg,
		Sessions: sessions,

		Resolver: resolver,
		Guard:    authz.NewGuard(resolver, recorder),
		Recorder: recorder,

		PermissionsStore: permissions,
		RolesStore:       roles,
		TablesStore:      tables,
		UsersStore:       users,
		RecordsStore:     records,
		AuditStore:       auditStore,
		DeliveryStore:    deliveries,
		HealthStore:      health,
	}

	return &testServer{
		Server:      srv,
		Permissions: permissions,
		Roles:       roles,
		Tables:      tables,
		Users:       users,
		Records:     records,
		Audit:       auditStore,
		Deliveries:  deliveries,
		Health:      health,
	}
}

// authHeader issues a bearer token for the given user
func (ts *testServer) authHeader(t *testing.T, userID uuid.UUID, fullName string) string {
	t.Helper()

	token, err := ts.Sessions.IssueToken(userID, fullName)
	require.NoError(t, err)
	return "Bearer " + token
}
