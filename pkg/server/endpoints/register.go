package endpoints

import (
	"github.com/franqsuite/backoffice/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterPermissionsEndpoints(srv)
	RegisterRolesEndpoints(srv)
	RegisterTablesEndpoints(srv)
	RegisterRecordsEndpoints(srv)
	RegisterAuditEndpoints(srv)
	RegisterDeliveryEndpoints(srv)
}
