package endpoints

import (
	"net/http"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/middleware"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	UserID    string                              `json:"user_id"`
	FullName  string                              `json:"full_name,omitempty"`
	Email     string                              `json:"email,omitempty"`
	Role      string                              `json:"role,omitempty"`
	Overrides []model.UserTablePermissionOverride `json:"overrides,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(s.Sessions.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami(s.UsersStore, s.PermissionsStore)).Methods("GET")
}

func handleWhoami(users store.UsersStore, permissions store.PermissionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			http.Error(w, "Unable to determine identity", http.StatusUnauthorized)
			return
		}

		response := WhoamiResponse{
			UserID:   session.UserID.String(),
			FullName: session.FullName,
			Role:     permissions.FetchUserRole(session.UserID),
		}

		// Identity data is richer than the token; prefer it when present.
		if user := users.FetchUser(session.UserID); user != nil {
			response.FullName = user.FullName
			response.Email = user.Email
		}

		if overrides, err := permissions.ListOverridesForUser(session.UserID); err == nil {
			response.Overrides = overrides
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}
