package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// CreateRoleRequest is the body of POST /roles
type CreateRoleRequest struct {
	Level string `json:"level"`
}

// RegisterRolesEndpoints registers the permission level registry endpoints
func RegisterRolesEndpoints(s *server.Server) {
	rolesRouter := s.Router.PathPrefix("/roles").Subrouter()
	rolesRouter.Use(s.Sessions.Middleware)

	roles := s.RolesStore

	rolesRouter.HandleFunc("", handleListRoles(roles)).Methods("GET")
	rolesRouter.HandleFunc("", handleCreateRole(roles)).Methods("POST")
	rolesRouter.HandleFunc("/{id}", handleDeleteRole(roles)).Methods("DELETE")
}

func handleListRoles(roles store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := roles.ListRoles()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to list roles")
			return
		}

		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleCreateRole(roles store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body CreateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Level == "" {
			respondWithError(w, http.StatusBadRequest, "level is required")
			return
		}

		if roles.RoleExists(body.Level) {
			respondWithError(w, http.StatusConflict, "role already exists")
			return
		}

		role, err := roles.CreateRole(body.Level)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to create role")
			return
		}

		respondWithJSON(w, http.StatusCreated, role)
	}
}

func handleDeleteRole(roles store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "id must be a UUID")
			return
		}

		if err := roles.DeleteRole(id); err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to delete role")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
