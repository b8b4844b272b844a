package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/franqsuite/backoffice/pkg/authz"
	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/middleware"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// EffectivePermissionResponse is the resolved CRUD grant for one
// (user, table) pair, with the rule that produced it.
type EffectivePermissionResponse struct {
	UserID    string `json:"user_id"`
	Table     string `json:"table_name"`
	CanCreate bool   `json:"can_create"`
	CanRead   bool   `json:"can_read"`
	CanUpdate bool   `json:"can_update"`
	CanDelete bool   `json:"can_delete"`
	Source    string `json:"source"`
}

// PermissionFlagsRequest is the body of matrix row and override writes.
// All four flags are written together; absent flags are false.
type PermissionFlagsRequest struct {
	CanCreate bool `json:"can_create"`
	CanRead   bool `json:"can_read"`
	CanUpdate bool `json:"can_update"`
	CanDelete bool `json:"can_delete"`
}

func (r PermissionFlagsRequest) Flags() model.PermissionFlags {
	return model.PermissionFlags{
		CanCreate: r.CanCreate,
		CanRead:   r.CanRead,
		CanUpdate: r.CanUpdate,
		CanDelete: r.CanDelete,
	}
}

// RoleAssignmentRequest is the body of POST /permissions/assignments
type RoleAssignmentRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// RegisterPermissionsEndpoints registers permission resolution and
// administration endpoints
func RegisterPermissionsEndpoints(s *server.Server) {
	permissionsRouter := s.Router.PathPrefix("/permissions").Subrouter()
	permissionsRouter.Use(s.Sessions.Middleware)

	permissions := s.PermissionsStore
	roles := s.RolesStore
	resolver := s.Resolver

	// GET /permissions/effective/{user_id}/{table} - resolve effective CRUD grant
	permissionsRouter.HandleFunc(
		"/effective/{user_id}/{table}",
		handleEffectivePermission(permissions, resolver),
	).Methods("GET")

	// GET /permissions/roles - list matrix rows, optionally ?role=
	permissionsRouter.HandleFunc("/roles", handleListRolePermissions(permissions)).Methods("GET")

	// PUT /permissions/roles/{role}/{table} - upsert one matrix row
	permissionsRouter.HandleFunc(
		"/roles/{role}/{table}",
		handleUpsertRolePermission(permissions, roles),
	).Methods("PUT")

	// GET /permissions/overrides/{user_id} - list a user's overrides
	permissionsRouter.HandleFunc(
		"/overrides/{user_id}",
		handleListOverrides(permissions),
	).Methods("GET")

	// PUT /permissions/overrides/{user_id}/{table} - upsert one override
	permissionsRouter.HandleFunc(
		"/overrides/{user_id}/{table}",
		handleUpsertOverride(permissions),
	).Methods("PUT")

	// DELETE /permissions/overrides/{user_id}/{table} - revert to role fallback
	permissionsRouter.HandleFunc(
		"/overrides/{user_id}/{table}",
		handleDeleteOverride(permissions),
	).Methods("DELETE")

	// POST /permissions/assignments - assign a user's role
	permissionsRouter.HandleFunc(
		"/assignments",
		handleAssignRole(permissions, roles),
	).Methods("POST")
}

func userIDVar(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["user_id"])
	return id, err == nil
}

func handleEffectivePermission(permissions store.PermissionsStore, resolver *authz.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDVar(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "user_id must be a UUID")
			return
		}
		table := mux.Vars(r)["table"]

		response := EffectivePermissionResponse{
			UserID:    userID.String(),
			Table:     table,
			CanCreate: resolver.Can(userID, table, model.ActionCreate),
			CanRead:   resolver.Can(userID, table, model.ActionRead),
			CanUpdate: resolver.Can(userID, table, model.ActionUpdate),
			CanDelete: resolver.Can(userID, table, model.ActionDelete),
		}

		// Mirror the resolver's precedence to label the winning rule.
		switch {
		case permissions.FetchOverride(userID, table) != nil:
			response.Source = "override"
		case permissions.FetchUserRole(userID) != "" &&
			permissions.FetchRolePermission(permissions.FetchUserRole(userID), table) != nil:
			response.Source = "role"
		default:
			response.Source = "none"
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleListRolePermissions(permissions store.PermissionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := permissions.ListRolePermissions(r.URL.Query().Get("role"))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to list permissions")
			return
		}

		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleUpsertRolePermission(permissions store.PermissionsStore, roles store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		role := vars["role"]
		table := vars["table"]

		var body PermissionFlagsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		if !roles.RoleExists(role) {
			respondWithError(w, http.StatusUnprocessableEntity, "unknown role")
			return
		}

		row, err := permissions.UpsertRolePermission(role, table, body.Flags())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to save permission")
			return
		}

		respondWithJSON(w, http.StatusOK, row)
	}
}

func handleListOverrides(permissions store.PermissionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDVar(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "user_id must be a UUID")
			return
		}

		rows, err := permissions.ListOverridesForUser(userID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to list overrides")
			return
		}

		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleUpsertOverride(permissions store.PermissionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDVar(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "user_id must be a UUID")
			return
		}
		table := mux.Vars(r)["table"]

		var body PermissionFlagsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		var createdBy *uuid.UUID
		if session := middleware.SessionFromContext(r.Context()); session != nil {
			createdBy = &session.UserID
		}

		row, err := permissions.UpsertOverride(userID, table, body.Flags(), createdBy)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to save override")
			return
		}

		respondWithJSON(w, http.StatusOK, row)
	}
}

func handleDeleteOverride(permissions store.PermissionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDVar(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "user_id must be a UUID")
			return
		}

		if err := permissions.DeleteOverride(userID, mux.Vars(r)["table"]); err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to delete override")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAssignRole(permissions store.PermissionsStore, roles store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body RoleAssignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		userID, err := uuid.Parse(body.UserID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "user_id must be a UUID")
			return
		}

		if !roles.RoleExists(body.Role) {
			respondWithError(w, http.StatusUnprocessableEntity, "unknown role")
			return
		}

		if err := permissions.AssignUserRole(userID, body.Role); err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to assign role")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
