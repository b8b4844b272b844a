package endpoints

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/config"
	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// AuditListResponse wraps an audit listing. Entries is always present,
// empty rather than null, so consumers can iterate without nil checks.
type AuditListResponse struct {
	Entries []store.AuditEntry `json:"entries"`
	Count   int                `json:"count"`
}

// RegisterAuditEndpoints registers the audit trail query endpoint
func RegisterAuditEndpoints(s *server.Server) {
	auditRouter := s.Router.PathPrefix("/audit").Subrouter()
	auditRouter.Use(s.Sessions.Middleware)

	auditRouter.HandleFunc("", handleListAudit(s.AuditStore, s.Config)).Methods("GET")
}

func handleListAudit(auditStore store.AuditStore, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := store.AuditFilter{
			Table:  query.Get("table"),
			Action: query.Get("action"),
			Limit:  cfg.APIListLimitMax,
		}

		if raw := query.Get("user_id"); raw != "" {
			userID, err := uuid.Parse(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "user_id must be a UUID")
				return
			}
			filter.UserID = userID
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			if limit < filter.Limit {
				filter.Limit = limit
			}
		}

		if raw := query.Get("offset"); raw != "" {
			offset, err := strconv.Atoi(raw)
			if err != nil || offset < 0 {
				respondWithError(w, http.StatusBadRequest, "offset must be a non-negative integer")
				return
			}
			filter.Offset = offset
		}

		entries, err := auditStore.List(filter)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to query audit trail")
			return
		}
		if entries == nil {
			entries = []store.AuditEntry{}
		}

		respondWithJSON(w, http.StatusOK, AuditListResponse{
			Entries: entries,
			Count:   len(entries),
		})
	}
}
