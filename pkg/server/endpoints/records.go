package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/franqsuite/backoffice/pkg/audit"
	"github.com/franqsuite/backoffice/pkg/authz"
	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/middleware"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// RegisterRecordsEndpoints registers row-level CRUD on governed tables.
// Every operation resolves the caller's effective permission first; writes
// additionally flow through the mutation guard so committed changes are
// mirrored into the audit trail.
func RegisterRecordsEndpoints(s *server.Server) {
	recordsRouter := s.Router.PathPrefix("/tables/{table}/records").Subrouter()
	recordsRouter.Use(s.Sessions.Middleware)
	recordsRouter.Use(governedTableCheck(s.TablesStore))

	records := s.RecordsStore
	resolver := s.Resolver
	guard := s.Guard
	recorder := s.Recorder

	recordsRouter.HandleFunc("", handleListRecords(records, resolver, recorder)).Methods("GET")
	recordsRouter.HandleFunc("", handleCreateRecord(guard, records)).Methods("POST")
	recordsRouter.HandleFunc("/{id}", handleFetchRecord(records, resolver, recorder)).Methods("GET")
	recordsRouter.HandleFunc("/{id}", handleUpdateRecord(guard, records)).Methods("PUT")
	recordsRouter.HandleFunc("/{id}", handleDeleteRecord(guard, records)).Methods("DELETE")
}

// Denials deliberately carry no detail about which rule failed.
func respondForbidden(w http.ResponseWriter) {
	respondWithError(w, http.StatusForbidden, "forbidden")
}

// governedTableCheck rejects requests whose table is not in the registry
// before any permission resolution happens. The registry is readable by
// every signed-in caller, so the 404 leaks nothing.
func governedTableCheck(tables store.TablesStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tables.FetchTable(mux.Vars(r)["table"]) == nil {
				respondWithError(w, http.StatusNotFound, "unknown table")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestSession(w http.ResponseWriter, r *http.Request) *middleware.Session {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Unable to determine identity", http.StatusUnauthorized)
		return nil
	}
	return session
}

func handleListRecords(records store.RecordsStore, resolver *authz.Resolver, recorder *audit.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requestSession(w, r)
		if session == nil {
			return
		}
		table := mux.Vars(r)["table"]

		if !resolver.Can(session.UserID, table, model.ActionRead) {
			recorder.ReportDenial(session.UserID, model.ActionRead, table)
			respondForbidden(w)
			return
		}

		rows, err := records.ListRecords(table)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to list records")
			return
		}

		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleFetchRecord(records store.RecordsStore, resolver *authz.Resolver, recorder *audit.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requestSession(w, r)
		if session == nil {
			return
		}
		vars := mux.Vars(r)
		table := vars["table"]

		if !resolver.Can(session.UserID, table, model.ActionRead) {
			recorder.ReportDenial(session.UserID, model.ActionRead, table)
			respondForbidden(w)
			return
		}

		row, err := records.FetchRecord(table, vars["id"])
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				respondWithError(w, http.StatusNotFound, "record not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "unable to fetch record")
			return
		}

		respondWithJSON(w, http.StatusOK, row)
	}
}

func handleCreateRecord(guard *authz.Guard, records store.RecordsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requestSession(w, r)
		if session == nil {
			return
		}
		table := mux.Vars(r)["table"]

		var data map[string]any
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil || len(data) == 0 {
			respondWithError(w, http.StatusBadRequest, "request body must be a non-empty JSON object")
			return
		}

		recordID, err := guard.Run(authz.Mutation{
			UserID: session.UserID,
			Table:  table,
			Action: model.ActionCreate,
			Commit: func() (string, map[string]any, map[string]any, error) {
				id, err := records.InsertRecord(table, data)
				if err != nil {
					return "", nil, nil, err
				}
				created := make(map[string]any, len(data)+1)
				for k, v := range data {
					created[k] = v
				}
				created["id"] = id
				return id, nil, created, nil
			},
		})
		if err != nil {
			respondMutationError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, map[string]string{"id": recordID})
	}
}

func handleUpdateRecord(guard *authz.Guard, records store.RecordsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requestSession(w, r)
		if session == nil {
			return
		}
		vars := mux.Vars(r)
		table := vars["table"]
		id := vars["id"]

		var data map[string]any
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil || len(data) == 0 {
			respondWithError(w, http.StatusBadRequest, "request body must be a non-empty JSON object")
			return
		}

		var updated map[string]any
		_, err := guard.Run(authz.Mutation{
			UserID: session.UserID,
			Table:  table,
			Action: model.ActionUpdate,
			Commit: func() (string, map[string]any, map[string]any, error) {
				previous, err := records.UpdateRecord(table, id, data)
				if err != nil {
					return "", nil, nil, err
				}
				updated = make(map[string]any, len(previous))
				for k, v := range previous {
					updated[k] = v
				}
				for k, v := range data {
					updated[k] = v
				}
				return id, previous, updated, nil
			},
		})
		if err != nil {
			respondMutationError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteRecord(guard *authz.Guard, records store.RecordsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requestSession(w, r)
		if session == nil {
			return
		}
		vars := mux.Vars(r)
		table := vars["table"]
		id := vars["id"]

		_, err := guard.Run(authz.Mutation{
			UserID: session.UserID,
			Table:  table,
			Action: model.ActionDelete,
			Commit: func() (string, map[string]any, map[string]any, error) {
				previous, err := records.DeleteRecord(table, id)
				if err != nil {
					return "", nil, nil, err
				}
				return id, previous, nil, nil
			},
		})
		if err != nil {
			respondMutationError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func respondMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrForbidden):
		respondForbidden(w)
	case errors.Is(err, store.ErrRecordNotFound):
		respondWithError(w, http.StatusNotFound, "record not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "unable to apply change")
	}
}
