package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// TableRequest is the body of governed table registry writes
type TableRequest struct {
	TableName   string `json:"table_name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// RegisterTablesEndpoints registers the governed table registry endpoints
func RegisterTablesEndpoints(s *server.Server) {
	tablesRouter := s.Router.PathPrefix("/tables").Subrouter()
	tablesRouter.Use(s.Sessions.Middleware)

	tables := s.TablesStore

	tablesRouter.HandleFunc("", handleListTables(tables)).Methods("GET")
	tablesRouter.HandleFunc("", handleCreateTable(tables)).Methods("POST")
	tablesRouter.HandleFunc("/{table}", handleFetchTable(tables)).Methods("GET")
	tablesRouter.HandleFunc("/{table}", handleUpdateTable(tables)).Methods("PUT")
}

func handleListTables(tables store.TablesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := tables.ListTables()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to list tables")
			return
		}

		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleFetchTable(tables store.TablesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := tables.FetchTable(mux.Vars(r)["table"])
		if table == nil {
			respondWithError(w, http.StatusNotFound, "table is not governed")
			return
		}

		respondWithJSON(w, http.StatusOK, table)
	}
}

func handleCreateTable(tables store.TablesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body TableRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.TableName == "" {
			respondWithError(w, http.StatusBadRequest, "table_name is required")
			return
		}

		if tables.FetchTable(body.TableName) != nil {
			respondWithError(w, http.StatusConflict, "table is already governed")
			return
		}

		table, err := tables.CreateTable(model.GovernedTable{
			Name:        body.TableName,
			DisplayName: body.DisplayName,
			Description: body.Description,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to register table")
			return
		}

		respondWithJSON(w, http.StatusCreated, table)
	}
}

func handleUpdateTable(tables store.TablesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body TableRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		table, err := tables.UpdateTable(mux.Vars(r)["table"], body.DisplayName, body.Description)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				respondWithError(w, http.StatusNotFound, "table is not governed")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "unable to update table")
			return
		}

		respondWithJSON(w, http.StatusOK, table)
	}
}
