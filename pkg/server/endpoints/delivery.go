package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"

	"github.com/franqsuite/backoffice/pkg/config"
	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// DeliveryAttemptRequest is the body of POST /deliveries. The delivery
// mechanism itself lives outside this service; it reports attempts here.
type DeliveryAttemptRequest struct {
	SubscriptionID *uuid.UUID     `json:"subscription_id,omitempty"`
	StatusCode     *int           `json:"status_code,omitempty"`
	Success        *bool          `json:"success,omitempty"`
	Attempt        int            `json:"attempt"`
	ErrorMessage   string         `json:"error_message,omitempty"`
	RequestBody    map[string]any `json:"request_body"`
	ResponseBody   map[string]any `json:"response_body,omitempty"`
}

// DeliveryPurgeResponse reports how many delivery rows a purge removed
type DeliveryPurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// RegisterDeliveryEndpoints registers the notification delivery ledger
// endpoints
func RegisterDeliveryEndpoints(s *server.Server) {
	deliveryRouter := s.Router.PathPrefix("/deliveries").Subrouter()
	deliveryRouter.Use(s.Sessions.Middleware)

	deliveries := s.DeliveryStore
	cfg := s.Config

	deliveryRouter.HandleFunc("", handleRecordDelivery(deliveries, cfg)).Methods("POST")
	deliveryRouter.HandleFunc("", handleListDeliveries(deliveries)).Methods("GET")
	deliveryRouter.HandleFunc("", handlePurgeDeliveries(deliveries)).Methods("DELETE")
	deliveryRouter.HandleFunc("/{id}", handleDeleteDelivery(deliveries)).Methods("DELETE")
}

func handleRecordDelivery(deliveries store.DeliveryStore, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body DeliveryAttemptRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if len(body.RequestBody) == 0 {
			respondWithError(w, http.StatusBadRequest, "request_body is required")
			return
		}

		if !cfg.DeliveryLogEnabled {
			// Acknowledged but not recorded
			w.WriteHeader(http.StatusAccepted)
			return
		}

		row := &model.NotificationDeliveryLog{
			SubscriptionID: body.SubscriptionID,
			StatusCode:     body.StatusCode,
			Success:        body.Success,
			Attempt:        body.Attempt,
			ErrorMessage:   body.ErrorMessage,
			RequestBody:    datatypes.JSONMap(body.RequestBody),
		}
		if body.ResponseBody != nil {
			row.ResponseBody = datatypes.JSONMap(body.ResponseBody)
		}

		if err := deliveries.Append(row); err != nil {
			if errors.Is(err, store.ErrInvalidAttempt) {
				respondWithError(w, http.StatusUnprocessableEntity, "attempt must be >= 1")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "unable to record delivery attempt")
			return
		}

		respondWithJSON(w, http.StatusCreated, row)
	}
}

func handleListDeliveries(deliveries store.DeliveryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := deliveries.List()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to list delivery attempts")
			return
		}
		if rows == nil {
			rows = []model.NotificationDeliveryLog{}
		}

		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleDeleteDelivery(deliveries store.DeliveryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "id must be a UUID")
			return
		}

		if err := deliveries.DeleteOne(id); err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to delete delivery attempt")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handlePurgeDeliveries(deliveries store.DeliveryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := deliveries.DeleteAll()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to purge delivery attempts")
			return
		}

		respondWithJSON(w, http.StatusOK, DeliveryPurgeResponse{Deleted: deleted})
	}
}
