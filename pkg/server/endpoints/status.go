package endpoints

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/franqsuite/backoffice/pkg/server"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// StatusResponse represents the response from the / endpoint
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthResponse represents the response from the /health endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the status and health endpoints.
// Both are public: load balancers and probes hit them unauthenticated.
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.HealthStore

	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("BACKOFFICE_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(StatusResponse{
			Status:  "ok",
			Version: version,
		})
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "error",
				Error:  "database connectivity check failed",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
