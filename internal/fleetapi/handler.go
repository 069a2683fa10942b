package fleetapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/autopeer-io/carview/internal/pkg/metrics"
	"github.com/autopeer-io/carview/pkg/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleGetCar serves GET /api/car/{licensePlate}.
func (s *Server) handleGetCar(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["licensePlate"]

	rec, ok := s.store.Get(plate)
	if !ok {
		metrics.FleetLookupTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "car not found"})
		return
	}

	metrics.FleetLookupTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.store.Len() == 0 {
		http.Error(w, "no car records loaded", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error(err, "Failed to write response")
	}
}
