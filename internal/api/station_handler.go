package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nextstep/subway-api/internal/api/shared"
	"github.com/nextstep/subway-api/internal/service"
)

// StationHandler handles station-related HTTP requests
type StationHandler struct {
	stationService service.StationService
}

// NewStationHandler creates a new StationHandler
func NewStationHandler(stationService service.StationService) *StationHandler {
	return &StationHandler{stationService: stationService}
}

// Routes mounts the station endpoints on r.
func (h *StationHandler) Routes(r chi.Router) {
	r.Post("/", h.CreateStation)
	r.Get("/", h.ListStations)
	r.Delete("/{id}", h.DeleteStation)
}

// CreateStation handles POST /stations requests
func (h *StationHandler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var req CreateStationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	station, err := h.stationService.CreateStation(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create station")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/stations/%d", station.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, stationToResponse(station))
}

// ListStations handles GET /stations requests
func (h *StationHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.stationService.ListStations(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list stations")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stationsToResponse(stations))
}

// DeleteStation handles DELETE /stations/{id} requests
func (h *StationHandler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.stationService.DeleteStation(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete station")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
