package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nextstep/subway-api/internal/api/shared"
	"github.com/nextstep/subway-api/internal/service"
)

// LineHandler handles line-related HTTP requests
type LineHandler struct {
	lineService service.LineService
}

// NewLineHandler creates a new LineHandler
func NewLineHandler(lineService service.LineService) *LineHandler {
	return &LineHandler{lineService: lineService}
}

// Routes mounts the line endpoints on r.
func (h *LineHandler) Routes(r chi.Router) {
	r.Post("/", h.CreateLine)
	r.Get("/", h.ListLines)
	r.Get("/{id}", h.GetLine)
	r.Delete("/{id}", h.DeleteLine)
}

// CreateLine handles POST /lines requests
func (h *LineHandler) CreateLine(w http.ResponseWriter, r *http.Request) {
	var req CreateLineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	line, err := h.lineService.CreateLine(r.Context(), req.Name, req.Color)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create line")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/lines/%d", line.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, lineToResponse(line))
}

// ListLines handles GET /lines requests
func (h *LineHandler) ListLines(w http.ResponseWriter, r *http.Request) {
	lines, err := h.lineService.ListLines(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list lines")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, linesToResponse(lines))
}

// GetLine handles GET /lines/{id} requests
func (h *LineHandler) GetLine(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	line, err := h.lineService.GetLine(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve line")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lineToResponse(line))
}

// DeleteLine handles DELETE /lines/{id} requests
func (h *LineHandler) DeleteLine(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.lineService.DeleteLine(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete line")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
