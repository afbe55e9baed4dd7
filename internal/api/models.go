package api

import (
	"github.com/nextstep/subway-api/internal/domain"
)

// CreateStationRequest defines the payload for POST /stations.
type CreateStationRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// StationResponse is the wire form of a station.
type StationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateLineRequest defines the payload for POST /lines.
type CreateLineRequest struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Color string `json:"color" validate:"max=20"`
}

// LineResponse is the wire form of a line.
type LineResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func stationToResponse(station *domain.Station) StationResponse {
	return StationResponse{ID: station.ID, Name: station.Name}
}

func stationsToResponse(stations []*domain.Station) []StationResponse {
	out := make([]StationResponse, 0, len(stations))
	for _, s := range stations {
		out = append(out, stationToResponse(s))
	}
	return out
}

func lineToResponse(line *domain.Line) LineResponse {
	return LineResponse{ID: line.ID, Name: line.Name, Color: line.Color}
}

func linesToResponse(lines []*domain.Line) []LineResponse {
	out := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineToResponse(l))
	}
	return out
}
