package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/jsoderlund/wayfarer/internal/domain"
)

// CreateTripRequest is the body for POST /trips.
// start_date is a calendar date ("2026-07-10"), not a timestamp.
type CreateTripRequest struct {
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
}

// TripResponse is the wire form of a trip.
type TripResponse struct {
	ID              uuid.UUID               `json:"id"`
	Destination     string                  `json:"destination"`
	StartDate       openapi_types.Date      `json:"start_date"`
	Activities      []ActivityResponse      `json:"activities"`
	DestinationInfo *domain.DestinationInfo `json:"destination_info,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), domain.Trip{
		Destination: req.Destination,
		StartDate:   req.StartDate.Time,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondInternal(w)
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	respondJSON(w, http.StatusOK, data)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(r)
	if !ok {
		respondNotFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, tripToResponse(trip))
}

// GetDestination handles GET /destinations/{country} — a passthrough to the
// external country lookup, unconnected to any stored trip.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	if s.destinations == nil {
		respondNotFound(w, "destination lookup not configured")
		return
	}

	country := chi.URLParam(r, "country")
	info, err := s.destinations.Lookup(r.Context(), country)
	if err != nil {
		respondNotFound(w, "destination info not found")
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip into its wire form.
func tripToResponse(t domain.Trip) TripResponse {
	activities := make([]ActivityResponse, len(t.Activities))
	for i, a := range t.Activities {
		activities[i] = activityToResponse(a)
	}
	return TripResponse{
		ID:              t.ID,
		Destination:     t.Destination,
		StartDate:       openapi_types.Date{Time: t.StartDate},
		Activities:      activities,
		DestinationInfo: t.Info,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
