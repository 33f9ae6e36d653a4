package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
)

// CreateActivityRequest is the body for POST /trips/{tripID}/activities.
type CreateActivityRequest struct {
	Name      string    `json:"name"`
	Cost      float64   `json:"cost"`
	Category  string    `json:"category"`
	StartTime time.Time `json:"start_time"`
}

// UpdateActivityRequest is the body for PATCH .../activities/{activityID}.
// Absent fields are left unchanged; present-but-invalid fields are skipped,
// see domain.ActivityPatch.
type UpdateActivityRequest struct {
	Name      *string    `json:"name"`
	Cost      *float64   `json:"cost"`
	Category  *string    `json:"category"`
	StartTime *time.Time `json:"start_time"`
}

// ActivityResponse is the wire form of an activity.
type ActivityResponse struct {
	ID        string    `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	Cost      float64   `json:"cost"`
	Category  string    `json:"category"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateActivityResponse pairs the updated activity with the names of the
// patch fields that were actually applied.
type UpdateActivityResponse struct {
	Activity ActivityResponse `json:"activity"`
	Applied  []string         `json:"applied"`
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		respondNotFound(w, "trip not found")
		return
	}

	var req CreateActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{
		TripID:    tripID,
		Name:      req.Name,
		Cost:      req.Cost,
		Category:  domain.Category(req.Category),
		StartTime: req.StartTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondNotFound(w, "trip not found")
		case errors.Is(err, domain.ErrValidation):
			respondValidation(w, err)
		default:
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusCreated, activityToResponse(created))
}

// ListActivities handles GET /trips/{tripID}/activities.
// Optional filters: ?category=food and ?day=2027-03-10, mutually exclusive.
// Without a filter the stored (insertion) order is returned.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		respondNotFound(w, "trip not found")
		return
	}

	category := r.URL.Query().Get("category")
	day := r.URL.Query().Get("day")
	if category != "" && day != "" {
		respondBadRequest(w, "specify either category or day, not both")
		return
	}

	var (
		activities []domain.Activity
		err        error
	)
	switch {
	case category != "":
		var c domain.Category
		c, err = domain.ParseCategory(category)
		if err != nil {
			respondBadRequest(w, "unknown category "+category)
			return
		}
		activities, err = s.queries.ByCategory(r.Context(), tripID, c)
	case day != "":
		var d time.Time
		d, err = time.Parse("2006-01-02", day)
		if err != nil {
			respondBadRequest(w, "day must be formatted as YYYY-MM-DD")
			return
		}
		activities, err = s.queries.ByDay(r.Context(), tripID, d)
	default:
		var trip domain.Trip
		trip, err = s.trips.GetByID(r.Context(), tripID)
		activities = trip.Activities
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, activitiesToResponse(activities))
}

// GetSchedule handles GET /trips/{tripID}/schedule — the trip's activities
// in chronological order.
func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		respondNotFound(w, "trip not found")
		return
	}

	activities, err := s.queries.SortChronological(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, activitiesToResponse(activities))
}

// UpdateActivity handles PATCH /trips/{tripID}/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		respondNotFound(w, "trip not found")
		return
	}
	activityID := chi.URLParam(r, "activityID")

	var req UpdateActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	patch := domain.ActivityPatch{
		Name:      req.Name,
		StartTime: req.StartTime,
		Cost:      req.Cost,
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		patch.Category = &c
	}

	updated, result, err := s.activities.Update(r.Context(), tripID, activityID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "activity not found")
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, UpdateActivityResponse{
		Activity: activityToResponse(updated),
		Applied:  result.Applied,
	})
}

// DeleteActivity handles DELETE /trips/{tripID}/activities/{activityID}.
// The removed activity is returned so clients can offer an undo.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		respondNotFound(w, "trip not found")
		return
	}
	activityID := chi.URLParam(r, "activityID")

	removed, err := s.activities.Delete(r.Context(), tripID, activityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "activity not found")
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, activityToResponse(removed))
}

// --- mapping helpers --------------------------------------------------------

func activityToResponse(a domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		TripID:    a.TripID,
		Name:      a.Name,
		Cost:      a.Cost,
		Category:  string(a.Category),
		StartTime: a.StartTime,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func activitiesToResponse(activities []domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		out[i] = activityToResponse(a)
	}
	return out
}
