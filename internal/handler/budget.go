package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jsoderlund/wayfarer/internal/domain"
)

// BudgetResponse is the body for GET /trips/{tripID}/budget.
// The partition fields are only present when a threshold was supplied.
//
// An activity costing exactly the threshold lands in within_budget but not in
// high_cost: the two filters intentionally use opposite boundary rules.
type BudgetResponse struct {
	Destination  string             `json:"destination"`
	Total        float64            `json:"total"`
	Summary      string             `json:"summary"`
	Threshold    *float64           `json:"threshold,omitempty"`
	HighCost     []ActivityResponse `json:"high_cost,omitempty"`
	WithinBudget []ActivityResponse `json:"within_budget,omitempty"`
}

// GetBudget handles GET /trips/{tripID}/budget?threshold=100.
// Without a threshold it returns just the total and the formatted summary;
// with one it additionally partitions the activities around it.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(r)
	if !ok {
		respondNotFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	resp := BudgetResponse{
		Destination: trip.Destination,
		Total:       s.budgets.TotalCost(trip),
		Summary:     s.budgets.Summary(trip),
	}

	if raw := r.URL.Query().Get("threshold"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil || threshold < 0 {
			respondBadRequest(w, "threshold must be a non-negative number")
			return
		}

		highCost, err := s.budgets.HighCost(r.Context(), tripID, threshold)
		if err != nil {
			respondInternal(w)
			return
		}

		resp.Threshold = &threshold
		resp.HighCost = activitiesToResponse(highCost)
		resp.WithinBudget = activitiesToResponse(s.budgets.WithinBudget(trip.Activities, threshold))
	}

	respondJSON(w, http.StatusOK, resp)
}
