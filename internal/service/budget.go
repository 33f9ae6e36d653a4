package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
	"github.com/jsoderlund/wayfarer/internal/repo"
)

// BudgetService implements the cost aggregation and budget filters.
//
// The two filters deliberately use opposite boundary rules: an activity
// costing exactly the threshold is not "high cost" (strict >), but an
// activity costing exactly the budget is "within budget" (inclusive <=).
// Do not unify them.
type BudgetService struct {
	trips repo.TripRepo
}

// NewBudgetService constructs a BudgetService backed by the provided TripRepo.
func NewBudgetService(trips repo.TripRepo) *BudgetService {
	return &BudgetService{trips: trips}
}

// TotalCost sums the cost of every activity in the trip; 0 when the trip has
// no activities. The total is computed on every call rather than cached,
// because activities mutate.
func (s *BudgetService) TotalCost(trip domain.Trip) float64 {
	var total float64
	for _, a := range trip.Activities {
		total += a.Cost
	}
	return total
}

// Summary formats the trip's total cost for display, always with exactly two
// decimal places.
func (s *BudgetService) Summary(trip domain.Trip) string {
	return fmt.Sprintf("Total Trip Cost for %s: $%.2f", trip.Destination, s.TotalCost(trip))
}

// HighCost returns the trip's activities costing strictly more than
// threshold. Activities costing exactly the threshold are excluded.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *BudgetService) HighCost(ctx context.Context, tripID uuid.UUID, threshold float64) ([]domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.BudgetService.HighCost: %w", err)
	}

	matches := []domain.Activity{}
	for _, a := range trip.Activities {
		if a.Cost > threshold {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

// WithinBudget returns the activities costing at most budget. Activities
// costing exactly the budget are included. It operates on a plain slice so
// callers can chain it after any other view.
func (s *BudgetService) WithinBudget(activities []domain.Activity, budget float64) []domain.Activity {
	matches := []domain.Activity{}
	for _, a := range activities {
		if a.Cost <= budget {
			matches = append(matches, a)
		}
	}
	return matches
}
