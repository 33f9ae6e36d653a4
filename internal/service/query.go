package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
	"github.com/jsoderlund/wayfarer/internal/repo"
)

// QueryService provides the read-only views over a trip's activities:
// day and category filters plus the chronological sort. Every operation
// resolves the trip first and returns domain.ErrNotFound if it is absent,
// uniform with the mutating operations.
type QueryService struct {
	trips repo.TripRepo
}

// NewQueryService constructs a QueryService backed by the provided TripRepo.
func NewQueryService(trips repo.TripRepo) *QueryService {
	return &QueryService{trips: trips}
}

// ByDay returns the trip's activities whose start time falls on the same
// calendar day (UTC) as day — day-level granularity, not exact-timestamp
// equality. Order is preserved as stored.
func (s *QueryService) ByDay(ctx context.Context, tripID uuid.UUID, day time.Time) ([]domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.QueryService.ByDay: %w", err)
	}

	matches := []domain.Activity{}
	for _, a := range trip.Activities {
		if sameDay(a.StartTime, day) {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

// ByCategory returns the trip's activities with the given category, in
// stored order. An unknown category simply matches nothing.
func (s *QueryService) ByCategory(ctx context.Context, tripID uuid.UUID, category domain.Category) ([]domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.QueryService.ByCategory: %w", err)
	}

	matches := []domain.Activity{}
	for _, a := range trip.Activities {
		if a.Category == category {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

// SortChronological returns the trip's activities ordered by ascending start
// time. The sort is stable: activities sharing a start time keep their stored
// relative order. The stored order itself is never touched — the repo hands
// out a snapshot and only that copy is sorted.
func (s *QueryService) SortChronological(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.QueryService.SortChronological: %w", err)
	}

	activities := trip.Activities
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartTime.Before(activities[j].StartTime)
	})
	return activities, nil
}

// sameDay reports whether a and b fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
