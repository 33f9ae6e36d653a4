package repo

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
)

// Store is the in-memory home of all trips and their activities. It is the
// single authoritative owner of that state: callers receive value snapshots
// and every mutation goes through a Store method.
//
// Construct one Store per process (or per test) with NewStore and hand it to
// NewTripRepo / NewActivityRepo. An RWMutex serializes writers so the store
// stays correct behind concurrent HTTP handlers, even though the itinerary
// logic itself never needs more than one caller at a time.
type Store struct {
	mu    sync.RWMutex
	trips []*tripRecord
	index map[uuid.UUID]*tripRecord
}

// tripRecord pairs a trip with its activity id counter. The counter only
// ever increases, so a deleted activity's id is retired for good and can
// never be handed out again within the same trip.
type tripRecord struct {
	trip   domain.Trip
	nextID int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{index: make(map[uuid.UUID]*tripRecord)}
}

// CreateTrip assigns a fresh UUID and timestamps, stores the trip with an
// empty activity sequence, and returns a snapshot of the stored record.
func (s *Store) CreateTrip(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	trip.ID = uuid.New()
	trip.Activities = []domain.Activity{}
	trip.CreatedAt = now
	trip.UpdatedAt = now

	rec := &tripRecord{trip: trip, nextID: 1}
	s.trips = append(s.trips, rec)
	s.index[trip.ID] = rec

	return snapshotTrip(rec.trip), nil
}

// GetTrip returns a snapshot of the trip with the given id.
func (s *Store) GetTrip(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.index[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.Store.GetTrip: %w", domain.ErrNotFound)
	}
	return snapshotTrip(rec.trip), nil
}

// ListTrips returns snapshots of all trips in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *Store) ListTrips(_ context.Context) ([]domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := make([]domain.Trip, 0, len(s.trips))
	for _, rec := range s.trips {
		trips = append(trips, snapshotTrip(rec.trip))
	}
	return trips, nil
}

// CreateActivity appends an activity to its parent trip's sequence,
// preserving insertion order, and returns a copy of the stored record.
// The assigned id comes from the trip's own counter, so ids are unique
// within a trip but collide across trips.
func (s *Store) CreateActivity(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[activity.TripID]
	if !ok {
		return domain.Activity{}, fmt.Errorf("repo.Store.CreateActivity: %w", domain.ErrNotFound)
	}

	now := time.Now().UTC()
	activity.ID = strconv.Itoa(rec.nextID)
	rec.nextID++
	activity.CreatedAt = now
	activity.UpdatedAt = now

	rec.trip.Activities = append(rec.trip.Activities, activity)
	rec.trip.UpdatedAt = now

	return activity, nil
}

// ListActivities returns a trip's activities in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *Store) ListActivities(_ context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.index[tripID]
	if !ok {
		return nil, fmt.Errorf("repo.Store.ListActivities: %w", domain.ErrNotFound)
	}

	activities := make([]domain.Activity, len(rec.trip.Activities))
	copy(activities, rec.trip.Activities)
	return activities, nil
}

// UpdateActivity applies the non-nil fields of patch to an activity in place
// and returns the updated record. Validation of field values happens in the
// service layer; this method trusts the patch it is given.
func (s *Store) UpdateActivity(_ context.Context, tripID uuid.UUID, activityID string, patch domain.ActivityPatch) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[tripID]
	if !ok {
		return domain.Activity{}, fmt.Errorf("repo.Store.UpdateActivity: %w", domain.ErrNotFound)
	}

	i := indexOfActivity(rec.trip.Activities, activityID)
	if i < 0 {
		return domain.Activity{}, fmt.Errorf("repo.Store.UpdateActivity: %w", domain.ErrNotFound)
	}

	a := &rec.trip.Activities[i]
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.StartTime != nil {
		a.StartTime = *patch.StartTime
	}
	if patch.Category != nil {
		a.Category = *patch.Category
	}
	if patch.Cost != nil {
		a.Cost = *patch.Cost
	}

	now := time.Now().UTC()
	a.UpdatedAt = now
	rec.trip.UpdatedAt = now

	return *a, nil
}

// DeleteActivity splices an activity out of its trip's sequence and returns
// the removed record. Later activities keep their existing ids — there is no
// renumbering, so a gap remains where the deleted activity was.
func (s *Store) DeleteActivity(_ context.Context, tripID uuid.UUID, activityID string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[tripID]
	if !ok {
		return domain.Activity{}, fmt.Errorf("repo.Store.DeleteActivity: %w", domain.ErrNotFound)
	}

	i := indexOfActivity(rec.trip.Activities, activityID)
	if i < 0 {
		return domain.Activity{}, fmt.Errorf("repo.Store.DeleteActivity: %w", domain.ErrNotFound)
	}

	removed := rec.trip.Activities[i]
	rec.trip.Activities = append(rec.trip.Activities[:i], rec.trip.Activities[i+1:]...)
	rec.trip.UpdatedAt = time.Now().UTC()

	return removed, nil
}

// snapshotTrip returns a copy of t whose Activities slice is independent of
// the stored one, so callers can hold the result across later mutations.
func snapshotTrip(t domain.Trip) domain.Trip {
	activities := make([]domain.Activity, len(t.Activities))
	copy(activities, t.Activities)
	t.Activities = activities
	return t
}

// indexOfActivity returns the position of the activity with the given id,
// or -1 when no activity matches.
func indexOfActivity(activities []domain.Activity, id string) int {
	for i := range activities {
		if activities[i].ID == id {
			return i
		}
	}
	return -1
}
