// Package repo contains the storage layer for the Wayfarer itinerary API.
// Each resource has its own file with an interface and an in-memory
// implementation backed by a shared Store. No business logic lives here —
// only identity assignment and collection bookkeeping.
package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
)

// TripRepo defines the storage operations for Trips.
// The service layer depends on this interface, not the concrete in-memory
// implementation, which allows the service to be unit-tested with a mock and
// leaves a seam for a persistent implementation later.
type TripRepo interface {
	// Create stores a new trip and returns the stored record (with
	// generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip, activities included, by its UUID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips in creation order.
	List(ctx context.Context) ([]domain.Trip, error)
}

// memTripRepo is the in-memory implementation of TripRepo.
type memTripRepo struct {
	store *Store
}

// NewTripRepo constructs a TripRepo backed by the provided Store.
func NewTripRepo(store *Store) TripRepo {
	return &memTripRepo{store: store}
}

func (r *memTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return r.store.CreateTrip(ctx, trip)
}

func (r *memTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return r.store.GetTrip(ctx, id)
}

func (r *memTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return r.store.ListTrips(ctx)
}
