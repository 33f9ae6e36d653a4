package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
)

// ActivityRepo defines the storage operations for Activities.
// Every operation is scoped to a parent trip; a missing trip and a missing
// activity both surface as domain.ErrNotFound.
type ActivityRepo interface {
	// Create appends a new activity to its parent trip's sequence and
	// returns the stored record with its trip-scoped id assigned.
	// Returns domain.ErrNotFound if the parent trip does not exist.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// ListByTripID returns a trip's activities in insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update applies the non-nil fields of patch to an existing activity
	// and returns the updated record. The patch is applied as given — the
	// service layer is responsible for dropping invalid fields first.
	Update(ctx context.Context, tripID uuid.UUID, activityID string, patch domain.ActivityPatch) (domain.Activity, error)

	// Delete removes an activity from its trip's sequence and returns the
	// removed record. Remaining activities keep their ids.
	Delete(ctx context.Context, tripID uuid.UUID, activityID string) (domain.Activity, error)
}

// memActivityRepo is the in-memory implementation of ActivityRepo.
type memActivityRepo struct {
	store *Store
}

// NewActivityRepo constructs an ActivityRepo backed by the provided Store.
func NewActivityRepo(store *Store) ActivityRepo {
	return &memActivityRepo{store: store}
}

func (r *memActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return r.store.CreateActivity(ctx, activity)
}

func (r *memActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return r.store.ListActivities(ctx, tripID)
}

func (r *memActivityRepo) Update(ctx context.Context, tripID uuid.UUID, activityID string, patch domain.ActivityPatch) (domain.Activity, error) {
	return r.store.UpdateActivity(ctx, tripID, activityID, patch)
}

func (r *memActivityRepo) Delete(ctx context.Context, tripID uuid.UUID, activityID string) (domain.Activity, error) {
	return r.store.DeleteActivity(ctx, tripID, activityID)
}
