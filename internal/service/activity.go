package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
	"github.com/jsoderlund/wayfarer/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It holds both the trip and activity repos because creating an activity
// requires verifying the parent trip exists.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity, verifies the parent trip exists, then stores it.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, activity.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// Update applies a partial update to an activity, best-effort: each patch
// field is applied only when present and valid, and invalid fields are
// dropped silently rather than failing the update. A patch whose every field
// is absent or invalid is a no-op that still returns the stored activity.
//
// The returned PatchResult lists the fields that were actually applied, so
// callers can tell "skipped because invalid" apart from "value unchanged".
// Returns domain.ErrNotFound if the trip or the activity does not exist.
func (s *ActivityService) Update(ctx context.Context, tripID uuid.UUID, activityID string, patch domain.ActivityPatch) (domain.Activity, domain.PatchResult, error) {
	clean, applied := normalizePatch(patch)

	result, err := s.activities.Update(ctx, tripID, activityID, clean)
	if err != nil {
		return domain.Activity{}, domain.PatchResult{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, domain.PatchResult{Applied: applied}, nil
}

// Delete removes an activity from its trip and returns the removed record.
// Returns domain.ErrNotFound if the trip or the activity does not exist.
func (s *ActivityService) Delete(ctx context.Context, tripID uuid.UUID, activityID string) (domain.Activity, error) {
	result, err := s.activities.Delete(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return result, nil
}

// validateActivity enforces the business rules for new activities.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Category must be a member of the closed set.
//   - Cost must be finite and not negative.
//   - StartTime must be set.
func validateActivity(a domain.Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, a.Category)
	}
	if !validCost(a.Cost) {
		return fmt.Errorf("%w: cost must be a non-negative number", domain.ErrValidation)
	}
	if a.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	return nil
}

// normalizePatch drops absent and invalid fields from a patch, returning the
// cleaned patch together with the names of the fields that survived.
// The per-field rules mirror validateActivity.
func normalizePatch(patch domain.ActivityPatch) (domain.ActivityPatch, []string) {
	var clean domain.ActivityPatch
	applied := []string{}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		clean.Name = patch.Name
		applied = append(applied, domain.FieldName)
	}
	if patch.StartTime != nil && !patch.StartTime.IsZero() {
		clean.StartTime = patch.StartTime
		applied = append(applied, domain.FieldStartTime)
	}
	if patch.Category != nil && patch.Category.Valid() {
		clean.Category = patch.Category
		applied = append(applied, domain.FieldCategory)
	}
	if patch.Cost != nil && validCost(*patch.Cost) {
		clean.Cost = patch.Cost
		applied = append(applied, domain.FieldCost)
	}

	return clean, applied
}

// validCost reports whether c is a usable monetary amount: finite and ≥ 0.
func validCost(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c >= 0
}
