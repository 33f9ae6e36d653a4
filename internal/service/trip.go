// Package service contains the business logic for the Wayfarer itinerary API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No storage bookkeeping lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
	"github.com/jsoderlund/wayfarer/internal/repo"
)

// DestinationLookup fetches country information for a destination name.
// The concrete implementation lives in internal/destination; defining the
// interface here keeps the service testable without network access.
type DestinationLookup interface {
	Lookup(ctx context.Context, country string) (domain.DestinationInfo, error)
}

// TripService implements business logic for Trip operations.
type TripService struct {
	trips  repo.TripRepo
	lookup DestinationLookup
	log    *slog.Logger
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// lookup may be nil, in which case trips are created without destination info.
func NewTripService(trips repo.TripRepo, lookup DestinationLookup, log *slog.Logger) *TripService {
	if log == nil {
		log = slog.Default()
	}
	return &TripService{trips: trips, lookup: lookup, log: log}
}

// Create validates and stores a new trip. Destination info is attached
// best-effort: a failed lookup is logged and the trip is created without it.
// Returns domain.ErrValidation if the destination is empty.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.Destination) == "" {
		return domain.Trip{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}

	if s.lookup != nil {
		info, err := s.lookup.Lookup(ctx, trip.Destination)
		if err != nil {
			s.log.WarnContext(ctx, "destination lookup failed",
				"destination", trip.Destination,
				"error", err,
			)
		} else {
			trip.Info = &info
		}
	}

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}
