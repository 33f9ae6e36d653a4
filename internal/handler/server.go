// Package handler implements the HTTP layer for the Wayfarer itinerary API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, activity.go, budget.go, ...) but all share the same Server
// struct so they can access its dependencies.
//
// The HTTP layer is a thin shell: it parses identifiers and bodies, calls a
// service, and maps sentinel errors to status codes. Everything else lives in
// internal/service.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsoderlund/wayfarer/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
}

// ActivityServicer defines the business operations the activity handlers
// depend on.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, tripID uuid.UUID, activityID string, patch domain.ActivityPatch) (domain.Activity, domain.PatchResult, error)
	Delete(ctx context.Context, tripID uuid.UUID, activityID string) (domain.Activity, error)
}

// QueryServicer defines the read-only activity views.
type QueryServicer interface {
	ByDay(ctx context.Context, tripID uuid.UUID, day time.Time) ([]domain.Activity, error)
	ByCategory(ctx context.Context, tripID uuid.UUID, category domain.Category) ([]domain.Activity, error)
	SortChronological(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

// BudgetServicer defines the cost aggregation operations.
type BudgetServicer interface {
	TotalCost(trip domain.Trip) float64
	Summary(trip domain.Trip) string
	HighCost(ctx context.Context, tripID uuid.UUID, threshold float64) ([]domain.Activity, error)
	WithinBudget(activities []domain.Activity, budget float64) []domain.Activity
}

// DestinationLookup defines the country-info passthrough endpoint's dependency.
type DestinationLookup interface {
	Lookup(ctx context.Context, country string) (domain.DestinationInfo, error)
}

// Server holds the dependencies for every API endpoint.
type Server struct {
	trips        TripServicer
	activities   ActivityServicer
	queries      QueryServicer
	budgets      BudgetServicer
	destinations DestinationLookup
}

// NewServer constructs the Server with all its dependencies.
// destinations may be nil; the /destinations endpoint then answers 404.
func NewServer(trips TripServicer, activities ActivityServicer, queries QueryServicer, budgets BudgetServicer, destinations DestinationLookup) *Server {
	return &Server{
		trips:        trips,
		activities:   activities,
		queries:      queries,
		budgets:      budgets,
		destinations: destinations,
	}
}

// Routes returns the chi router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Get("/schedule", s.GetSchedule)
			r.Get("/budget", s.GetBudget)

			r.Route("/activities", func(r chi.Router) {
				r.Post("/", s.CreateActivity)
				r.Get("/", s.ListActivities)
				r.Patch("/{activityID}", s.UpdateActivity)
				r.Delete("/{activityID}", s.DeleteActivity)
			})
		})
	})

	r.Get("/destinations/{country}", s.GetDestination)

	return r
}
