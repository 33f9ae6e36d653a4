// Package domain contains the core data types for the Wayfarer itinerary
// application. This package has no dependencies beyond uuid and is imported
// by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single travel plan.
// A trip is the top-level aggregate; activities belong to a trip and are kept
// in insertion order, which is the canonical display order until a caller
// asks for a chronological view.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	Activities  []Activity `json:"activities"`

	// Info is best-effort country data from the external lookup. The core
	// stores and returns it verbatim; nil when the lookup failed or was
	// never attempted.
	Info *DestinationInfo `json:"destination_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
