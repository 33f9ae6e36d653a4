package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an activity. The set of valid values is closed.
type Category string

// Valid activity categories.
const (
	CategoryFood        Category = "food"
	CategoryTransport   Category = "transport"
	CategorySightseeing Category = "sightseeing"
	CategoryFun         Category = "fun"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryFood, CategoryTransport, CategorySightseeing, CategoryFun}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategorySightseeing, CategoryFun:
		return true
	}
	return false
}

// ParseCategory converts a raw string into a Category.
// Returns ErrValidation when the value is not in the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", ErrValidation
	}
	return c, nil
}

// Activity is a single scheduled item within a trip.
//
// ID is unique within the parent trip only, not globally: each trip hands out
// ids from its own monotonic counter, so two trips routinely both contain an
// activity "1". Deleting an activity retires its id permanently — remaining
// activities are never renumbered and the counter never moves backwards.
type Activity struct {
	ID        string
	TripID    uuid.UUID
	Name      string
	Cost      float64
	Category  Category
	StartTime time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
