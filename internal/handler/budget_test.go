package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsoderlund/wayfarer/internal/domain"
	"github.com/jsoderlund/wayfarer/internal/handler"
)

// ---- mocks -----------------------------------------------------------------

// mockBudgetServicer is a test double for handler.BudgetServicer.
// TotalCost, Summary, and WithinBudget default to the real arithmetic so most
// tests only need to set highCost.
type mockBudgetServicer struct {
	highCost func(ctx context.Context, tripID uuid.UUID, threshold float64) ([]domain.Activity, error)
}

func (m *mockBudgetServicer) TotalCost(trip domain.Trip) float64 {
	var total float64
	for _, a := range trip.Activities {
		total += a.Cost
	}
	return total
}

func (m *mockBudgetServicer) Summary(trip domain.Trip) string {
	return fmt.Sprintf("Total Trip Cost for %s: $%.2f", trip.Destination, m.TotalCost(trip))
}

func (m *mockBudgetServicer) HighCost(ctx context.Context, tripID uuid.UUID, threshold float64) ([]domain.Activity, error) {
	return m.highCost(ctx, tripID, threshold)
}

func (m *mockBudgetServicer) WithinBudget(activities []domain.Activity, budget float64) []domain.Activity {
	matches := []domain.Activity{}
	for _, a := range activities {
		if a.Cost <= budget {
			matches = append(matches, a)
		}
	}
	return matches
}

var _ handler.BudgetServicer = (*mockBudgetServicer)(nil)

// ---- GET /trips/{tripID}/budget --------------------------------------------

func budgetTripServicer(trip domain.Trip) *mockTripServicer {
	return &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			if id != trip.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return trip, nil
		},
	}
}

func TestGetBudget_SummaryOnly(t *testing.T) {
	trip := tripFixture()
	trip.Destination = "Tokyo"
	trip.Activities = []domain.Activity{
		{ID: "1", Cost: 100},
		{ID: "2", Cost: 50},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/budget", nil)
	rec := httptest.NewRecorder()

	newRouter(budgetTripServicer(trip), nil, nil, &mockBudgetServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse[handler.BudgetResponse](t, rec)
	assert.Equal(t, 150.0, resp.Total)
	assert.Equal(t, "Total Trip Cost for Tokyo: $150.00", resp.Summary)
	assert.Nil(t, resp.Threshold)
	assert.Empty(t, resp.HighCost)
	assert.Empty(t, resp.WithinBudget)
}

func TestGetBudget_WithThresholdPartitions(t *testing.T) {
	trip := tripFixture()
	trip.Destination = "Iceland"
	trip.Activities = []domain.Activity{
		{ID: "1", Cost: 120},
		{ID: "2", Cost: 40},
		{ID: "3", Cost: 100}, // exactly at the threshold
	}
	budgets := &mockBudgetServicer{
		highCost: func(_ context.Context, _ uuid.UUID, threshold float64) ([]domain.Activity, error) {
			assert.Equal(t, 100.0, threshold)
			return []domain.Activity{trip.Activities[0]}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/budget?threshold=100", nil)
	rec := httptest.NewRecorder()

	newRouter(budgetTripServicer(trip), nil, nil, budgets).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse[handler.BudgetResponse](t, rec)
	require.NotNil(t, resp.Threshold)
	assert.Equal(t, 100.0, *resp.Threshold)
	// The activity at exactly 100 is within budget but not high cost.
	require.Len(t, resp.HighCost, 1)
	assert.Equal(t, "1", resp.HighCost[0].ID)
	require.Len(t, resp.WithinBudget, 2)
	assert.Equal(t, "2", resp.WithinBudget[0].ID)
	assert.Equal(t, "3", resp.WithinBudget[1].ID)
}

func TestGetBudget_422_BadThreshold(t *testing.T) {
	trip := tripFixture()

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/budget?threshold=lots", nil)
	rec := httptest.NewRecorder()

	newRouter(budgetTripServicer(trip), nil, nil, &mockBudgetServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetBudget_404(t *testing.T) {
	trip := tripFixture()

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/budget", nil)
	rec := httptest.NewRecorder()

	newRouter(budgetTripServicer(trip), nil, nil, &mockBudgetServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
