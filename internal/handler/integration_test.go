package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsoderlund/wayfarer/internal/handler"
	"github.com/jsoderlund/wayfarer/internal/repo"
	"github.com/jsoderlund/wayfarer/internal/service"
)

// newAPI wires the real store, services, and router together — the same graph
// main.go builds, minus the destination lookup. Because the store is
// in-memory this is a true end-to-end test with no external dependencies.
func newAPI() http.Handler {
	store := repo.NewStore()
	trips := repo.NewTripRepo(store)
	activities := repo.NewActivityRepo(store)

	srv := handler.NewServer(
		service.NewTripService(trips, nil, nil),
		service.NewActivityService(trips, activities),
		service.NewQueryService(trips),
		service.NewBudgetService(trips),
		nil,
	)
	return srv.Routes()
}

func do(t *testing.T, api http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func TestAPI_TripLifecycle(t *testing.T) {
	api := newAPI()

	// Create a trip.
	rec := do(t, api, http.MethodPost, "/trips", map[string]any{
		"destination": "Canada",
		"start_date":  "2027-07-05",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	trip := decodeResponse[handler.TripResponse](t, rec)
	assert.Empty(t, trip.Activities)

	base := "/trips/" + trip.ID.String()

	// Five activities on the trip day, one on the next, inserted out of
	// chronological order.
	for _, a := range []map[string]any{
		{"name": "Lake Visit", "cost": 0, "category": "sightseeing", "start_time": "2027-07-05T11:00:00Z"},
		{"name": "Brunch", "cost": 22, "category": "food", "start_time": "2027-07-05T10:00:00Z"},
		{"name": "Tram", "cost": 5, "category": "transport", "start_time": "2027-07-05T09:00:00Z"},
		{"name": "Kayaking", "cost": 60, "category": "fun", "start_time": "2027-07-05T14:00:00Z"},
		{"name": "BBQ", "cost": 38, "category": "food", "start_time": "2027-07-05T19:00:00Z"},
		{"name": "Ferry Home", "cost": 25, "category": "transport", "start_time": "2027-07-06T08:00:00Z"},
	} {
		rec = do(t, api, http.MethodPost, base+"/activities", a)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	// Day filter: exactly the five activities of 2027-07-05.
	rec = do(t, api, http.MethodGet, base+"/activities?day=2027-07-05", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dayView := decodeResponse[[]handler.ActivityResponse](t, rec)
	assert.Len(t, dayView, 5)

	// Category filter keeps stored order.
	rec = do(t, api, http.MethodGet, base+"/activities?category=food", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	food := decodeResponse[[]handler.ActivityResponse](t, rec)
	require.Len(t, food, 2)
	assert.Equal(t, "Brunch", food[0].Name)
	assert.Equal(t, "BBQ", food[1].Name)

	// Schedule is chronological.
	rec = do(t, api, http.MethodGet, base+"/schedule", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	schedule := decodeResponse[[]handler.ActivityResponse](t, rec)
	require.Len(t, schedule, 6)
	assert.Equal(t, "Tram", schedule[0].Name)
	assert.Equal(t, "Ferry Home", schedule[5].Name)
	for i := 1; i < len(schedule); i++ {
		assert.False(t, schedule[i].StartTime.Before(schedule[i-1].StartTime))
	}

	// Budget with a threshold: 0+22+5+60+38+25 = 150.
	rec = do(t, api, http.MethodGet, base+"/budget?threshold=25", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	budget := decodeResponse[handler.BudgetResponse](t, rec)
	assert.Equal(t, 150.0, budget.Total)
	assert.Equal(t, "Total Trip Cost for Canada: $150.00", budget.Summary)
	// Strict >: Ferry Home at exactly 25 is not high cost...
	require.Len(t, budget.HighCost, 2)
	assert.Equal(t, "Kayaking", budget.HighCost[0].Name)
	assert.Equal(t, "BBQ", budget.HighCost[1].Name)
	// ...but is within an inclusive budget of 25.
	names := make([]string, len(budget.WithinBudget))
	for i, a := range budget.WithinBudget {
		names[i] = a.Name
	}
	assert.Contains(t, names, "Ferry Home")

	// Partial update: the invalid name is skipped, the cost is applied.
	rec = do(t, api, http.MethodPatch, base+"/activities/2", map[string]any{
		"name": "   ",
		"cost": 30,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeResponse[handler.UpdateActivityResponse](t, rec)
	assert.Equal(t, []string{"cost"}, patched.Applied)
	assert.Equal(t, "Brunch", patched.Activity.Name)
	assert.Equal(t, 30.0, patched.Activity.Cost)

	// Delete returns the removed activity; a second delete is a 404.
	rec = do(t, api, http.MethodDelete, base+"/activities/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	removed := decodeResponse[handler.ActivityResponse](t, rec)
	assert.Equal(t, "Tram", removed.Name)

	rec = do(t, api, http.MethodDelete, base+"/activities/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Remaining activities kept their ids.
	rec = do(t, api, http.MethodGet, base+"/activities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	remaining := decodeResponse[[]handler.ActivityResponse](t, rec)
	require.Len(t, remaining, 5)
	assert.Equal(t, "1", remaining[0].ID)
	assert.Equal(t, "2", remaining[1].ID)
	assert.Equal(t, "4", remaining[2].ID)
}

func TestAPI_IsolatedStoresDoNotShareState(t *testing.T) {
	first := newAPI()
	second := newAPI()

	rec := do(t, first, http.MethodPost, "/trips", map[string]any{
		"destination": "Japan",
		"start_date":  "2027-03-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, second, http.MethodGet, "/trips", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	trips := decodeResponse[[]handler.TripResponse](t, rec)
	assert.Empty(t, trips)
}
