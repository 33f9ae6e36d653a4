package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// respondJSON writes v as a JSON response with the given status code.
// Encoding failures at this point cannot be reported to the client anymore,
// so they are swallowed — the status line has already been sent.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields so
// client typos surface as errors instead of silently ignored data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// tripIDParam parses the {tripID} URL parameter. A malformed id reads as
// "no such trip": the store does not distinguish the two and neither does
// the API, so the caller should answer 404.
func tripIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	return id, err == nil
}
