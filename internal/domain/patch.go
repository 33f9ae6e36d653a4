package domain

import "time"

// ActivityPatch is a partial update for an activity. Nil fields are "leave
// unchanged". The update policy is best-effort: a field that is present but
// invalid (empty name, unknown category, negative or non-finite cost, zero
// start time) is skipped silently instead of failing the whole update, so a
// patch where every field is invalid is a no-op that still succeeds.
type ActivityPatch struct {
	Name      *string
	StartTime *time.Time
	Category  *Category
	Cost      *float64
}

// Names of patchable activity fields, as reported in PatchResult.Applied.
const (
	FieldName      = "name"
	FieldStartTime = "start_time"
	FieldCategory  = "category"
	FieldCost      = "cost"
)

// PatchResult reports which fields of an ActivityPatch were actually applied,
// letting callers tell "skipped because invalid" apart from "value unchanged".
type PatchResult struct {
	// Applied holds field names in FieldName/FieldStartTime/... form, in the
	// fixed order name, start_time, category, cost. Empty when the patch was
	// a no-op.
	Applied []string
}
