// Package expiry implements the expiry aggregation and classification engine.
// Given an in-memory snapshot of domains (with nested email accounts) it
// computes which records lapse within a lookahead window, annotates each with
// a days-remaining count and an urgency tier, and aggregates renewal totals.
//
// Everything in this package is a pure function over the snapshot: no clock
// reads, no I/O, no mutation of the input. Callers supply "today" explicitly
// so two calls over the same snapshot produce identical reports.
package expiry

// Tier is the urgency classification bucket derived from days-until-expiry.
// Lower values are more severe; the zero value is TierExpired.
type Tier int

const (
	// TierExpired marks records whose expiry date has already passed.
	TierExpired Tier = iota
	// TierCritical marks records expiring within a week, today included.
	TierCritical
	// TierHigh marks records expiring in 8 to 15 days.
	TierHigh
	// TierMedium marks records expiring in 16 to 30 days.
	TierMedium
	// TierLow marks records with more than 30 days remaining.
	TierLow
)

var tierLabels = map[Tier]string{
	TierExpired:  "Expired",
	TierCritical: "Critical",
	TierHigh:     "High",
	TierMedium:   "Medium",
	TierLow:      "Low",
}

// Label returns the display label for the tier.
func (t Tier) Label() string { return tierLabels[t] }

func (t Tier) String() string { return t.Label() }

// MarshalJSON encodes the tier as its display label.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Label() + `"`), nil
}

// Classify buckets a days-remaining count into an urgency tier.
//
// The boundaries are inclusive on the upper end: a record expiring today
// (days == 0) is Critical, not Expired; only a strictly negative count is
// Expired. Records with no expiry date carry the DaysUnknown sentinel and
// must be filtered out before classification; Classify maps the sentinel to
// TierLow so it can never surface as urgent.
func Classify(days int) Tier {
	switch {
	case days < 0:
		return TierExpired
	case days <= criticalMaxDays:
		return TierCritical
	case days <= highMaxDays:
		return TierHigh
	case days <= mediumMaxDays:
		return TierMedium
	default:
		return TierLow
	}
}

const (
	criticalMaxDays = 7
	highMaxDays     = 15
	mediumMaxDays   = 30
)
