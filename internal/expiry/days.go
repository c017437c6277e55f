package expiry

import (
	"math"
	"time"

	"hostadmin/pkg/domain"
)

// DaysUnknown is the sentinel returned for records without a usable expiry
// date. It stands in for positive infinity: such records are never "expiring
// soon" and the window filter drops them before classification.
const DaysUnknown = math.MaxInt32

const hoursPerDay = 24

// DaysRemaining returns the whole number of calendar days from today until d,
// or DaysUnknown when d holds no parseable date. The count is negative for
// dates already in the past.
//
// Both sides are normalized to midnight UTC before subtracting, so the result
// is an exact day count regardless of the hour-of-day or zone "today" arrived
// with. The denormalized subtraction of wall-clock times is exactly the
// off-by-one trap this helper exists to avoid.
func DaysRemaining(d domain.Date, today time.Time) int {
	if !d.Valid() {
		return DaysUnknown
	}

	diff := d.Time().Sub(domain.Midnight(today))

	return int(diff.Hours() / hoursPerDay)
}
