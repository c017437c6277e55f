package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// dateLayout is the calendar-date form accepted and produced on the wire.
const dateLayout = "2006-01-02"

// Date is a nullable calendar date. Time-of-day is irrelevant for every date
// this service stores (purchase and expiry dates), so Date always normalizes
// to midnight UTC.
//
// A Date is in one of three states:
//   - unset: no date was provided (JSON null or empty string)
//   - valid: a parseable date was provided
//   - malformed: a value was provided but could not be parsed; the raw input
//     is preserved so the report layer can log what it is skipping
//
// Malformed input is deliberately not an unmarshal error: records with broken
// dates must still load so the rest of the row stays usable.
type Date struct {
	time  time.Time
	valid bool
	raw   string
}

// NewDate builds a valid Date from t, truncated to its calendar day in UTC.
func NewDate(t time.Time) Date {
	return Date{time: Midnight(t), valid: true}
}

// ParseDate parses s as a calendar date. Empty input yields an unset Date,
// unparseable input a malformed one. RFC3339 timestamps are accepted and
// truncated to their calendar day.
func ParseDate(s string) Date {
	if s == "" {
		return Date{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return NewDate(t)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t)
	}

	return Date{raw: s}
}

// Midnight truncates t to 00:00 UTC of its calendar day. Both ends of any
// date subtraction must go through this so day counts never pick up an
// hour-of-day or DST skew.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the Date holds a parsed calendar date.
func (d Date) Valid() bool { return d.valid }

// Malformed reports whether a value was provided but could not be parsed.
func (d Date) Malformed() bool { return !d.valid && d.raw != "" }

// Raw returns the original unparseable input for malformed dates.
func (d Date) Raw() string { return d.raw }

// Time returns the underlying midnight-UTC time. Only meaningful when Valid.
func (d Date) Time() time.Time { return d.time }

// String renders the date in ISO form, or "" when not valid.
func (d Date) String() string {
	if !d.valid {
		return ""
	}

	return d.time.Format(dateLayout)
}

// MarshalJSON encodes valid dates as "YYYY-MM-DD" and everything else as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null, "", "YYYY-MM-DD" or an RFC3339 timestamp.
// Anything else becomes a malformed Date rather than an error.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{raw: string(data)}

		return nil
	}
	*d = ParseDate(s)

	return nil
}
