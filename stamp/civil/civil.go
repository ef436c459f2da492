// Package civil converts epoch-nanosecond instants to and from their
// broken-down calendar form.
//
// It makes every effort to duplicate the calendar conventions of the
// pandas timestamp engine: an instant is a signed 64-bit count of
// nanoseconds since the Unix epoch on the proleptic Gregorian calendar,
// the most negative count is reserved as the "not a time" sentinel, and
// all division floors toward negative infinity so that instants before
// the epoch round down rather than toward zero.
//
// The package has no notion of time zone. Decomposition reports the
// fields a clock would show reading the instant in UTC; callers that
// want zone-local fields add a zone offset to the instant first.
package civil

import (
	"math"
	"time"
)

// NaT, "not a time", is the sentinel for a missing instant. It occupies
// the most negative int64, so no representable instant collides with
// it.
const NaT int64 = math.MinInt64

// Nanosecond spans of the civil units.
const (
	Microsecond int64 = 1000
	Millisecond       = 1000 * Microsecond
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
)

// Time is an instant broken into calendar and clock fields. The
// sub-second remainder is split into whole microseconds and leftover
// nanoseconds.
type Time struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	// Micro is the whole-microsecond part of the sub-second remainder,
	// 0 through 999999.
	Micro int
	// Nano is the sub-microsecond remainder, 0 through 999.
	Nano int
}

// FromUnixNanos breaks an epoch-nanosecond instant into its civil
// fields. The result for NaT is unspecified; callers filter the
// sentinel first.
func FromUnixNanos(ns int64) Time {
	t := time.Unix(0, ns).UTC()
	frac := t.Nanosecond()
	return Time{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Micro:  frac / 1000,
		Nano:   frac % 1000,
	}
}

// UnixNanos returns the epoch-nanosecond instant of the civil fields.
// Fields outside their canonical ranges are normalized the way
// time.Date normalizes them.
func (ct Time) UnixNanos() int64 {
	return time.Date(
		ct.Year, ct.Month, ct.Day,
		ct.Hour, ct.Minute, ct.Second, ct.Micro*1000+ct.Nano,
		time.UTC,
	).UnixNano()
}

// UnixDate returns the number of whole days between the civil date and
// 1970-01-01, negative for earlier dates. Clock fields are ignored.
func (ct Time) UnixDate() int64 {
	date := time.Date(ct.Year, ct.Month, ct.Day, 0, 0, 0, 0, time.UTC)
	return date.Unix() / secondsPerDay
}

// secondsPerDay contains the number of seconds in a civil day.
const secondsPerDay = 24 * 60 * 60

// Midnight floors an instant to the most recent civil midnight.
func Midnight(ns int64) int64 {
	return ns - FloorMod(ns, Day)
}

// IsMidnight reports whether an instant falls exactly on a civil
// midnight.
func IsMidnight(ns int64) bool {
	return FloorMod(ns, Day) == 0
}

// FloorDiv divides a by b rounding toward negative infinity, unlike the
// native quotient, which rounds toward zero. The distinction matters
// only when the signs of a and b differ: FloorDiv(-1, 86400) is -1, not
// 0.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod returns a - FloorDiv(a, b)*b. The result takes the sign of
// b, so FloorMod(-1, 86400) is 86399.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (a < 0) != (b < 0) {
		m += b
	}
	return m
}
