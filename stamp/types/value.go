// Package types provides the boxed values produced by batch timestamp
// conversion: calendar dates, zone-qualified clock readings, civil
// datetimes, and fully loaded timestamps.
//
// Every kind wraps a time.Time pinned to a fixed-offset location, the
// era its instant resolved to, rather than to a rule-carrying
// location. Formatting and arithmetic on a boxed value therefore never
// re-resolve zone rules, which would silently move instants that fall
// inside a repeated or skipped wall-clock span.
package types

import (
	"errors"
	"time"
)

// ErrValue wraps errors returned by the types package.
var ErrValue = errors.New("value")

// offsetZero represents time zone offset zero.
//
//nolint:gochecknoglobals
var offsetZero = time.FixedZone("", 0)

// Value is the interface satisfied by every boxed kind.
type Value interface {
	// GoTime returns the underlying time.Time object.
	GoTime() time.Time

	// String returns the canonical string rendering of the value.
	String() string
}
