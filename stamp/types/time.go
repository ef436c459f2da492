package types

import (
	"fmt"
	"time"

	"github.com/theory/stampede/stamp/civil"
)

// Time is a clock reading qualified by a zone offset but carrying no
// date. The reading sits on the reference date 0000-01-01.
type Time struct {
	// Time is the underlying time.Time value.
	time.Time
	fold bool
}

// NewTime boxes the clock fields of ct in era, a fixed-offset
// location; nil means offset zero. The fold bit records which
// occurrence of a reading doubled by a zone transition the value
// denotes; it passes through conversion untouched.
func NewTime(ct civil.Time, era *time.Location, fold bool) *Time {
	if era == nil {
		era = offsetZero
	}
	return &Time{
		Time: time.Date(
			0, 1, 1,
			ct.Hour, ct.Minute, ct.Second, ct.Micro*1000+ct.Nano,
			era,
		),
		fold: fold,
	}
}

// GoTime returns the underlying time.Time object.
func (t *Time) GoTime() time.Time { return t.Time }

// Fold returns the fold bit: false for the first occurrence of a
// doubled reading, true for the second.
func (t *Time) Fold() bool { return t.fold }

// timeFormat represents the canonical string format for Time values.
const timeFormat = "15:04:05.999999999-07:00"

// String returns the string representation of t using the format
// "15:04:05.999999999-07:00".
func (t *Time) String() string {
	return t.Format(timeFormat)
}

// Compare compares the clock reading t with u. Primary order is by
// offset-adjusted reading; readings that agree there order by offset,
// westernmost last. The fold bit does not participate.
func (t *Time) Compare(u *Time) int {
	if cmp := t.Time.UTC().Compare(u.Time.UTC()); cmp != 0 {
		return cmp
	}
	_, off1 := t.Time.Zone()
	_, off2 := u.Time.Zone()
	switch {
	case off1 > off2:
		return -1
	case off1 < off2:
		return 1
	default:
		return 0
	}
}

// MarshalJSON implements the json.Marshaler interface. The time is a
// quoted string using the "15:04:05.999999999-07:00" format. The fold
// bit is not serialized.
func (t Time) MarshalJSON() ([]byte, error) {
	const timeJSONSize = len(timeFormat) + len(`""`)
	b := make([]byte, 0, timeJSONSize)
	b = append(b, '"')
	b = t.AppendFormat(b, timeFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time
// must be a quoted string in the "15:04:05.999999999-07:00" format.
func (t *Time) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(timeFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrValue, data, timeFormat)
	}
	*t = Time{Time: tim}
	return nil
}
