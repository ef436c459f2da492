package types

import (
	"fmt"
	"time"

	"github.com/theory/stampede/stamp/civil"
)

// DateTime is a civil date and clock pinned to the fixed offset of the
// era its instant resolved to.
type DateTime struct {
	// Time is the underlying time.Time value.
	time.Time
	fold bool
}

// NewDateTime boxes the fields of ct in era, a fixed-offset location;
// nil means offset zero. The fold bit passes through untouched.
func NewDateTime(ct civil.Time, era *time.Location, fold bool) *DateTime {
	if era == nil {
		era = offsetZero
	}
	return &DateTime{
		Time: time.Date(
			ct.Year, ct.Month, ct.Day,
			ct.Hour, ct.Minute, ct.Second, ct.Micro*1000+ct.Nano,
			era,
		),
		fold: fold,
	}
}

// GoTime returns the underlying time.Time object.
func (dt *DateTime) GoTime() time.Time { return dt.Time }

// Fold returns the fold bit: false for the first occurrence of a
// doubled reading, true for the second.
func (dt *DateTime) Fold() bool { return dt.fold }

const (
	// dateTimeFormat represents the canonical string format for
	// DateTime values.
	dateTimeFormat = "2006-01-02 15:04:05.999999999-07:00"
	// dateTimeJSONFormat is the JSON serialization format.
	dateTimeJSONFormat = "2006-01-02T15:04:05.999999999-07:00"
)

// String returns the string representation of dt using the format
// "2006-01-02 15:04:05.999999999-07:00".
func (dt *DateTime) String() string {
	return dt.Format(dateTimeFormat)
}

// Compare compares the time instant dt with u. If dt is before u, it
// returns -1; if dt is after u, it returns +1; if they're the same
// instant, it returns 0, whatever their offsets.
func (dt *DateTime) Compare(u time.Time) int {
	return dt.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface. The value is a
// quoted string using the "2006-01-02T15:04:05.999999999-07:00"
// format. The fold bit is not serialized.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	const dtJSONSize = len(dateTimeJSONFormat) + len(`""`)
	b := make([]byte, 0, dtJSONSize)
	b = append(b, '"')
	b = dt.AppendFormat(b, dateTimeJSONFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value
// must be a quoted string in the
// "2006-01-02T15:04:05.999999999-07:00" format.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(dateTimeJSONFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf(
			"%w: Cannot parse %s as %q",
			ErrValue, data, dateTimeJSONFormat,
		)
	}
	*dt = DateTime{Time: tim}
	return nil
}
