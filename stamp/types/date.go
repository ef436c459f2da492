package types

import (
	"fmt"
	"time"

	"github.com/theory/stampede/stamp/civil"
)

// Date is a calendar date with no clock and no zone.
type Date struct {
	// Time is the underlying time.Time value, pinned to midnight at
	// offset zero.
	time.Time
}

// NewDate boxes the calendar fields of ct, dropping its clock.
func NewDate(ct civil.Time) *Date {
	return &Date{
		time.Date(ct.Year, ct.Month, ct.Day, 0, 0, 0, 0, offsetZero),
	}
}

// GoTime returns the underlying time.Time object.
func (d *Date) GoTime() time.Time { return d.Time }

// dateFormat represents the canonical string format for Date values.
const dateFormat = "2006-01-02"

// String returns the string representation of d using the format
// "2006-01-02".
func (d *Date) String() string {
	return d.Format(dateFormat)
}

// Compare compares the date d with u. If d is before u, it returns -1;
// if d is after u, it returns +1; if they're the same, it returns 0.
func (d *Date) Compare(u time.Time) int {
	return d.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface. The date is a
// quoted string in the "2006-01-02" format.
func (d *Date) MarshalJSON() ([]byte, error) {
	const dateJSONSize = len(dateFormat) + len(`""`)
	b := make([]byte, 0, dateJSONSize)
	b = append(b, '"')
	b = d.AppendFormat(b, dateFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date
// must be a quoted string in the "2006-01-02" format.
func (d *Date) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(dateFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrValue, data, dateFormat)
	}
	*d = Date{Time: tim.In(offsetZero)}
	return nil
}
