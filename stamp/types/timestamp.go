package types

import (
	"fmt"
	"time"

	"github.com/theory/stampede/stamp/civil"
	"github.com/theory/stampede/stamp/period"
	"github.com/theory/stampede/stamp/tz"
)

// Timestamp is the fully loaded boxed kind: the civil reading pinned
// to its era, the zone it resolved in, the exact UTC instant it came
// from, the fold bit, and optional frequency metadata.
type Timestamp struct {
	// Time is the underlying time.Time value.
	time.Time
	value int64
	zone  *tz.Zone
	fold  bool
	freq  period.Freq
}

// NewTimestamp boxes the fields of ct in era, a fixed-offset location,
// nil meaning offset zero. utc is the instant the reading came from
// and zone the zone that resolved it; the fold bit and freq pass
// through untouched. A zero freq means no frequency metadata.
func NewTimestamp(
	utc int64, ct civil.Time, zone *tz.Zone, era *time.Location,
	fold bool, freq period.Freq,
) *Timestamp {
	if era == nil {
		era = offsetZero
	}
	return &Timestamp{
		Time: time.Date(
			ct.Year, ct.Month, ct.Day,
			ct.Hour, ct.Minute, ct.Second, ct.Micro*1000+ct.Nano,
			era,
		),
		value: utc,
		zone:  zone,
		fold:  fold,
		freq:  freq,
	}
}

// GoTime returns the underlying time.Time object.
func (ts *Timestamp) GoTime() time.Time { return ts.Time }

// UnixNanos returns the UTC instant the timestamp came from, in epoch
// nanoseconds. It always agrees with the embedded UnixNano method; the
// instant is recorded rather than re-derived.
func (ts *Timestamp) UnixNanos() int64 { return ts.value }

// Zone returns the zone the timestamp resolved in. It is nil when the
// timestamp was built without one.
func (ts *Timestamp) Zone() *tz.Zone { return ts.zone }

// Fold returns the fold bit: false for the first occurrence of a
// doubled reading, true for the second.
func (ts *Timestamp) Fold() bool { return ts.fold }

// Freq returns the frequency metadata attached to the timestamp, zero
// when none was.
func (ts *Timestamp) Freq() period.Freq { return ts.freq }

// String returns the string representation of ts using the format
// "2006-01-02 15:04:05.999999999-07:00".
func (ts *Timestamp) String() string {
	return ts.Format(dateTimeFormat)
}

// Compare compares the time instant ts with u. If ts is before u, it
// returns -1; if ts is after u, it returns +1; if they're the same
// instant, it returns 0, whatever their zones.
func (ts *Timestamp) Compare(u *Timestamp) int {
	if u == nil {
		return ts.Time.Compare(time.Time{})
	}
	switch {
	case ts.value < u.value:
		return -1
	case ts.value > u.value:
		return 1
	default:
		return 0
	}
}

// MarshalJSON implements the json.Marshaler interface. The value is a
// quoted string using the "2006-01-02T15:04:05.999999999-07:00"
// format. The zone, fold bit, and frequency are not serialized.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	const tsJSONSize = len(dateTimeJSONFormat) + len(`""`)
	b := make([]byte, 0, tsJSONSize)
	b = append(b, '"')
	b = ts.AppendFormat(b, dateTimeJSONFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value
// must be a quoted string in the
// "2006-01-02T15:04:05.999999999-07:00" format; its offset becomes a
// fixed-offset zone.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(dateTimeJSONFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf(
			"%w: Cannot parse %s as %q",
			ErrValue, data, dateTimeJSONFormat,
		)
	}
	_, off := tim.Zone()
	*ts = Timestamp{
		Time:  tim,
		value: tim.UnixNano(),
		zone:  tz.FixedOffset(int64(off) * civil.Second),
	}
	return nil
}
