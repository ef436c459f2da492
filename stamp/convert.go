package stamp

import (
	"github.com/theory/stampede/stamp/tz"
)

// ConvertFromUTC shifts each UTC instant into wall-clock encoding: the
// epoch-nanosecond value whose UTC decomposition shows the fields a
// clock in zone, nil meaning UTC, would show at that instant. NaT
// elements pass through. The result is an encoding of readings, not of
// instants; feed it back through Localize to recover the input.
func ConvertFromUTC(stamps []int64, zone *tz.Zone) []int64 {
	res := zone.Resolver()
	out := make([]int64, len(stamps))
	for i, v := range stamps {
		if v == NaT {
			out[i] = NaT
			continue
		}
		out[i] = res.Local(v)
	}
	return out
}

// Localize interprets each element of wall as a wall-clock reading in
// zone, nil meaning UTC, and returns the UTC instants that produce
// those readings. NaT elements pass through. Readings doubled by a
// zone transition resolve per ambiguous and skipped readings per
// nonexistent; with the zero policy values either case fails with an
// error wrapping tz.ErrAmbiguousTime or tz.ErrNonexistentTime, and no
// output is returned.
func Localize(
	wall []int64, zone *tz.Zone,
	ambiguous tz.Ambiguous, nonexistent tz.Nonexistent,
) ([]int64, error) {
	res := zone.Resolver()
	out := make([]int64, len(wall))
	for i, v := range wall {
		if v == NaT {
			out[i] = NaT
			continue
		}
		utc, err := res.Localize(v, ambiguous, nonexistent)
		if err != nil {
			return nil, err
		}
		out[i] = utc
	}
	return out, nil
}
