package stamp

import (
	"github.com/theory/stampede/stamp/civil"
	"github.com/theory/stampede/stamp/tz"
)

// Normalize floors each instant to its local midnight in zone, nil
// meaning UTC, and returns the UTC instants of those midnights, so the
// result still composes with every other driver. NaT elements pass
// through. Normalizing an already normalized array changes nothing.
//
// A midnight that a zone transition doubled resolves to its first
// occurrence. A midnight a transition skipped, as when daylight saving
// starts at midnight sharp, has no instant to return; Normalize then
// returns an error wrapping tz.ErrNonexistentTime and no output.
func Normalize(stamps []int64, zone *tz.Zone) ([]int64, error) {
	// Mirrors normalize_i8_timestamps in
	// https://github.com/pandas-dev/pandas/blob/v2.2.3/pandas/_libs/tslibs/vectorized.pyx
	res := zone.Resolver()
	out := make([]int64, len(stamps))
	for i, v := range stamps {
		if v == NaT {
			out[i] = NaT
			continue
		}
		mid := civil.Midnight(res.Local(v))
		utc, err := res.Localize(mid, tz.AmbiguousEarliest, tz.NonexistentError)
		if err != nil {
			return nil, err
		}
		out[i] = utc
	}
	return out, nil
}

// IsNormalized reports whether every instant in stamps reads as
// exactly midnight in zone, nil meaning UTC. NaT elements count as
// normalized, since Normalize preserves them, and the empty array is
// normalized. The scan stops at the first off-midnight reading.
func IsNormalized(stamps []int64, zone *tz.Zone) bool {
	// Mirrors is_date_array_normalized in
	// https://github.com/pandas-dev/pandas/blob/v2.2.3/pandas/_libs/tslibs/vectorized.pyx
	res := zone.Resolver()
	for _, v := range stamps {
		if v == NaT {
			continue
		}
		if !civil.IsMidnight(res.Local(v)) {
			return false
		}
	}
	return true
}
