package tz

import (
	"fmt"
	"time"

	"github.com/theory/stampede/stamp/civil"
)

// Ambiguous selects the UTC instant a doubled wall-clock reading
// resolves to. When a zone's offset decreases, as when daylight saving
// ends, the readings in the repeated span occur at two UTC instants.
type Ambiguous uint8

const (
	// AmbiguousError rejects doubled readings.
	AmbiguousError Ambiguous = iota
	// AmbiguousEarliest takes the first occurrence, the one under the
	// offset in force before the transition.
	AmbiguousEarliest
	// AmbiguousLatest takes the second occurrence.
	AmbiguousLatest
	// AmbiguousNaT maps doubled readings to NaT.
	AmbiguousNaT
)

// Nonexistent selects the treatment of a skipped wall-clock reading.
// When a zone's offset increases, as when daylight saving begins, the
// readings in the skipped span never occur.
type Nonexistent uint8

const (
	// NonexistentError rejects skipped readings.
	NonexistentError Nonexistent = iota
	// NonexistentShiftForward moves a skipped reading to the first
	// instant after the gap.
	NonexistentShiftForward
	// NonexistentShiftBackward moves a skipped reading to the last
	// instant before the gap.
	NonexistentShiftBackward
	// NonexistentNaT maps skipped readings to NaT.
	NonexistentNaT
)

// Localize converts a wall-clock instant, a local reading with no zone
// attached, to the UTC instant that reads that way in the zone. For
// UTC and fixed-offset zones the conversion is exact arithmetic. For
// the host zone it delegates to the platform, which applies its own
// resolution to doubled and skipped readings, so the policies go
// unused. For table zones a doubled reading resolves per ambiguous
// and a skipped one per nonexistent; the zero policy values reject
// both cases with errors wrapping ErrAmbiguousTime and
// ErrNonexistentTime. Callers filter NaT before calling.
func (r Resolver) Localize(
	wall int64, ambiguous Ambiguous, nonexistent Nonexistent,
) (int64, error) {
	// Mirrors tz_localize_to_utc_single in
	// https://github.com/pandas-dev/pandas/blob/v2.2.3/pandas/_libs/tslibs/tzconversion.pyx
	switch r.class {
	case ClassUTC:
		return wall, nil
	case ClassFixed:
		return wall - r.delta, nil
	case ClassLocal:
		u := time.Unix(0, wall).UTC()
		return time.Date(
			u.Year(), u.Month(), u.Day(),
			u.Hour(), u.Minute(), u.Second(), u.Nanosecond(),
			time.Local,
		).UnixNano(), nil
	}

	// A wall reading can only originate in the era it would occupy as
	// a UTC instant or in an immediate neighbor; offsets are hours
	// while eras span months. A candidate era is valid when
	// subtracting its offset lands back inside it. Valid candidates
	// come out in ascending UTC order because the eras themselves are
	// ordered in time.
	guess := r.eraIndex(wall)
	var cand [3]int64
	n := 0
	gap := guess
	for j := max(guess-1, 0); j <= min(guess+1, len(r.trans)-1); j++ {
		utc := wall - r.deltas[j]
		switch pos := r.eraIndex(utc); {
		case pos == j:
			cand[n] = utc
			n++
		case pos > j:
			// The reading falls after era j ends; the transition that
			// opens era pos bounds the gap.
			gap = pos
		}
	}

	switch n {
	case 1:
		return cand[0], nil
	case 0:
		switch nonexistent {
		case NonexistentShiftForward:
			return r.trans[gap], nil
		case NonexistentShiftBackward:
			return r.trans[gap] - 1, nil
		case NonexistentNaT:
			return civil.NaT, nil
		default:
			return 0, fmt.Errorf(
				"%w: wall instant %v was skipped by a transition",
				ErrNonexistentTime, wall,
			)
		}
	default:
		switch ambiguous {
		case AmbiguousEarliest:
			return cand[0], nil
		case AmbiguousLatest:
			return cand[n-1], nil
		case AmbiguousNaT:
			return civil.NaT, nil
		default:
			return 0, fmt.Errorf(
				"%w: wall instant %v occurs %v times",
				ErrAmbiguousTime, wall, n,
			)
		}
	}
}
