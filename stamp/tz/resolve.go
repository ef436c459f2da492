package tz

import (
	"time"

	"github.com/theory/stampede/stamp/civil"
)

// A Resolver is a Zone with its classification hoisted out of the
// per-element path, so array loops dispatch on class once and pay at
// most one binary search per element. Obtain one from Zone.Resolver
// and pass it by value. A Resolver for the host's local zone caches
// era locations as it goes, so concurrent workers must each obtain
// their own; every other class is read-only.
type Resolver struct {
	class  Class
	delta  int64
	era    *time.Location
	trans  []int64
	deltas []int64
	eras   []*time.Location
	local  map[localEraKey]*time.Location
}

// localEraKey identifies a host-zone era by abbreviation and offset.
type localEraKey struct {
	name string
	off  int
}

// Resolver returns a Resolver for the zone. A nil Zone resolves as
// UTC.
func (z *Zone) Resolver() Resolver {
	// Mirrors the Localizer in
	// https://github.com/pandas-dev/pandas/blob/v2.2.3/pandas/_libs/tslibs/tzconversion.pyx
	if z == nil {
		return Resolver{class: ClassUTC}
	}
	r := Resolver{
		class:  z.class,
		delta:  z.delta,
		era:    z.era,
		trans:  z.trans,
		deltas: z.deltas,
		eras:   z.eras,
	}
	if z.class == ClassLocal {
		r.local = make(map[localEraKey]*time.Location)
	}
	return r
}

// bisectRight returns the index of the first element of data greater
// than v; equal elements sort left, so a transition instant itself
// resolves into the regime it begins.
func bisectRight(data []int64, v int64) int {
	lo, hi := 0, len(data)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if data[mid] <= v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// eraIndex returns the index of the transition whose regime contains
// the UTC instant: the last transition at or before it, or 0 for
// instants before the first transition.
func (r Resolver) eraIndex(utc int64) int {
	pos := bisectRight(r.trans, utc) - 1
	if pos < 0 {
		pos = 0
	}
	return pos
}

// Local converts a UTC instant to the zone's local instant.
func (r Resolver) Local(utc int64) int64 {
	switch r.class {
	case ClassUTC:
		return utc
	case ClassLocal:
		_, off := time.Unix(0, utc).Zone()
		return utc + int64(off)*civil.Second
	case ClassFixed:
		return utc + r.delta
	default:
		return utc + r.deltas[r.eraIndex(utc)]
	}
}

// Resolve converts a UTC instant to the zone's local instant and also
// returns the era, the fixed-offset location in force at that instant,
// for attaching to output values. Table zones built from a
// time.Location carry the location's abbreviations in their eras;
// synthetic tables yield anonymous offsets.
func (r Resolver) Resolve(utc int64) (int64, *time.Location) {
	switch r.class {
	case ClassUTC:
		return utc, time.UTC
	case ClassLocal:
		name, off := time.Unix(0, utc).Zone()
		return utc + int64(off)*civil.Second, r.localEra(name, off)
	case ClassFixed:
		return utc + r.delta, r.era
	default:
		pos := r.eraIndex(utc)
		return utc + r.deltas[pos], r.eras[pos]
	}
}

// localEra returns a cached fixed-offset location for a host-zone era,
// so a batch conversion allocates one location per distinct era rather
// than one per element.
func (r Resolver) localEra(name string, off int) *time.Location {
	key := localEraKey{name: name, off: off}
	if era, ok := r.local[key]; ok {
		return era
	}
	era := time.FixedZone(name, off)
	r.local[key] = era
	return era
}
