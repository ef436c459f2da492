// Package tz classifies time zones and resolves UTC instants to local
// instants through precomputed transition tables.
//
// A Zone sorts into one of four classes: UTC, the host's local zone, a
// fixed offset, or a rule table of UTC transition instants with the
// offset each one puts into effect. Classification happens once, when
// the Zone is built, so converting a large array of instants pays for
// class dispatch a single time and each element costs at most one
// binary search. The table layout and its lookup conventions duplicate
// the behavior of the pandas timezone engine: a transition instant
// belongs to the regime it begins, and instants before the first
// transition take the first offset.
package tz

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/theory/stampede/stamp/civil"
)

var (
	// ErrMalformedTable wraps errors returned for transition tables
	// that cannot be classified.
	ErrMalformedTable = errors.New("malformed transition table")

	// ErrAmbiguousTime wraps errors returned when a wall-clock instant
	// occurs twice in a zone and no disambiguation policy was given.
	ErrAmbiguousTime = errors.New("ambiguous time")

	// ErrNonexistentTime wraps errors returned when a wall-clock
	// instant was skipped by a zone transition and no adjustment
	// policy was given.
	ErrNonexistentTime = errors.New("nonexistent time")
)

// Class identifies the conversion strategy a Zone uses.
type Class uint8

const (
	// ClassUTC is the identity conversion.
	ClassUTC Class = iota
	// ClassLocal delegates conversion to the host's zone database.
	ClassLocal
	// ClassFixed applies one constant offset.
	ClassFixed
	// ClassTable searches a table of offset transitions.
	ClassTable
)

// String returns the name of the class.
func (c Class) String() string {
	switch c {
	case ClassUTC:
		return "UTC"
	case ClassLocal:
		return "Local"
	case ClassFixed:
		return "Fixed"
	case ClassTable:
		return "Table"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Zone converts UTC instants to the local instants of a single time
// zone. The zero value is not useful; build one with FixedOffset,
// NewTable, or FromLocation, or use the UTC and Local singletons. A
// nil *Zone behaves as UTC everywhere it is accepted.
type Zone struct {
	class Class
	name  string
	// delta and era serve ClassFixed.
	delta int64
	era   *time.Location
	// trans, deltas, and eras serve ClassTable. trans holds the UTC
	// instants at which the offset changes, strictly ascending;
	// deltas[i] is the offset in force from trans[i] up to trans[i+1],
	// and also before trans[0]. eras[i] is the fixed-offset location
	// attached to output values in that span.
	trans  []int64
	deltas []int64
	eras   []*time.Location
}

//nolint:gochecknoglobals
var (
	// UTC is the canonical UTC zone.
	UTC = &Zone{class: ClassUTC, name: "UTC"}

	// Local is the host's local zone, whatever the platform reports it
	// to be.
	Local = &Zone{class: ClassLocal, name: "Local"}
)

// FixedOffset returns a Zone that applies the given offset, in
// nanoseconds east of UTC, to every instant. The offset rounds to a
// whole second in the names and locations of output values, though
// never in instant arithmetic.
func FixedOffset(delta int64) *Zone {
	name := formatOffset(delta)
	return &Zone{
		class: ClassFixed,
		name:  name,
		delta: delta,
		era:   time.FixedZone(name, int(delta/civil.Second)),
	}
}

// tableConfig collects the NewTable options.
type tableConfig struct {
	name     string
	eraNames []string
}

// TableOption functions configure NewTable.
type TableOption func(*tableConfig)

// WithName sets the display name of the zone.
func WithName(name string) TableOption {
	return func(cfg *tableConfig) { cfg.name = name }
}

// WithEraNames attaches an abbreviation to each transition, one name
// per table entry, for use in output values. Without names each era is
// an anonymous fixed offset.
func WithEraNames(names ...string) TableOption {
	return func(cfg *tableConfig) { cfg.eraNames = names }
}

// NewTable builds a Zone from parallel slices of transition instants
// and offsets, both in nanoseconds: deltas[i] is the offset east of UTC
// in force from transitions[i] up to transitions[i+1], and instants
// before transitions[0] also take deltas[0]. A transition instant
// itself already belongs to the new offset.
//
// The slices must be the same nonzero length and transitions must be
// strictly ascending, or NewTable returns an error wrapping
// ErrMalformedTable. A single-entry table yields a fixed-offset Zone.
func NewTable(transitions, deltas []int64, opts ...TableOption) (*Zone, error) {
	cfg := &tableConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch {
	case len(transitions) == 0:
		return nil, fmt.Errorf("%w: no transitions", ErrMalformedTable)
	case len(transitions) != len(deltas):
		return nil, fmt.Errorf(
			"%w: %v transitions but %v deltas",
			ErrMalformedTable, len(transitions), len(deltas),
		)
	case cfg.eraNames != nil && len(cfg.eraNames) != len(transitions):
		return nil, fmt.Errorf(
			"%w: %v transitions but %v era names",
			ErrMalformedTable, len(transitions), len(cfg.eraNames),
		)
	}

	for i := 1; i < len(transitions); i++ {
		if transitions[i] <= transitions[i-1] {
			return nil, fmt.Errorf(
				"%w: transitions not strictly ascending at index %v",
				ErrMalformedTable, i,
			)
		}
	}

	if len(transitions) == 1 {
		zone := FixedOffset(deltas[0])
		if cfg.name != "" {
			zone.name = cfg.name
		}
		return zone, nil
	}

	eras := make([]*time.Location, len(deltas))
	for i, delta := range deltas {
		name := ""
		if cfg.eraNames != nil {
			name = cfg.eraNames[i]
		}
		eras[i] = time.FixedZone(name, int(delta/civil.Second))
	}

	return &Zone{
		class:  ClassTable,
		name:   cfg.name,
		trans:  append([]int64(nil), transitions...),
		deltas: append([]int64(nil), deltas...),
		eras:   eras,
	}, nil
}

// FromLocation builds a Zone from a time.Location by walking its zone
// transitions across the representable instant range, 1677 through
// 2262. A nil location and time.UTC map to UTC, time.Local maps to
// Local, and a location with a single offset, such as those returned
// by time.FixedZone, maps to a fixed-offset Zone. Anything else
// becomes a table whose eras carry the location's abbreviations, so
// output values render as CET or CEST rather than a bare offset.
func FromLocation(loc *time.Location) *Zone {
	switch loc {
	case nil, time.UTC:
		return UTC
	case time.Local:
		return Local
	}

	var (
		trans  []int64
		deltas []int64
		eras   []*time.Location
	)

	// The first entry covers everything from the beginning of
	// representable time; later entries are real transitions.
	cur := time.Unix(0, math.MinInt64+1).In(loc)
	limit := time.Unix(0, math.MaxInt64).In(loc)
	name, off := cur.Zone()
	trans = append(trans, math.MinInt64+1)
	deltas = append(deltas, int64(off)*civil.Second)
	eras = append(eras, time.FixedZone(name, off))

	for {
		_, end := cur.ZoneBounds()
		if end.IsZero() || !end.Before(limit) {
			break
		}
		name, off := end.Zone()
		trans = append(trans, end.UnixNano())
		deltas = append(deltas, int64(off)*civil.Second)
		eras = append(eras, time.FixedZone(name, off))
		cur = end
	}

	if len(trans) == 1 {
		zone := FixedOffset(deltas[0])
		zone.name = loc.String()
		zone.era = eras[0]
		return zone
	}

	return &Zone{
		class:  ClassTable,
		name:   loc.String(),
		trans:  trans,
		deltas: deltas,
		eras:   eras,
	}
}

// Class returns the zone's conversion class. A nil Zone is ClassUTC.
func (z *Zone) Class() Class {
	if z == nil {
		return ClassUTC
	}
	return z.class
}

// IsUTC reports whether the zone is UTC. A nil Zone is UTC.
func (z *Zone) IsUTC() bool {
	return z == nil || z.class == ClassUTC
}

// String returns the zone's display name: "UTC", "Local", an offset
// such as "+05:30", a location name such as "America/New_York", or ""
// for an unnamed table.
func (z *Zone) String() string {
	if z == nil {
		return "UTC"
	}
	return z.name
}

// OffsetAt returns the offset east of UTC, in nanoseconds, in force at
// the given UTC instant.
func (z *Zone) OffsetAt(utc int64) int64 {
	r := z.Resolver()
	return r.Local(utc) - utc
}

// formatOffset renders a nanosecond offset as ±HH:MM, the spelling
// zone-aware tools conventionally accept.
func formatOffset(delta int64) string {
	sign := "+"
	if delta < 0 {
		sign = "-"
		delta = -delta
	}
	h := delta / civil.Hour
	m := (delta % civil.Hour) / civil.Minute
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
