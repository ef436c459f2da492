// Package stamp converts arrays of epoch-nanosecond timestamps into
// civil-time representations under a time zone.
//
// It makes every effort to duplicate the semantics of the vectorized
// conversion routines of the pandas timestamp engine. An input array
// holds UTC instants as signed 64-bit nanosecond counts since the Unix
// epoch, with the most negative value, NaT, marking missing elements.
// Every driver classifies the zone once, up front, then runs a tight
// per-element loop:
//
//   - [ToValues] boxes each instant as a date, clock reading, civil
//     datetime, or fully loaded timestamp.
//   - [InferResolution] reports the finest clock unit the readings
//     actually use.
//   - [Normalize] floors each instant to its local midnight, and
//     [IsNormalized] reports whether all instants already sit there.
//   - [ToPeriodOrdinals] numbers each reading's period span.
//
// Two lower-level drivers expose the conversions the rest build on:
// [ConvertFromUTC] shifts instants into wall-clock encoding, and
// [Localize] converts wall-clock encodings back to UTC under explicit
// policies for readings a zone transition doubled or skipped.
//
// Zones come from the [github.com/theory/stampede/stamp/tz] package;
// a nil zone means UTC. NaT propagates through every driver untouched:
// boxed as nil, skipped by inference and normalization checks, and
// carried through numeric outputs.
package stamp

import (
	"errors"
	"fmt"

	"github.com/theory/stampede/stamp/civil"
	"github.com/theory/stampede/stamp/period"
	"github.com/theory/stampede/stamp/types"
	"github.com/theory/stampede/stamp/tz"
)

// NaT, "not a time", is the missing-element sentinel, the most
// negative int64.
const NaT = civil.NaT

var (
	// ErrOutputKind wraps errors returned for unrecognized output
	// kinds.
	ErrOutputKind = errors.New("invalid output kind")

	// ErrDateZone wraps errors returned when date output is requested
	// under a zone other than UTC. A Date has nowhere to record the
	// zone its reading came from, so the combination silently shifts
	// calendar days; convert to UTC first or box a zoned kind instead.
	ErrDateZone = errors.New("date output requires UTC")
)

// Kind selects the boxed type ToValues produces.
type Kind uint8

const (
	// KindDateTime boxes elements as *types.DateTime. It is the zero
	// value, and so the default.
	KindDateTime Kind = iota
	// KindDate boxes elements as *types.Date, dropping the clock.
	// Dates carry no zone, so the zone must be UTC.
	KindDate
	// KindTime boxes elements as *types.Time, dropping the date.
	KindTime
	// KindTimestamp boxes elements as *types.Timestamp.
	KindTimestamp
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDateTime:
		return "DateTime"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindTimestamp:
		return "Timestamp"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// config collects the driver options.
type config struct {
	fold bool
	freq period.Freq
}

// Option functions configure the conversion drivers.
type Option func(*config)

// WithFold marks the boxed values as the second occurrence of
// wall-clock readings doubled by a zone transition. The bit passes
// through to the values untouched; it never alters conversion
// arithmetic.
func WithFold() Option {
	return func(cfg *config) { cfg.fold = true }
}

// WithFreq attaches frequency metadata to KindTimestamp values. The
// other kinds have nowhere to carry it and ignore it.
func WithFreq(freq period.Freq) Option {
	return func(cfg *config) { cfg.freq = freq }
}

// ToValues converts each UTC instant in stamps to a boxed civil value
// of the given kind as read in zone, nil meaning UTC. NaT elements box
// as a nil Value. The output always has the length of the input.
//
// Returns an error wrapping ErrOutputKind for an unrecognized kind,
// and one wrapping ErrDateZone for KindDate under a non-UTC zone.
func ToValues(
	stamps []int64, kind Kind, zone *tz.Zone, opts ...Option,
) ([]types.Value, error) {
	// Mirrors ints_to_pydatetime in
	// https://github.com/pandas-dev/pandas/blob/v2.2.3/pandas/_libs/tslibs/vectorized.pyx
	if kind > KindTimestamp {
		return nil, fmt.Errorf("%w: Kind(%d)", ErrOutputKind, uint8(kind))
	}
	if kind == KindDate && !zone.IsUTC() {
		return nil, fmt.Errorf("%w: got %v", ErrDateZone, zone)
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	res := zone.Resolver()
	out := make([]types.Value, len(stamps))
	for i, v := range stamps {
		if v == NaT {
			continue
		}
		local, era := res.Resolve(v)
		ct := civil.FromUnixNanos(local)
		switch kind {
		case KindDate:
			out[i] = types.NewDate(ct)
		case KindTime:
			out[i] = types.NewTime(ct, era, cfg.fold)
		case KindDateTime:
			out[i] = types.NewDateTime(ct, era, cfg.fold)
		default:
			out[i] = types.NewTimestamp(v, ct, zone, era, cfg.fold, cfg.freq)
		}
	}
	return out, nil
}
