// Package arrowconv bridges stamp arrays to Apache Arrow columns.
//
// The stamp drivers mark missing elements with the NaT sentinel while
// Arrow marks them in a validity bitmap; these functions translate
// between the two. Columns convert whole: a null slot becomes NaT and
// vice versa, and every other slot carries the same instant on both
// sides.
package arrowconv

import (
	"errors"
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/theory/stampede/stamp/civil"
	"github.com/theory/stampede/stamp/tz"
)

var (
	// ErrRange wraps errors returned when a coarse-unit value scales
	// past the nanosecond range.
	ErrRange = errors.New("instant out of nanosecond range")

	// ErrUnit wraps errors returned for a time unit the column type
	// does not define.
	ErrUnit = errors.New("unsupported time unit")
)

// scale returns the nanoseconds per unit.
func scale(unit arrow.TimeUnit) (int64, error) {
	switch unit {
	case arrow.Second:
		return civil.Second, nil
	case arrow.Millisecond:
		return civil.Millisecond, nil
	case arrow.Microsecond:
		return civil.Microsecond, nil
	case arrow.Nanosecond:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnit, unit)
	}
}

// FromTimestamp converts an Arrow timestamp column of any time unit to
// an array of epoch nanoseconds. Null slots become NaT. Values the
// column's unit places outside the nanosecond range return an error
// wrapping ErrRange; a nanosecond column converts verbatim, its most
// negative value reading as NaT just as it does in stamp arrays.
func FromTimestamp(col *array.Timestamp) ([]int64, error) {
	typ := col.DataType().(*arrow.TimestampType)
	k, err := scale(typ.Unit)
	if err != nil {
		return nil, err
	}

	// A value scales iff it sits in [lo, hi]. The division truncates
	// toward zero, which rounds the negative bound up, keeping lo*k on
	// the NaT side of the sentinel.
	lo, hi := (math.MinInt64+1)/k, math.MaxInt64/k

	out := make([]int64, col.Len())
	for i := range out {
		if col.IsNull(i) {
			out[i] = civil.NaT
			continue
		}
		v := int64(col.Value(i))
		if k > 1 && (v < lo || v > hi) {
			return nil, fmt.Errorf(
				"%w: Cannot represent %v %v in nanoseconds", ErrRange, v, typ.Unit,
			)
		}
		out[i] = v * k
	}
	return out, nil
}

// ToTimestamp converts an array of epoch nanoseconds to an Arrow
// nanosecond timestamp column, NaT elements becoming null slots. The
// column type carries the zone's name; a nil zone produces a
// zone-naive column, matching the pandas convention that naive stamps
// read in UTC. The caller owns the returned column and must Release
// it.
func ToTimestamp(
	mem memory.Allocator, stamps []int64, zone *tz.Zone,
) *array.Timestamp {
	var name string
	if zone != nil {
		name = zone.String()
	}
	bld := array.NewTimestampBuilder(
		mem, &arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: name},
	)
	defer bld.Release()

	bld.Reserve(len(stamps))
	for _, v := range stamps {
		if v == civil.NaT {
			bld.AppendNull()
			continue
		}
		bld.Append(arrow.Timestamp(v))
	}
	return bld.NewTimestampArray()
}

// ToDate32 converts an array of epoch nanoseconds to an Arrow Date32
// column holding the calendar day each instant reads as in zone, nil
// meaning UTC, as days since the epoch. NaT elements become null
// slots. Every representable instant sits well inside the Date32
// range. The caller owns the returned column and must Release it.
func ToDate32(
	mem memory.Allocator, stamps []int64, zone *tz.Zone,
) *array.Date32 {
	bld := array.NewDate32Builder(mem)
	defer bld.Release()

	res := zone.Resolver()
	bld.Reserve(len(stamps))
	for _, v := range stamps {
		if v == civil.NaT {
			bld.AppendNull()
			continue
		}
		day := civil.FloorDiv(res.Local(v), civil.Day)
		bld.Append(arrow.Date32(day))
	}
	return bld.NewDate32Array()
}
