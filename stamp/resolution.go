package stamp

import (
	"github.com/theory/stampede/stamp/civil"
	"github.com/theory/stampede/stamp/period"
	"github.com/theory/stampede/stamp/tz"
)

// Resolution is the finest clock unit a batch of readings actually
// uses. Coarser units order before finer ones.
type Resolution uint8

const (
	// ResDay means every reading sits on a civil midnight.
	ResDay Resolution = iota
	// ResHour means readings stop at whole hours.
	ResHour
	// ResMinute means readings stop at whole minutes.
	ResMinute
	// ResSecond means readings stop at whole seconds.
	ResSecond
	// ResMilli means sub-second readings stop at whole milliseconds.
	ResMilli
	// ResMicro means sub-second readings stop at whole microseconds.
	ResMicro
	// ResNano means at least one reading uses the full precision.
	ResNano
)

// String returns the name of the unit.
func (r Resolution) String() string {
	switch r {
	case ResDay:
		return "day"
	case ResHour:
		return "hour"
	case ResMinute:
		return "minute"
	case ResSecond:
		return "second"
	case ResMilli:
		return "millisecond"
	case ResMicro:
		return "microsecond"
	case ResNano:
		return "nanosecond"
	default:
		return "unknown"
	}
}

// Freq returns the period frequency that spans one unit of the
// resolution, ResDay mapping to period.Daily and so on down to
// period.Nanosecondly.
func (r Resolution) Freq() period.Freq {
	switch r {
	case ResDay:
		return period.Daily
	case ResHour:
		return period.Hourly
	case ResMinute:
		return period.Minutely
	case ResSecond:
		return period.Secondly
	case ResMilli:
		return period.Millisecondly
	case ResMicro:
		return period.Microsecondly
	default:
		return period.Nanosecondly
	}
}

// InferResolution reports the finest clock unit in use across the
// local readings of stamps in zone, nil meaning UTC. The answer can
// only grow finer as elements are considered, so it is the maximum of
// each element's own resolution. NaT elements are skipped, and the
// empty array reports ResDay. Note that the zone matters: instants on
// UTC midnights read with sub-hour fields in a half-hour-offset zone.
func InferResolution(stamps []int64, zone *tz.Zone) Resolution {
	// Mirrors get_resolution in
	// https://github.com/pandas-dev/pandas/blob/v2.2.3/pandas/_libs/tslibs/vectorized.pyx
	res := zone.Resolver()
	finest := ResDay
	for _, v := range stamps {
		if v == NaT {
			continue
		}
		cur := resolutionOf(civil.FromUnixNanos(res.Local(v)))
		if cur > finest {
			finest = cur
			if finest == ResNano {
				break
			}
		}
	}
	return finest
}

// resolutionOf reports the finest unit a single reading uses.
func resolutionOf(ct civil.Time) Resolution {
	switch {
	case ct.Nano != 0:
		return ResNano
	case ct.Micro != 0:
		if ct.Micro%1000 == 0 {
			return ResMilli
		}
		return ResMicro
	case ct.Second != 0:
		return ResSecond
	case ct.Minute != 0:
		return ResMinute
	case ct.Hour != 0:
		return ResHour
	default:
		return ResDay
	}
}
