package stamp

import (
	"github.com/theory/stampede/stamp/civil"
	"github.com/theory/stampede/stamp/period"
	"github.com/theory/stampede/stamp/tz"
)

// ToPeriodOrdinals converts each instant to the ordinal of the freq
// span holding its local reading in zone, nil meaning UTC. The zone
// matters: an instant late in a UTC day can fall in the prior local
// day, and so the prior daily or coarser span. NaT elements pass
// through. Returns an error wrapping period.ErrFreq for an
// unrecognized frequency, before any conversion work.
func ToPeriodOrdinals(
	stamps []int64, freq period.Freq, zone *tz.Zone,
) ([]int64, error) {
	// Mirrors dt64arr_to_periodarr in
	// https://github.com/pandas-dev/pandas/blob/v2.2.3/pandas/_libs/tslibs/vectorized.pyx
	if err := freq.Validate(); err != nil {
		return nil, err
	}

	res := zone.Resolver()
	out := make([]int64, len(stamps))
	for i, v := range stamps {
		if v == NaT {
			out[i] = NaT
			continue
		}
		ord, err := period.Ordinal(civil.FromUnixNanos(res.Local(v)), freq)
		if err != nil {
			return nil, err
		}
		out[i] = ord
	}
	return out, nil
}
