package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/stampede/stamp/civil"
)

func TestLocalizeExact(t *testing.T) {
	t.Parallel()

	t.Run("utc", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)
		res := UTC.Resolver()
		utc, err := res.Localize(42, AmbiguousError, NonexistentError)
		a.NoError(err)
		a.Equal(int64(42), utc)
	})

	t.Run("fixed", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)
		res := FixedOffset(civil.Hour).Resolver()
		utc, err := res.Localize(civil.Hour+42, AmbiguousError, NonexistentError)
		a.NoError(err)
		a.Equal(int64(42), utc)
	})

	t.Run("host", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)
		res := Local.Resolver()
		// Mid-January readings are unambiguous in every populated zone.
		utc := time.Date(2021, 1, 15, 12, 0, 0, 0, time.UTC).UnixNano()
		got, err := res.Localize(res.Local(utc), AmbiguousError, NonexistentError)
		a.NoError(err)
		a.Equal(utc, got)
	})
}

func TestLocalizeTable(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	zone, err := NewTable(
		[]int64{100, 200, 300},
		[]int64{0, 3600 * civil.Second, 7200 * civil.Second},
	)
	r.NoError(err)
	res := zone.Resolver()

	// Unique readings invert the forward conversion exactly.
	for _, utc := range []int64{50, 100, 150, 199, 250, 350} {
		got, err := res.Localize(res.Local(utc), AmbiguousError, NonexistentError)
		r.NoError(err)
		r.Equal(utc, got)
	}
}

func TestLocalizeFold(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// The offset falls from 50ns to zero at UTC 100, so wall readings
	// 100 through 149 occur twice: once in the first era at wall-50
	// and once in the second at wall.
	zone, err := NewTable([]int64{0, 100}, []int64{50, 0})
	r.NoError(err)
	res := zone.Resolver()

	for _, tc := range []struct {
		name   string
		policy Ambiguous
		exp    int64
		err    string
	}{
		{name: "earliest", policy: AmbiguousEarliest, exp: 70},
		{name: "latest", policy: AmbiguousLatest, exp: 120},
		{name: "nat", policy: AmbiguousNaT, exp: civil.NaT},
		{
			name:   "error",
			policy: AmbiguousError,
			err:    "ambiguous time: wall instant 120 occurs 2 times",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			utc, err := res.Localize(120, tc.policy, NonexistentError)
			if tc.err != "" {
				a.EqualError(err, tc.err)
				a.ErrorIs(err, ErrAmbiguousTime)
				return
			}
			a.NoError(err)
			a.Equal(tc.exp, utc)
		})
	}

	t.Run("bounds", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)

		// The last unique reading before the fold.
		utc, err := res.Localize(99, AmbiguousError, NonexistentError)
		a.NoError(err)
		a.Equal(int64(49), utc)

		// The first unique reading after it.
		utc, err = res.Localize(150, AmbiguousError, NonexistentError)
		a.NoError(err)
		a.Equal(int64(150), utc)
	})
}

func TestLocalizeGap(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// The offset rises from zero to 50ns at UTC 100, so wall readings
	// 100 through 149 never occur.
	zone, err := NewTable([]int64{0, 100}, []int64{0, 50})
	r.NoError(err)
	res := zone.Resolver()

	for _, tc := range []struct {
		name   string
		policy Nonexistent
		exp    int64
		err    string
	}{
		{name: "shift_forward", policy: NonexistentShiftForward, exp: 100},
		{name: "shift_backward", policy: NonexistentShiftBackward, exp: 99},
		{name: "nat", policy: NonexistentNaT, exp: civil.NaT},
		{
			name:   "error",
			policy: NonexistentError,
			err:    "nonexistent time: wall instant 120 was skipped by a transition",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			utc, err := res.Localize(120, AmbiguousError, tc.policy)
			if tc.err != "" {
				a.EqualError(err, tc.err)
				a.ErrorIs(err, ErrNonexistentTime)
				return
			}
			a.NoError(err)
			a.Equal(tc.exp, utc)
		})
	}

	t.Run("bounds", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)

		// The readings on each side of the gap exist.
		utc, err := res.Localize(99, AmbiguousError, NonexistentError)
		a.NoError(err)
		a.Equal(int64(99), utc)

		utc, err = res.Localize(150, AmbiguousError, NonexistentError)
		a.NoError(err)
		a.Equal(int64(100), utc)
	})
}

func TestLocalizeRealZone(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	loc, err := time.LoadLocation("America/New_York")
	r.NoError(err)
	res := FromLocation(loc).Resolver()

	// 2021-11-07 01:30 Eastern occurred twice: 05:30 UTC under EDT and
	// 06:30 UTC under EST.
	wall := time.Date(2021, 11, 7, 1, 30, 0, 0, time.UTC).UnixNano()
	first := time.Date(2021, 11, 7, 5, 30, 0, 0, time.UTC).UnixNano()
	second := time.Date(2021, 11, 7, 6, 30, 0, 0, time.UTC).UnixNano()

	utc, err := res.Localize(wall, AmbiguousEarliest, NonexistentError)
	a.NoError(err)
	a.Equal(first, utc)

	utc, err = res.Localize(wall, AmbiguousLatest, NonexistentError)
	a.NoError(err)
	a.Equal(second, utc)

	// 2021-03-14 02:30 Eastern never happened; the clock jumped from
	// 02:00 to 03:00 at 07:00 UTC.
	skipped := time.Date(2021, 3, 14, 2, 30, 0, 0, time.UTC).UnixNano()
	boundary := time.Date(2021, 3, 14, 7, 0, 0, 0, time.UTC).UnixNano()

	utc, err = res.Localize(skipped, AmbiguousError, NonexistentShiftForward)
	a.NoError(err)
	a.Equal(boundary, utc)

	utc, err = res.Localize(skipped, AmbiguousError, NonexistentShiftBackward)
	a.NoError(err)
	a.Equal(boundary-1, utc)

	_, err = res.Localize(skipped, AmbiguousError, NonexistentError)
	a.ErrorIs(err, ErrNonexistentTime)
}
