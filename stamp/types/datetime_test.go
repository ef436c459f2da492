package types

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/stampede/stamp/civil"
)

func TestDateTime(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		ct   civil.Time
		era  *time.Location
		fold bool
		str  string
		utc  int64
	}{
		{
			name: "epoch",
			ct:   civil.Time{Year: 1970, Month: time.January, Day: 1},
			era:  time.UTC,
			str:  "1970-01-01 00:00:00+00:00",
			utc:  0,
		},
		{
			name: "nil_era",
			ct:   civil.Time{Year: 1970, Month: time.January, Day: 1, Hour: 1},
			str:  "1970-01-01 01:00:00+00:00",
			utc:  civil.Hour,
		},
		{
			name: "eastern",
			ct: civil.Time{
				Year: 2021, Month: time.January, Day: 1,
				Hour: 7, Micro: 500000,
			},
			era: time.FixedZone("EST", -5*60*60),
			str: "2021-01-01 07:00:00.5-05:00",
			utc: time.Date(2021, 1, 1, 12, 0, 0, 500000000, time.UTC).UnixNano(),
		},
		{
			name: "fold_second_pass",
			ct:   civil.Time{Year: 2021, Month: time.November, Day: 7, Hour: 1, Minute: 30},
			era:  time.FixedZone("EST", -5*60*60),
			fold: true,
			str:  "2021-11-07 01:30:00-05:00",
			utc:  time.Date(2021, 11, 7, 6, 30, 0, 0, time.UTC).UnixNano(),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			dt := NewDateTime(tc.ct, tc.era, tc.fold)
			a.Equal(tc.str, dt.String())
			a.Equal(tc.fold, dt.Fold())
			a.Equal(dt.Time, dt.GoTime())

			// Pinning to the era offset preserves the instant.
			a.Equal(tc.utc, dt.UnixNano())

			json, err := dt.MarshalJSON()
			r.NoError(err)
			dt2 := new(DateTime)
			r.NoError(dt2.UnmarshalJSON(json))
			a.Equal(dt.String(), dt2.String())
			a.Equal(tc.utc, dt2.UnixNano())
		})
	}
}

func TestDateTimeInvalidJSON(t *testing.T) {
	t.Parallel()
	dt := new(DateTime)
	err := dt.UnmarshalJSON([]byte(`"2021-13-45"`))
	require.Error(t, err)
	require.EqualError(t, err, fmt.Sprintf(
		"value: Cannot parse %q as %q",
		"2021-13-45", dateTimeJSONFormat,
	))
	require.ErrorIs(t, err, ErrValue)
}

func TestDateTimeCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	est := time.FixedZone("EST", -5*60*60)
	dt := NewDateTime(civil.Time{Year: 2021, Month: time.June, Day: 1, Hour: 7}, est, false)
	noonUTC := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)

	a.Equal(0, dt.Compare(noonUTC))
	a.Equal(-1, dt.Compare(noonUTC.Add(time.Second)))
	a.Equal(1, dt.Compare(noonUTC.Add(-time.Second)))
}
