package types

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/stampede/stamp/civil"
)

func TestTime(t *testing.T) {
	t.Parallel()

	clock := civil.Time{
		Year: 2023, Month: time.March, Day: 10,
		Hour: 12, Minute: 30, Second: 45, Micro: 123456, Nano: 789,
	}

	for _, tc := range []struct {
		name string
		ct   civil.Time
		era  *time.Location
		fold bool
		str  string
	}{
		{
			name: "nil_era",
			ct:   clock,
			str:  "12:30:45.123456789+00:00",
		},
		{
			name: "utc",
			ct:   clock,
			era:  time.UTC,
			str:  "12:30:45.123456789+00:00",
		},
		{
			name: "eastern",
			ct:   clock,
			era:  time.FixedZone("EST", -5*60*60),
			str:  "12:30:45.123456789-05:00",
		},
		{
			name: "fold",
			ct:   civil.Time{Hour: 1, Minute: 30},
			era:  time.FixedZone("CET", 60*60),
			fold: true,
			str:  "01:30:00+01:00",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			clk := NewTime(tc.ct, tc.era, tc.fold)
			a.Equal(tc.str, clk.String())
			a.Equal(tc.fold, clk.Fold())
			a.Equal(clk.Time, clk.GoTime())

			// The reading sits on the reference date.
			a.Equal(0, clk.Year())
			a.Equal(time.January, clk.Month())
			a.Equal(1, clk.Day())
			a.Equal(tc.ct.Hour, clk.Hour())
			a.Equal(tc.ct.Micro*1000+tc.ct.Nano, clk.Nanosecond())

			json, err := clk.MarshalJSON()
			r.NoError(err)
			a.Equal(fmt.Sprintf("%q", tc.str), string(json))
			clk2 := new(Time)
			r.NoError(clk2.UnmarshalJSON(json))
			a.Equal(clk.String(), clk2.String())
			a.False(clk2.Fold(), "fold does not serialize")
		})
	}
}

func TestTimeInvalidJSON(t *testing.T) {
	t.Parallel()
	clk := new(Time)
	err := clk.UnmarshalJSON([]byte(`"25 o'clock"`))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValue)
}

func TestTimeCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	noon := NewTime(civil.Time{Hour: 12}, time.UTC, false)
	baker := NewTime(civil.Time{Hour: 13}, time.FixedZone("", 60*60), false)
	later := NewTime(civil.Time{Hour: 13}, time.UTC, false)

	// 13:00+01:00 and 12:00+00:00 read differently but adjust equal;
	// the easterly offset sorts first.
	a.Equal(1, noon.Compare(baker))
	a.Equal(-1, baker.Compare(noon))
	a.Equal(0, noon.Compare(NewTime(civil.Time{Hour: 12}, time.UTC, true)))
	a.Equal(-1, noon.Compare(later))
	a.Equal(1, later.Compare(noon))
}
