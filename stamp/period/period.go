// Package period numbers regular spans of civil time.
//
// A frequency identifies a span kind: years ending in a given month,
// quarters of such years, months, weeks ending on a given weekday,
// business days, days, or a clock subdivision down to nanoseconds. The
// ordinal of a civil reading counts the spans between it and the span
// holding the Unix epoch, negative for earlier spans. Both the numeric
// frequency codes and the ordinal arithmetic duplicate the pandas
// period engine, so ordinals computed here index directly into its
// period arrays.
package period

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/theory/stampede/stamp/civil"
)

// ErrFreq wraps errors returned for unrecognized frequency codes.
var ErrFreq = errors.New("frequency")

// Freq identifies a period frequency. Codes group by thousands: the
// annual codes carry the fiscal year-end month and the weekly codes
// the weekday the week ends on.
type Freq int

// The frequency codes.
const (
	// Annual spans end in December; AnnualJan through AnnualNov end in
	// the named month, so AnnualJun years run July through June.
	Annual    Freq = 1000
	AnnualJan Freq = 1001
	AnnualFeb Freq = 1002
	AnnualMar Freq = 1003
	AnnualApr Freq = 1004
	AnnualMay Freq = 1005
	AnnualJun Freq = 1006
	AnnualJul Freq = 1007
	AnnualAug Freq = 1008
	AnnualSep Freq = 1009
	AnnualOct Freq = 1010
	AnnualNov Freq = 1011

	// Quarterly spans quarter the annual spans of the matching anchor.
	Quarterly    Freq = 2000
	QuarterlyJan Freq = 2001
	QuarterlyFeb Freq = 2002
	QuarterlyMar Freq = 2003
	QuarterlyApr Freq = 2004
	QuarterlyMay Freq = 2005
	QuarterlyJun Freq = 2006
	QuarterlyJul Freq = 2007
	QuarterlyAug Freq = 2008
	QuarterlySep Freq = 2009
	QuarterlyOct Freq = 2010
	QuarterlyNov Freq = 2011

	Monthly Freq = 3000

	// Weekly spans end on Sunday; WeeklyMon through WeeklySat end on
	// the named weekday.
	Weekly    Freq = 4000
	WeeklyMon Freq = 4001
	WeeklyTue Freq = 4002
	WeeklyWed Freq = 4003
	WeeklyThu Freq = 4004
	WeeklyFri Freq = 4005
	WeeklySat Freq = 4006

	// BusinessDay numbers weekdays only; Saturday and Sunday readings
	// take the ordinal of the following Monday.
	BusinessDay Freq = 5000

	Daily         Freq = 6000
	Hourly        Freq = 7000
	Minutely      Freq = 8000
	Secondly      Freq = 9000
	Millisecondly Freq = 10000
	Microsecondly Freq = 11000
	Nanosecondly  Freq = 12000
)

// Group returns the frequency's thousands group, the unanchored code
// that identifies its span kind: Weekly for WeeklyWed, Annual for
// AnnualSep, and every code for itself when it has no anchor.
func (f Freq) Group() Freq {
	if f < 0 {
		return f
	}
	return (f / 1000) * 1000
}

// anchor returns the anchor offset within the frequency's group: the
// fiscal year-end month for annual and quarterly codes, the week-end
// weekday for weekly ones.
func (f Freq) anchor() int {
	return int(f % 1000)
}

// valid reports whether the code names a real frequency: a known group
// with an anchor in range, and no anchor at all for the unanchored
// groups.
func (f Freq) valid() bool {
	anchor := f.anchor()
	switch f.Group() {
	case Annual, Quarterly:
		return anchor <= 11
	case Weekly:
		return anchor <= 6
	case Monthly, BusinessDay, Daily, Hourly, Minutely, Secondly,
		Millisecondly, Microsecondly, Nanosecondly:
		return anchor == 0
	default:
		return false
	}
}

//nolint:gochecknoglobals
var (
	monthAbbr = [12]string{
		"DEC", "JAN", "FEB", "MAR", "APR", "MAY",
		"JUN", "JUL", "AUG", "SEP", "OCT", "NOV",
	}
	dayAbbr = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
)

// String returns the conventional short code for the frequency, such
// as "M", "D", "A-SEP", or "W-TUE".
func (f Freq) String() string {
	if !f.valid() {
		return fmt.Sprintf("Freq(%d)", int(f))
	}
	switch f.Group() {
	case Annual:
		return "A-" + monthAbbr[f.anchor()]
	case Quarterly:
		return "Q-" + monthAbbr[f.anchor()]
	case Monthly:
		return "M"
	case Weekly:
		return "W-" + dayAbbr[f.anchor()]
	case BusinessDay:
		return "B"
	case Daily:
		return "D"
	case Hourly:
		return "H"
	case Minutely:
		return "T"
	case Secondly:
		return "S"
	case Millisecondly:
		return "L"
	case Microsecondly:
		return "U"
	case Nanosecondly:
		return "N"
	default:
		return fmt.Sprintf("Freq(%d)", int(f))
	}
}

// Validate returns an error wrapping ErrFreq if f is not a recognized
// frequency code.
func (f Freq) Validate() error {
	if f.valid() {
		return nil
	}
	return fmt.Errorf("%w: unrecognized code %d", ErrFreq, int(f))
}

// Parse returns the frequency named by its conventional short code,
// recognized case-insensitively. The unanchored annual, quarterly, and
// weekly codes take the pandas defaults, so "A" parses as A-DEC, "Q"
// as Q-DEC, and "W" as W-SUN, and "Y" is a synonym for "A". The minute
// and sub-second codes also parse from their unit names "MIN", "MS",
// "US", and "NS". Returns an error wrapping ErrFreq for anything else.
func Parse(s string) (Freq, error) {
	code, anchor, anchored := strings.Cut(strings.ToUpper(s), "-")
	switch code {
	case "A", "Y":
		return parseAnchor(Annual, monthAbbr[:], s, anchor, anchored)
	case "Q":
		return parseAnchor(Quarterly, monthAbbr[:], s, anchor, anchored)
	case "W":
		return parseAnchor(Weekly, dayAbbr[:], s, anchor, anchored)
	}

	if !anchored {
		switch code {
		case "M":
			return Monthly, nil
		case "B":
			return BusinessDay, nil
		case "D":
			return Daily, nil
		case "H":
			return Hourly, nil
		case "T", "MIN":
			return Minutely, nil
		case "S":
			return Secondly, nil
		case "L", "MS":
			return Millisecondly, nil
		case "U", "US":
			return Microsecondly, nil
		case "N", "NS":
			return Nanosecondly, nil
		}
	}
	return 0, fmt.Errorf("%w: Cannot parse %q", ErrFreq, s)
}

// parseAnchor resolves the anchor suffix of an anchored group code
// against its abbreviation table.
func parseAnchor(
	group Freq, abbrs []string, s, anchor string, anchored bool,
) (Freq, error) {
	if !anchored {
		return group, nil
	}
	if idx := slices.Index(abbrs, anchor); idx >= 0 {
		return group + Freq(idx), nil
	}
	return 0, fmt.Errorf("%w: Cannot parse %q", ErrFreq, s)
}

// Ordinal returns the number of the frequency's span that holds the
// civil reading, counting spans since the one holding the Unix epoch.
// Ordinals before the epoch are negative; every division floors, so
// the count stays continuous across the epoch. Returns an error
// wrapping ErrFreq for an unrecognized code.
//
//nolint:cyclop,funlen
func Ordinal(ct civil.Time, f Freq) (int64, error) {
	// Mirrors get_period_ordinal in
	// https://github.com/pandas-dev/pandas/blob/v2.2.3/pandas/_libs/tslibs/period.pyx
	if err := f.Validate(); err != nil {
		return 0, err
	}
	month := int(ct.Month)

	switch f.Group() {
	case Annual:
		fmonth := f.anchor()
		if fmonth == 0 {
			fmonth = 12
		}
		if month-fmonth <= 0 {
			return int64(ct.Year - 1970), nil
		}
		return int64(ct.Year - 1970 + 1), nil

	case Quarterly:
		fmonth := f.anchor()
		if fmonth == 0 {
			fmonth = 12
		}
		mdiff := month - fmonth
		if mdiff < 0 {
			mdiff += 12
		}
		if month >= fmonth {
			mdiff += 12
		}
		return int64(ct.Year-1970)*4 + int64(mdiff-1)/3, nil

	case Monthly:
		return int64(ct.Year-1970)*12 + int64(month) - 1, nil
	}

	unixDate := ct.UnixDate()

	switch f.Group() {
	case Weekly:
		return civil.FloorDiv(unixDate+3-int64(f.anchor()), 7), nil

	case BusinessDay:
		// Count weeks ending Sunday since the epoch week, then the
		// weekday within the week, 1 through 7 from Monday. Weekend
		// readings collapse onto the following Monday.
		weeks := civil.FloorDiv(unixDate+3, 7)
		delta := civil.FloorMod(unixDate+3, 7) + 1
		if delta <= 5 {
			return 5*weeks + delta - 4, nil
		}
		return 5*weeks + 2, nil

	case Daily:
		return unixDate, nil

	case Hourly:
		return unixDate*24 + int64(ct.Hour), nil

	case Minutely:
		return unixDate*1440 + int64(ct.Hour)*60 + int64(ct.Minute), nil
	}

	secs := unixDate*86400 +
		int64(ct.Hour)*3600 + int64(ct.Minute)*60 + int64(ct.Second)

	switch f.Group() {
	case Secondly:
		return secs, nil
	case Millisecondly:
		return secs*1_000 + int64(ct.Micro)/1_000, nil
	case Microsecondly:
		return secs*1_000_000 + int64(ct.Micro), nil
	default: // Nanosecondly
		return secs*1_000_000_000 + int64(ct.Micro)*1_000 + int64(ct.Nano), nil
	}
}
