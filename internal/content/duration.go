package content

import (
	"time"

	"github.com/pkg/errors"
)

// MonthLayout is the date format of experience records.
const MonthLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" date.
func ParseMonth(s string) (t time.Time, err error) {
	t, err = time.Parse(MonthLayout, s)
	if err != nil {
		err = errors.Wrapf(err, "bad month %q", s)
	}
	return t, err
}

// DurationMonths counts whole calendar months from start to end. An empty end
// means now. 2020-06 to 2021-12 is 18.
func DurationMonths(start, end string, now time.Time) (months int, err error) {
	var s, e time.Time
	if s, err = ParseMonth(start); err != nil {
		return 0, err
	}
	if end == "" {
		e = now
	} else if e, err = ParseMonth(end); err != nil {
		return 0, err
	}
	months = (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
	return months, nil
}
