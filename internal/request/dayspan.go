package request

import "time"

const dateLayout = "2006-01-02"

// midnightUTC rebuilds t from its year/month/day components at UTC midnight.
// Dropping the wall clock and zone first is what keeps day arithmetic immune
// to DST boundaries shifting results by one day.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDays returns the inclusive calendar day count from start to end.
// A single-day span (start == end) counts as 1; an inverted span counts as 0.
func InclusiveDays(start, end time.Time) int {
	s := midnightUTC(start)
	e := midnightUTC(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s)/(24*time.Hour)) + 1
}

// MonthBucket returns the YYYY-MM prefix of t, the granularity the history
// filters group by.
func MonthBucket(t time.Time) string {
	return t.Format("2006-01")
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
