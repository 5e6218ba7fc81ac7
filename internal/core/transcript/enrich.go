package transcript

import (
	"strconv"
	"time"
)

// Enrich derives the calendar fields for one canonical instant. Pure; the
// input is already a valid instant so there is no failure mode
func Enrich(ts time.Time) Calendar {
	return Calendar{
		Date:     ts.Format("2006-01-02"),
		Year:     ts.Year(),
		MonthNum: int(ts.Month()),
		Month:    ts.Month().String(),
		Day:      ts.Day(),
		Weekday:  ts.Weekday().String(),
		Hour:     ts.Hour(),
		Minute:   ts.Minute(),
		Period:   Period(ts.Hour()),
	}
}

// Period returns the one-hour bucket label for hour h. Hour 23 wraps to
// "23-00" rather than "23-24"
func Period(h int) string {
	if h == 23 {
		return "23-00"
	}
	return strconv.Itoa(h) + "-" + strconv.Itoa(h+1)
}
