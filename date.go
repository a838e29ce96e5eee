package watchface

import "time"

// MonthDay formats the month and day of t, e.g. "Jan 5" or "Dec 28".
// The day carries no leading zero.
func MonthDay(t time.Time) string {
	return t.Format("Jan 2")
}

// Weekday formats the abbreviated weekday of t, e.g. "Mon".
func Weekday(t time.Time) string {
	return t.Format("Mon")
}
