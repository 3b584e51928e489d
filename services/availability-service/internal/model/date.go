package model

import "time"

// DateLayout is the wire format for calendar dates throughout the service.
const DateLayout = "2006-01-02"

// NewDate builds a UTC-midnight date. All date-keyed maps in the engine rely
// on dates being normalized this way so time.Time values compare equal.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DateOnly truncates a timestamp to its UTC-midnight date.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return NewDate(u.Year(), u.Month(), u.Day())
}
