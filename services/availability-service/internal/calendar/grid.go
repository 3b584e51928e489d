// Package calendar lays out arbitrary date-bearing items on a month grid for
// display. It knows nothing about rules or occurrences and can back any
// day-indexed calendar rendering.
package calendar

import (
	"strings"
	"time"
)

// Item is anything spanning a start and end instant that can be placed on
// the grid.
type Item interface {
	StartAt() time.Time
	EndAt() time.Time
}

// Day is one grid cell. Cells padding out the first and last week carry a
// zero Date and InMonth=false.
type Day struct {
	Day     int
	Date    time.Time
	InMonth bool
	IsToday bool
	Items   []Item
}

type Week struct {
	Days []Day
}

type Month struct {
	Year      int
	Month     time.Month
	MonthName string
	Weeks     []Week
}

// MonthGrid returns the Monday-first week layout of a month: a list of
// 7-element weeks holding day numbers, with 0 for cells belonging to
// adjacent months.
func MonthGrid(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Monday-first column index of the 1st.
	col := (int(first.Weekday()) + 6) % 7

	var weeks [][7]int
	week := [7]int{}
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col != 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthBounds returns datetime bounds for a month view with a one-week
// buffer on each side, covering spillover cells from adjacent months.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -7)
	end := last.AddDate(0, 0, 7)
	return start, endOfDay(end)
}

// ItemsForDay filters items overlapping the given date. An item overlaps a
// day if it starts before the day ends and ends after the day starts.
func ItemsForDay(items []Item, day time.Time) []Item {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := endOfDay(dayStart)

	var out []Item
	for _, item := range items {
		if !item.StartAt().After(dayEnd) && !item.EndAt().Before(dayStart) {
			out = append(out, item)
		}
	}
	return out
}

// BuildMonth assembles the complete month view, bucketing items into day
// cells. today controls the IsToday flag and is compared by calendar date.
func BuildMonth(year int, month time.Month, items []Item, today time.Time) Month {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var weeks []Week
	for _, row := range MonthGrid(year, month) {
		days := make([]Day, 0, 7)
		for _, dayNum := range row {
			if dayNum == 0 {
				days = append(days, Day{})
				continue
			}
			date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
			days = append(days, Day{
				Day:     dayNum,
				Date:    date,
				InMonth: true,
				IsToday: date.Equal(todayDate),
				Items:   ItemsForDay(items, date),
			})
		}
		weeks = append(weeks, Week{Days: days})
	}

	return Month{
		Year:      year,
		Month:     month,
		MonthName: month.String(),
		Weeks:     weeks,
	}
}

func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// DisplayLabel picks a short label for an availability entry: the first line
// of its notes when reasonably short, else the primary program or buildout
// title, else the raw start time.
func DisplayLabel(notes, programTitle string, start time.Time) string {
	if notes != "" {
		firstLine := notes
		if idx := strings.IndexByte(notes, '\n'); idx >= 0 {
			firstLine = notes[:idx]
		}
		firstLine = strings.TrimSpace(firstLine)
		if firstLine != "" && len(firstLine) <= 50 {
			return firstLine
		}
	}
	if programTitle != "" {
		return programTitle
	}
	return start.Format("3:04 PM")
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
