package calendar

import (
	"testing"
	"time"
)

type span struct {
	start time.Time
	end   time.Time
}

func (s span) StartAt() time.Time { return s.start }
func (s span) EndAt() time.Time   { return s.end }

func TestMonthGrid(t *testing.T) {
	// March 2026 starts on a Sunday and has 31 days.
	weeks := MonthGrid(2026, time.March)
	if len(weeks) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(weeks))
	}
	// Monday-first: the 1st lands in the last column of week one.
	first := weeks[0]
	for col := 0; col < 6; col++ {
		if first[col] != 0 {
			t.Errorf("week 0 col %d = %d, want padding 0", col, first[col])
		}
	}
	if first[6] != 1 {
		t.Errorf("week 0 col 6 = %d, want 1", first[6])
	}
	last := weeks[len(weeks)-1]
	if last[0] != 30 || last[1] != 31 {
		t.Errorf("last week starts %d,%d, want 30,31", last[0], last[1])
	}
}

func TestMonthGrid_FebruaryExact(t *testing.T) {
	// February 2027 starts on a Monday and has exactly 28 days: 4 full weeks.
	weeks := MonthGrid(2027, time.February)
	if len(weeks) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(weeks))
	}
	if weeks[0][0] != 1 || weeks[3][6] != 28 {
		t.Fatalf("grid corners = %d, %d", weeks[0][0], weeks[3][6])
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2026, time.March)
	if !start.Equal(time.Date(2026, time.February, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %s", start)
	}
	if end.Before(time.Date(2026, time.April, 7, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("end = %s", end)
	}
}

func TestItemsForDay(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	inDay := span{day.Add(9 * time.Hour), day.Add(12 * time.Hour)}
	crossesMidnight := span{day.Add(-2 * time.Hour), day.Add(1 * time.Hour)}
	dayBefore := span{day.Add(-10 * time.Hour), day.Add(-5 * time.Hour)}

	got := ItemsForDay([]Item{inDay, crossesMidnight, dayBefore}, day)
	if len(got) != 2 {
		t.Fatalf("expected 2 items overlapping the day, got %d", len(got))
	}
}

func TestBuildMonth(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	items := []Item{span{day.Add(9 * time.Hour), day.Add(12 * time.Hour)}}

	month := BuildMonth(2026, time.March, items, day)
	if month.MonthName != "March" {
		t.Errorf("month name = %q", month.MonthName)
	}

	var cell *Day
	for wi := range month.Weeks {
		for di := range month.Weeks[wi].Days {
			d := &month.Weeks[wi].Days[di]
			if d.InMonth && d.Day == 2 {
				cell = d
			}
		}
	}
	if cell == nil {
		t.Fatal("no cell for March 2")
	}
	if !cell.IsToday {
		t.Error("March 2 should be flagged as today")
	}
	if len(cell.Items) != 1 {
		t.Errorf("cell items = %d, want 1", len(cell.Items))
	}

	// Padding cells are empty and not in-month.
	pad := month.Weeks[0].Days[0]
	if pad.InMonth || pad.Day != 0 || len(pad.Items) != 0 {
		t.Errorf("padding cell = %+v", pad)
	}
}

func TestPrevNextMonth(t *testing.T) {
	if y, m := PrevMonth(2026, time.January); y != 2025 || m != time.December {
		t.Errorf("PrevMonth(Jan) = %d-%s", y, m)
	}
	if y, m := PrevMonth(2026, time.July); y != 2026 || m != time.June {
		t.Errorf("PrevMonth(Jul) = %d-%s", y, m)
	}
	if y, m := NextMonth(2026, time.December); y != 2027 || m != time.January {
		t.Errorf("NextMonth(Dec) = %d-%s", y, m)
	}
	if y, m := NextMonth(2026, time.July); y != 2026 || m != time.August {
		t.Errorf("NextMonth(Jul) = %d-%s", y, m)
	}
}

func TestDisplayLabel(t *testing.T) {
	start := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		notes   string
		program string
		want    string
	}{
		{name: "short first line of notes wins", notes: "Morning block\ndetails here", program: "STEM Club", want: "Morning block"},
		{name: "long first line falls through", notes: "this note first line is definitely much longer than fifty characters total", program: "STEM Club", want: "STEM Club"},
		{name: "program title fallback", notes: "", program: "STEM Club", want: "STEM Club"},
		{name: "start time last resort", notes: "", program: "", want: "9:30 AM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayLabel(tc.notes, tc.program, start); got != tc.want {
				t.Errorf("DisplayLabel = %q, want %q", got, tc.want)
			}
		})
	}
}
