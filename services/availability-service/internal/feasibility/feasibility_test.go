package feasibility

import (
	"testing"
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
)

var day = model.NewDate(2026, time.March, 2) // a Monday

func nineToFive(id string) model.Rule {
	return model.Rule{
		ID:           id,
		Title:        "Office hours",
		ContractorID: "contractor-1",
		Kind:         model.RuleKindWeeklyRecurring,
		StartTime:    availability.FromClock(9, 0),
		EndTime:      availability.FromClock(17, 0),
		DateStart:    day.AddDate(0, 0, -7),
		DateEnd:      day.AddDate(0, 1, 0),
		Weekdays:     model.Weekdays{Monday: true},
		IsActive:     true,
	}
}

func TestComputeDay_BookingSubtraction(t *testing.T) {
	rules := []model.Rule{nineToFive("rule-1")}
	bookings := []model.Booking{
		{
			ID:             "booking-1",
			RuleID:         "rule-1",
			ProgramTitle:   "STEM Club",
			ChildFirstName: "Avery",
			Date:           day,
			StartTime:      availability.FromClock(12, 0),
			EndTime:        availability.FromClock(13, 0),
			Status:         model.BookingConfirmed,
		},
	}
	programs := []model.Program{
		{ID: "prog-short", Title: "Art Hour", SessionMinutes: 90},
		{ID: "prog-long", Title: "Full Day Intensive", SessionMinutes: 250},
	}

	result := ComputeDay("contractor-1", day, rules, bookings, programs, nil)

	if len(result.RuleWindows) != 1 || result.RuleWindows[0].Duration() != 480 {
		t.Fatalf("rule windows = %v, want single 480-minute window", result.RuleWindows)
	}

	wantGaps := []availability.Interval{
		{Start: availability.FromClock(9, 0), End: availability.FromClock(12, 0)},
		{Start: availability.FromClock(13, 0), End: availability.FromClock(17, 0)},
	}
	if len(result.FreeGaps) != 2 {
		t.Fatalf("free gaps = %v, want 2", result.FreeGaps)
	}
	total := 0
	for i, gap := range result.FreeGaps {
		if gap != wantGaps[i] {
			t.Errorf("gap %d = %v, want %v", i, gap, wantGaps[i])
		}
		total += gap.Duration()
	}
	if total != 420 {
		t.Errorf("total free minutes = %d, want 420", total)
	}

	if len(result.FeasiblePrograms) != 1 {
		t.Fatalf("feasible programs = %v, want only the 90-minute program", result.FeasiblePrograms)
	}
	fit := result.FeasiblePrograms[0]
	if fit.ProgramID != "prog-short" || !fit.FitsInGap || fit.DurationMinutes != 90 {
		t.Errorf("unexpected fit %+v", fit)
	}

	if len(result.Bookings) != 1 {
		t.Fatalf("booking details = %v", result.Bookings)
	}
	b := result.Bookings[0]
	if b.Program != "STEM Club" || b.Child != "Avery" || b.DurationMinutes != 60 {
		t.Errorf("unexpected booking detail %+v", b)
	}

	if len(result.SummaryRanges) != 1 || result.SummaryRanges[0] != "9a-5p" {
		t.Errorf("summary ranges = %v, want [9a-5p]", result.SummaryRanges)
	}
}

func TestComputeDay_CancelledBookingsIgnored(t *testing.T) {
	rules := []model.Rule{nineToFive("rule-1")}
	bookings := []model.Booking{
		{
			ID:        "booking-1",
			Date:      day,
			StartTime: availability.FromClock(10, 0),
			EndTime:   availability.FromClock(11, 0),
			Status:    model.BookingCancelled,
		},
	}

	result := ComputeDay("contractor-1", day, rules, bookings, nil, nil)
	if len(result.FreeGaps) != 1 || result.FreeGaps[0].Duration() != 480 {
		t.Fatalf("cancelled booking must not occupy time: gaps = %v", result.FreeGaps)
	}
	if len(result.Bookings) != 0 {
		t.Fatalf("cancelled booking listed in details: %v", result.Bookings)
	}
}

func TestComputeDay_MergesOverlappingRules(t *testing.T) {
	morning := nineToFive("rule-1")
	morning.EndTime = availability.FromClock(12, 0)
	afternoon := nineToFive("rule-2")
	afternoon.StartTime = availability.FromClock(11, 0)

	result := ComputeDay("contractor-1", day, []model.Rule{morning, afternoon}, nil, nil, nil)
	if len(result.RuleWindows) != 1 {
		t.Fatalf("overlapping rule windows not merged: %v", result.RuleWindows)
	}
	if result.RuleWindows[0].Start != availability.FromClock(9, 0) ||
		result.RuleWindows[0].End != availability.FromClock(17, 0) {
		t.Fatalf("merged window = %v", result.RuleWindows[0])
	}
}

func TestComputeDay_SkipExceptionRemovesWindow(t *testing.T) {
	rules := []model.Rule{nineToFive("rule-1")}
	exceptions := map[time.Time]model.RuleException{
		day: {RuleID: "rule-1", Date: day, Type: model.ExceptionSkip},
	}

	result := ComputeDay("contractor-1", day, rules, nil, nil, exceptions)
	if len(result.RuleWindows) != 0 {
		t.Fatalf("skip exception must remove the day's windows: %v", result.RuleWindows)
	}
}

func TestComputeDay_TimeOverrideSubstitutesWindow(t *testing.T) {
	rules := []model.Rule{nineToFive("rule-1")}
	exceptions := map[time.Time]model.RuleException{
		day: {
			RuleID:        "rule-1",
			Date:          day,
			Type:          model.ExceptionTimeOverride,
			OverrideStart: availability.FromClock(13, 0),
			OverrideEnd:   availability.FromClock(15, 0),
		},
	}

	result := ComputeDay("contractor-1", day, rules, nil, nil, exceptions)
	if len(result.RuleWindows) != 1 {
		t.Fatalf("rule windows = %v", result.RuleWindows)
	}
	w := result.RuleWindows[0]
	if w.Start != availability.FromClock(13, 0) || w.End != availability.FromClock(15, 0) {
		t.Fatalf("override window = %v", w)
	}
}

func TestComputeDay_WeekdayMismatchContributesNothing(t *testing.T) {
	rules := []model.Rule{nineToFive("rule-1")}
	tuesday := day.AddDate(0, 0, 1)

	result := ComputeDay("contractor-1", tuesday, rules, nil, nil, nil)
	if len(result.RuleWindows) != 0 {
		t.Fatalf("Monday-only rule applied on Tuesday: %v", result.RuleWindows)
	}
}

func TestSessionMinutes_Fallback(t *testing.T) {
	configured := model.Program{ID: "p1", SessionMinutes: 45}
	if got := SessionMinutes(configured); got != 45 {
		t.Errorf("SessionMinutes = %d, want 45", got)
	}
	missing := model.Program{ID: "p2"}
	if got := SessionMinutes(missing); got != DefaultSessionMinutes {
		t.Errorf("SessionMinutes fallback = %d, want %d", got, DefaultSessionMinutes)
	}
}

func TestComputeMonth(t *testing.T) {
	// A five-day DATE_RANGE rule inside March.
	rangeStart := model.NewDate(2026, time.March, 9)
	rule := model.Rule{
		ID:           "rule-camp",
		Title:        "Camp week",
		ContractorID: "contractor-1",
		Kind:         model.RuleKindDateRange,
		StartTime:    availability.FromClock(9, 0),
		EndTime:      availability.FromClock(15, 0),
		DateStart:    rangeStart,
		DateEnd:      rangeStart.AddDate(0, 0, 4),
		IsActive:     true,
	}

	result := ComputeMonth("contractor-1", 2026, time.March, []model.Rule{rule}, nil, nil)
	if len(result) != 5 {
		t.Fatalf("expected 5 dated entries, got %d", len(result))
	}
	for d := rangeStart; !d.After(rangeStart.AddDate(0, 0, 4)); d = d.AddDate(0, 0, 1) {
		entry, ok := result[d]
		if !ok {
			t.Fatalf("missing entry for %s", d.Format(model.DateLayout))
		}
		if len(entry.RuleWindows) != 1 {
			t.Errorf("%s has %d windows, want 1", d.Format(model.DateLayout), len(entry.RuleWindows))
		}
	}

	// Days outside the rule are absent, not empty.
	if _, ok := result[model.NewDate(2026, time.March, 1)]; ok {
		t.Error("day with no availability must be omitted")
	}
}

func TestComputeMonth_PerDayBookings(t *testing.T) {
	rule := nineToFive("rule-1")
	firstMonday := model.NewDate(2026, time.March, 2)
	secondMonday := firstMonday.AddDate(0, 0, 7)

	bookings := []model.Booking{
		{
			ID:        "booking-1",
			Date:      firstMonday,
			StartTime: availability.FromClock(9, 0),
			EndTime:   availability.FromClock(17, 0),
			Status:    model.BookingConfirmed,
		},
	}

	result := ComputeMonth("contractor-1", 2026, time.March, []model.Rule{rule}, bookings, nil)

	if got := result[firstMonday]; len(got.FreeGaps) != 0 {
		t.Errorf("fully booked Monday still has gaps: %v", got.FreeGaps)
	}
	if got := result[secondMonday]; len(got.FreeGaps) != 1 || got.FreeGaps[0].Duration() != 480 {
		t.Errorf("booking leaked across days: %v", got.FreeGaps)
	}
}
