package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/feasibility"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
)

func TestFitsInGap(t *testing.T) {
	gaps := []availability.Interval{
		{Start: availability.FromClock(9, 0), End: availability.FromClock(12, 0)},
		{Start: availability.FromClock(13, 0), End: availability.FromClock(17, 0)},
	}

	cases := []struct {
		name  string
		start availability.TimeOfDay
		end   availability.TimeOfDay
		want  bool
	}{
		{"inside first gap", availability.FromClock(9, 30), availability.FromClock(10, 30), true},
		{"exact gap", availability.FromClock(13, 0), availability.FromClock(17, 0), true},
		{"spans gap boundary", availability.FromClock(11, 0), availability.FromClock(13, 30), false},
		{"outside all gaps", availability.FromClock(7, 0), availability.FromClock(8, 0), false},
		{"ends past gap", availability.FromClock(16, 0), availability.FromClock(18, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fitsInGap(gaps, availability.Interval{Start: tc.start, End: tc.end})
			if got != tc.want {
				t.Fatalf("fitsInGap(%v-%v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestSharedExceptionsLastWins(t *testing.T) {
	date := model.NewDate(2026, time.April, 6)
	rules := []model.Rule{
		{ID: "r1", Exceptions: []model.RuleException{{ID: "e1", RuleID: "r1", Date: date, Type: model.ExceptionSkip}}},
		{ID: "r2", Exceptions: []model.RuleException{{ID: "e2", RuleID: "r2", Date: date, Type: model.ExceptionTimeOverride}}},
	}

	exceptions := sharedExceptions(rules)
	if len(exceptions) != 1 {
		t.Fatalf("expected 1 shared exception, got %d", len(exceptions))
	}
	if exceptions[date].ID != "e2" {
		t.Fatalf("expected later rule's exception to win, got %s", exceptions[date].ID)
	}
}

func TestDayViewEmptySlices(t *testing.T) {
	view := dayView(feasibility.DayFeasibility{
		Date:         model.NewDate(2026, time.April, 6),
		ContractorID: "c1",
	})
	if view.Bookings == nil || view.FeasiblePrograms == nil || view.SummaryRanges == nil {
		t.Fatal("expected empty slices instead of nil in day view")
	}
	if view.Date != "2026-04-06" {
		t.Fatalf("unexpected date: %s", view.Date)
	}
}

func TestParseDateRange(t *testing.T) {
	cases := []struct {
		name string
		url  string
		ok   bool
	}{
		{"valid", "/x?from=2026-04-01&to=2026-04-30", true},
		{"same day", "/x?from=2026-04-01&to=2026-04-01", true},
		{"inverted", "/x?from=2026-04-30&to=2026-04-01", false},
		{"missing to", "/x?from=2026-04-01", false},
		{"bad format", "/x?from=04/01/2026&to=2026-04-30", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tc.url, nil)
			_, _, ok := parseDateRange(w, r)
			if ok != tc.ok {
				t.Fatalf("parseDateRange ok = %v, want %v (status %d)", ok, tc.ok, w.Code)
			}
		})
	}
}

func TestParseYearMonth(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/x?year=2026&month=4", nil)
	year, month, ok := parseYearMonth(w, r)
	if !ok || year != 2026 || month != time.April {
		t.Fatalf("parseYearMonth = (%d, %v, %v)", year, month, ok)
	}

	for _, url := range []string{"/x?year=2026&month=13", "/x?year=2026&month=0", "/x?month=4", "/x?year=abc&month=4"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", url, nil)
		if _, _, ok := parseYearMonth(w, r); ok {
			t.Fatalf("expected rejection for %s", url)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		if !isTruthy(v) {
			t.Fatalf("expected %q to be truthy", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off", "nope"} {
		if isTruthy(v) {
			t.Fatalf("expected %q to be falsy", v)
		}
	}
}
