// Package feasibility answers "which programs can still be booked" for a
// contractor-day: the union of active rule windows, minus pending and
// confirmed bookings, checked against each candidate program's session
// duration. Results are recomputed per call and never cached.
package feasibility

import (
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
)

// DefaultSessionMinutes is assumed for programs whose scheduling config is
// missing. A guessed answer beats refusing to answer here; parents still get
// a bookable calendar while the program is being configured.
const DefaultSessionMinutes = 60

// BookingDetail retains the display fields of a booking that occupies time.
type BookingDetail struct {
	ID              string                 `json:"id"`
	Start           availability.TimeOfDay `json:"start_time"`
	End             availability.TimeOfDay `json:"end_time"`
	Program         string                 `json:"program"`
	Child           string                 `json:"child"`
	DurationMinutes int                    `json:"duration_minutes"`
}

// ProgramFit marks a program as feasible on a day.
type ProgramFit struct {
	ProgramID       string `json:"program_id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	FitsInGap       bool   `json:"fits_in_gap"`
}

// DayFeasibility is the full availability picture for one contractor-day.
type DayFeasibility struct {
	Date             time.Time
	ContractorID     string
	RuleWindows      []availability.Interval
	Bookings         []BookingDetail
	FreeGaps         []availability.Interval
	FeasiblePrograms []ProgramFit
	SummaryRanges    []string
}

// SessionMinutes resolves a program's required duration, falling back to
// DefaultSessionMinutes when the scheduling config is absent.
func SessionMinutes(p model.Program) int {
	if p.SessionMinutes > 0 {
		return p.SessionMinutes
	}
	return DefaultSessionMinutes
}

// ComputeDay computes feasibility for a single day.
//
// The exceptions map is keyed by date across all rules: a SKIP exception on
// the target date removes the contribution of every rule visiting it, and a
// TIME_OVERRIDE substitutes its window likewise. Callers that need per-rule
// exception precision should pass only that rule's exceptions.
func ComputeDay(
	contractorID string,
	targetDate time.Time,
	rules []model.Rule,
	bookings []model.Booking,
	programs []model.Program,
	exceptions map[time.Time]model.RuleException,
) DayFeasibility {
	targetDate = model.DateOnly(targetDate)

	var windows []availability.Interval
	for _, rule := range rules {
		if !rule.AppliesOn(targetDate) {
			continue
		}
		if exc, ok := exceptions[targetDate]; ok {
			if exc.Type == model.ExceptionSkip {
				continue
			}
			if exc.Type == model.ExceptionTimeOverride {
				windows = append(windows, availability.Interval{Start: exc.OverrideStart, End: exc.OverrideEnd})
				continue
			}
		}
		windows = append(windows, availability.Interval{Start: rule.StartTime, End: rule.EndTime})
	}

	merged := availability.MergeOverlapping(windows)

	var occupied []availability.Interval
	var details []BookingDetail
	for _, b := range bookings {
		if !model.DateOnly(b.Date).Equal(targetDate) || !b.Status.Occupies() {
			continue
		}
		occupied = append(occupied, availability.Interval{Start: b.StartTime, End: b.EndTime})
		program := b.ProgramTitle
		if program == "" {
			program = "Unknown"
		}
		child := b.ChildFirstName
		if child == "" {
			child = "Unknown"
		}
		details = append(details, BookingDetail{
			ID:              b.ID,
			Start:           b.StartTime,
			End:             b.EndTime,
			Program:         program,
			Child:           child,
			DurationMinutes: b.DurationMinutes(),
		})
	}

	gaps := availability.Subtract(merged, occupied)

	var feasible []ProgramFit
	for _, p := range programs {
		need := SessionMinutes(p)
		fits := false
		for _, gap := range gaps {
			if gap.Duration() >= need {
				fits = true
				break
			}
		}
		if fits {
			feasible = append(feasible, ProgramFit{
				ProgramID:       p.ID,
				Title:           p.Title,
				DurationMinutes: need,
				FitsInGap:       true,
			})
		}
	}

	summaries := make([]string, 0, len(merged))
	for _, w := range merged {
		summaries = append(summaries, availability.FormatRange(w))
	}

	return DayFeasibility{
		Date:             targetDate,
		ContractorID:     contractorID,
		RuleWindows:      merged,
		Bookings:         details,
		FreeGaps:         gaps,
		FeasiblePrograms: feasible,
		SummaryRanges:    summaries,
	}
}

// ComputeMonth computes feasibility for every day of a calendar month,
// indexing exceptions across all rules once up front. Days where no rule
// window applies are omitted entirely: absence means "no availability",
// not "no data".
func ComputeMonth(
	contractorID string,
	year int,
	month time.Month,
	rules []model.Rule,
	bookings []model.Booking,
	programs []model.Program,
) map[time.Time]DayFeasibility {
	firstDay := model.NewDate(year, month, 1)
	lastDay := firstDay.AddDate(0, 1, -1)

	exceptions := map[time.Time]model.RuleException{}
	for _, rule := range rules {
		for _, exc := range rule.Exceptions {
			d := model.DateOnly(exc.Date)
			if d.Before(firstDay) || d.After(lastDay) {
				continue
			}
			exceptions[d] = exc
		}
	}

	result := map[time.Time]DayFeasibility{}
	for d := firstDay; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		var dayBookings []model.Booking
		for _, b := range bookings {
			if model.DateOnly(b.Date).Equal(d) {
				dayBookings = append(dayBookings, b)
			}
		}

		day := ComputeDay(contractorID, d, rules, dayBookings, programs, exceptions)
		if len(day.RuleWindows) > 0 {
			result[d] = day
		}
	}
	return result
}
