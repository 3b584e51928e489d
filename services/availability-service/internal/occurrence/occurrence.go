// Package occurrence expands declarative availability rules into concrete
// per-date windows. Occurrences are computed on demand for a visible date
// range and never persisted.
package occurrence

import (
	"sort"
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
)

// Occurrence is a single computed calendar instance of a rule.
type Occurrence struct {
	RuleID         string
	RuleTitle      string
	ContractorID   string
	ContractorName string
	Date           time.Time
	Start          availability.TimeOfDay
	End            availability.TimeOfDay
	Programs       []model.ProgramRef
	IsException    bool
	ExceptionNote  string
}

func (o Occurrence) StartDateTime() time.Time {
	return o.Date.Add(time.Duration(o.Start) * time.Minute)
}

func (o Occurrence) EndDateTime() time.Time {
	return o.Date.Add(time.Duration(o.End) * time.Minute)
}

// StartAt and EndAt satisfy the calendar grid's item shape.
func (o Occurrence) StartAt() time.Time { return o.StartDateTime() }
func (o Occurrence) EndAt() time.Time   { return o.EndDateTime() }

// ToDict is the stable serialization shape consumed by rendering layers.
func (o Occurrence) ToDict() map[string]any {
	programs := o.Programs
	if programs == nil {
		programs = []model.ProgramRef{}
	}
	return map[string]any{
		"rule_id":          o.RuleID,
		"rule_title":       o.RuleTitle,
		"contractor_id":    o.ContractorID,
		"contractor_name":  o.ContractorName,
		"date":             o.Date.Format(model.DateLayout),
		"start_time":       o.Start.String(),
		"end_time":         o.End.String(),
		"start_datetime":   o.StartDateTime().Format(time.RFC3339),
		"end_datetime":     o.EndDateTime().Format(time.RFC3339),
		"programs_offered": programs,
		"is_exception":     o.IsException,
		"exception_note":   o.ExceptionNote,
	}
}

// Options controls time-off handling during generation.
type Options struct {
	// IncludeTimeOff filters out dates covered by an approved day-off
	// request for the rule's contractor.
	IncludeTimeOff bool
	TimeOff        []model.DayOff
}

// Generate expands every rule over the inclusive [from, to] window and
// returns the occurrences sorted by date, then start time. A rule entirely
// outside the window contributes nothing.
func Generate(rules []model.Rule, from, to time.Time, opts Options) []Occurrence {
	var all []Occurrence

	for _, rule := range rules {
		exceptions := exceptionsByDate(rule)
		offDates := map[time.Time]bool{}
		if opts.IncludeTimeOff {
			offDates = timeOffDates(opts.TimeOff, rule.ContractorID)
		}

		switch rule.Kind {
		case model.RuleKindWeeklyRecurring:
			all = append(all, expandRule(rule, from, to, exceptions, offDates, true)...)
		case model.RuleKindDateRange:
			all = append(all, expandRule(rule, from, to, exceptions, offDates, false)...)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.Before(all[j].Date)
		}
		return all[i].Start < all[j].Start
	})
	return all
}

// expandRule walks every date in the intersection of the visible window and
// the rule's bounds. Weekly rules additionally filter on selected weekdays;
// date-range rules emit daily. Exceptions are consulted only for dates the
// recurrence would otherwise visit.
func expandRule(
	rule model.Rule,
	from, to time.Time,
	exceptions map[time.Time]model.RuleException,
	offDates map[time.Time]bool,
	weekdayFilter bool,
) []Occurrence {
	if weekdayFilter && !rule.Weekdays.Any() {
		return nil
	}

	scanStart := from
	if rule.DateStart.After(scanStart) {
		scanStart = rule.DateStart
	}
	scanEnd := to
	if rule.DateEnd.Before(scanEnd) {
		scanEnd = rule.DateEnd
	}
	if scanStart.After(scanEnd) {
		return nil
	}

	var out []Occurrence
	for d := scanStart; !d.After(scanEnd); d = d.AddDate(0, 0, 1) {
		if weekdayFilter && !rule.Weekdays.On(d.Weekday()) {
			continue
		}
		if offDates[d] {
			continue
		}

		if exc, ok := exceptions[d]; ok {
			if exc.Type == model.ExceptionSkip {
				continue
			}
			if exc.Type == model.ExceptionTimeOverride {
				out = append(out, Occurrence{
					RuleID:         rule.ID,
					RuleTitle:      rule.Title,
					ContractorID:   rule.ContractorID,
					ContractorName: rule.ContractorName,
					Date:           d,
					Start:          exc.OverrideStart,
					End:            exc.OverrideEnd,
					Programs:       rule.Programs,
					IsException:    true,
					ExceptionNote:  exc.Note,
				})
				continue
			}
		}

		out = append(out, Occurrence{
			RuleID:         rule.ID,
			RuleTitle:      rule.Title,
			ContractorID:   rule.ContractorID,
			ContractorName: rule.ContractorName,
			Date:           d,
			Start:          rule.StartTime,
			End:            rule.EndTime,
			Programs:       rule.Programs,
		})
	}
	return out
}

// exceptionsByDate indexes a rule's exceptions by date. Multiple exceptions
// on the same date are not meaningful; the last one in input order wins.
func exceptionsByDate(rule model.Rule) map[time.Time]model.RuleException {
	m := make(map[time.Time]model.RuleException, len(rule.Exceptions))
	for _, exc := range rule.Exceptions {
		m[model.DateOnly(exc.Date)] = exc
	}
	return m
}

// timeOffDates expands the contractor's approved day-off ranges into the set
// of individual dates they cover, both endpoints inclusive.
func timeOffDates(timeOff []model.DayOff, contractorID string) map[time.Time]bool {
	dates := map[time.Time]bool{}
	for _, off := range timeOff {
		if off.ContractorID != contractorID || off.Status != "approved" {
			continue
		}
		start := model.DateOnly(off.StartDate)
		end := model.DateOnly(off.EndDate)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dates[d] = true
		}
	}
	return dates
}
