package model

import (
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
)

type RuleKind string

const (
	RuleKindWeeklyRecurring RuleKind = "WEEKLY_RECURRING"
	RuleKindDateRange       RuleKind = "DATE_RANGE"
)

type ExceptionType string

const (
	ExceptionSkip         ExceptionType = "SKIP"
	ExceptionTimeOverride ExceptionType = "TIME_OVERRIDE"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Occupies reports whether a booking in this status blocks contractor time.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Weekdays holds the seven per-weekday selection flags of a weekly rule,
// Monday first to match how contractors enter them.
type Weekdays struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

func (w Weekdays) On(d time.Weekday) bool {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

func (w Weekdays) Any() bool {
	return w.Monday || w.Tuesday || w.Wednesday || w.Thursday || w.Friday || w.Saturday || w.Sunday
}

// ProgramRef is the denormalized program shape carried on computed occurrences.
type ProgramRef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ProgramType string `json:"program_type,omitempty"`
}

// Rule is a declarative availability statement for one contractor: either a
// weekly-recurring pattern or a fixed daily date range. Rules are created and
// archived through the HTTP layer and never mutated by the engine.
type Rule struct {
	ID             string
	Title          string
	ContractorID   string
	ContractorName string
	Kind           RuleKind
	StartTime      availability.TimeOfDay
	EndTime        availability.TimeOfDay
	DateStart      time.Time // inclusive, UTC midnight
	DateEnd        time.Time // inclusive, UTC midnight
	Weekdays       Weekdays
	Timezone       string // informational label only, never used for conversion
	IsActive       bool
	Notes          string
	Exceptions     []RuleException
	Programs       []ProgramRef
}

// AppliesOn reports whether the rule's recurrence visits the given date,
// ignoring exceptions and time off.
func (r Rule) AppliesOn(date time.Time) bool {
	if date.Before(r.DateStart) || date.After(r.DateEnd) {
		return false
	}
	if r.Kind == RuleKindWeeklyRecurring {
		return r.Weekdays.On(date.Weekday())
	}
	return true
}

// RuleException overrides a single date of its rule: SKIP removes the
// occurrence, TIME_OVERRIDE substitutes the override window.
type RuleException struct {
	ID            string
	RuleID        string
	Date          time.Time
	Type          ExceptionType
	OverrideStart availability.TimeOfDay
	OverrideEnd   availability.TimeOfDay
	Note          string
}

// Booking reserves part of a rule's window for a program and child.
type Booking struct {
	ID             string
	RuleID         string
	ProgramID      string
	ProgramTitle   string
	ChildFirstName string
	Date           time.Time
	StartTime      availability.TimeOfDay
	EndTime        availability.TimeOfDay
	Status         BookingStatus
}

func (b Booking) DurationMinutes() int {
	return int(b.EndTime) - int(b.StartTime)
}

// Program is a bookable offering. SessionMinutes is the configured default
// session duration; zero means the scheduling config is missing.
type Program struct {
	ID             string
	Title          string
	ProgramType    string
	SessionMinutes int
}

// DayOff is an approved contractor day-off request covering an inclusive
// date range. Single-day requests have StartDate == EndDate.
type DayOff struct {
	ID           string
	ContractorID string
	StartDate    time.Time
	EndDate      time.Time
	Status       string
	Reason       string
}
