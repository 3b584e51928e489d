package occurrence

import (
	"testing"
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
)

// 2026-03-02 is a Monday.
var monday = model.NewDate(2026, time.March, 2)

func weeklyRule(id string) model.Rule {
	return model.Rule{
		ID:           id,
		Title:        "Weekday mornings",
		ContractorID: "contractor-1",
		Kind:         model.RuleKindWeeklyRecurring,
		StartTime:    availability.FromClock(9, 0),
		EndTime:      availability.FromClock(12, 0),
		DateStart:    monday,
		DateEnd:      monday.AddDate(0, 0, 13),
		Weekdays:     model.Weekdays{Monday: true, Wednesday: true},
		IsActive:     true,
	}
}

func TestGenerate_WeeklyRecurring(t *testing.T) {
	rules := []model.Rule{weeklyRule("rule-1")}

	occs := Generate(rules, monday, monday.AddDate(0, 0, 13), Options{})
	if len(occs) != 4 {
		t.Fatalf("expected 4 occurrences (2 Mondays + 2 Wednesdays), got %d", len(occs))
	}

	wantDates := []time.Time{
		monday,
		monday.AddDate(0, 0, 2),
		monday.AddDate(0, 0, 7),
		monday.AddDate(0, 0, 9),
	}
	for i, occ := range occs {
		if !occ.Date.Equal(wantDates[i]) {
			t.Errorf("occurrence %d on %s, want %s", i, occ.Date.Format(model.DateLayout), wantDates[i].Format(model.DateLayout))
		}
		if occ.Start != availability.FromClock(9, 0) || occ.End != availability.FromClock(12, 0) {
			t.Errorf("occurrence %d has times %s-%s, want rule times", i, occ.Start, occ.End)
		}
		if occ.IsException {
			t.Errorf("occurrence %d unexpectedly marked exception", i)
		}
	}
}

func TestGenerate_DateRangeEmitsDaily(t *testing.T) {
	rule := model.Rule{
		ID:           "rule-camp",
		Title:        "Spring camp week",
		ContractorID: "contractor-1",
		Kind:         model.RuleKindDateRange,
		StartTime:    availability.FromClock(8, 0),
		EndTime:      availability.FromClock(15, 0),
		DateStart:    monday,
		DateEnd:      monday.AddDate(0, 0, 4),
		IsActive:     true,
	}

	occs := Generate([]model.Rule{rule}, monday, monday.AddDate(0, 1, 0), Options{})
	if len(occs) != 5 {
		t.Fatalf("expected 5 daily occurrences, got %d", len(occs))
	}
}

func TestGenerate_RuleOutsideWindow(t *testing.T) {
	rules := []model.Rule{weeklyRule("rule-1")}

	farFuture := monday.AddDate(1, 0, 0)
	occs := Generate(rules, farFuture, farFuture.AddDate(0, 0, 30), Options{})
	if len(occs) != 0 {
		t.Fatalf("rule outside visible window must contribute nothing, got %d", len(occs))
	}
}

func TestGenerate_SkipException(t *testing.T) {
	rule := weeklyRule("rule-1")
	skipped := monday.AddDate(0, 0, 2) // first Wednesday
	rule.Exceptions = []model.RuleException{
		{RuleID: rule.ID, Date: skipped, Type: model.ExceptionSkip},
	}

	occs := Generate([]model.Rule{rule}, monday, monday.AddDate(0, 0, 13), Options{})
	if len(occs) != 3 {
		t.Fatalf("expected 3 occurrences after skip, got %d", len(occs))
	}
	for _, occ := range occs {
		if occ.Date.Equal(skipped) {
			t.Fatalf("skipped date %s still present", skipped.Format(model.DateLayout))
		}
	}
}

func TestGenerate_TimeOverrideException(t *testing.T) {
	rule := weeklyRule("rule-1")
	overridden := monday.AddDate(0, 0, 7) // second Monday
	rule.Exceptions = []model.RuleException{
		{
			RuleID:        rule.ID,
			Date:          overridden,
			Type:          model.ExceptionTimeOverride,
			OverrideStart: availability.FromClock(14, 0),
			OverrideEnd:   availability.FromClock(16, 0),
			Note:          "afternoon only",
		},
	}

	occs := Generate([]model.Rule{rule}, monday, monday.AddDate(0, 0, 13), Options{})
	if len(occs) != 4 {
		t.Fatalf("expected 4 occurrences, got %d", len(occs))
	}

	var found *Occurrence
	for i := range occs {
		if occs[i].Date.Equal(overridden) {
			found = &occs[i]
		}
	}
	if found == nil {
		t.Fatalf("no occurrence on overridden date")
	}
	if !found.IsException {
		t.Error("override occurrence not flagged as exception")
	}
	if found.Start != availability.FromClock(14, 0) || found.End != availability.FromClock(16, 0) {
		t.Errorf("override occurrence has times %s-%s, want 14:00-16:00", found.Start, found.End)
	}
	if found.ExceptionNote != "afternoon only" {
		t.Errorf("exception note = %q", found.ExceptionNote)
	}
}

func TestGenerate_ApprovedTimeOffFilters(t *testing.T) {
	rule := weeklyRule("rule-1")
	timeOff := []model.DayOff{
		{
			ContractorID: rule.ContractorID,
			StartDate:    monday,
			EndDate:      monday.AddDate(0, 0, 2),
			Status:       "approved",
		},
		{
			// Pending requests do not block availability.
			ContractorID: rule.ContractorID,
			StartDate:    monday.AddDate(0, 0, 7),
			EndDate:      monday.AddDate(0, 0, 7),
			Status:       "pending",
		},
	}

	occs := Generate([]model.Rule{rule}, monday, monday.AddDate(0, 0, 13),
		Options{IncludeTimeOff: true, TimeOff: timeOff})

	// First Monday and Wednesday fall inside the approved range.
	if len(occs) != 2 {
		t.Fatalf("expected 2 occurrences after time off, got %d", len(occs))
	}
	if !occs[0].Date.Equal(monday.AddDate(0, 0, 7)) {
		t.Errorf("first remaining occurrence on %s", occs[0].Date.Format(model.DateLayout))
	}
}

func TestGenerate_SortedAcrossRules(t *testing.T) {
	early := weeklyRule("rule-early")
	late := weeklyRule("rule-late")
	late.StartTime = availability.FromClock(13, 0)
	late.EndTime = availability.FromClock(17, 0)

	occs := Generate([]model.Rule{late, early}, monday, monday.AddDate(0, 0, 13), Options{})
	for i := 1; i < len(occs); i++ {
		prev, cur := occs[i-1], occs[i]
		if cur.Date.Before(prev.Date) {
			t.Fatalf("occurrences not date-sorted at %d", i)
		}
		if cur.Date.Equal(prev.Date) && cur.Start < prev.Start {
			t.Fatalf("occurrences not start-sorted within %s", cur.Date.Format(model.DateLayout))
		}
	}
}

func TestOccurrence_ToDict(t *testing.T) {
	occ := Occurrence{
		RuleID:         "rule-1",
		RuleTitle:      "Weekday mornings",
		ContractorID:   "contractor-1",
		ContractorName: "Jordan Smith",
		Date:           monday,
		Start:          availability.FromClock(9, 0),
		End:            availability.FromClock(12, 0),
		Programs:       []model.ProgramRef{{ID: "prog-1", Title: "STEM Club", ProgramType: "Enrichment"}},
	}

	d := occ.ToDict()
	if d["date"] != "2026-03-02" {
		t.Errorf("date = %v", d["date"])
	}
	if d["start_time"] != "09:00" || d["end_time"] != "12:00" {
		t.Errorf("times = %v-%v", d["start_time"], d["end_time"])
	}
	if d["start_datetime"] != "2026-03-02T09:00:00Z" {
		t.Errorf("start_datetime = %v", d["start_datetime"])
	}
	if d["is_exception"] != false {
		t.Errorf("is_exception = %v", d["is_exception"])
	}
	for _, key := range []string{"rule_id", "rule_title", "contractor_id", "contractor_name", "end_datetime", "programs_offered", "exception_note"} {
		if _, ok := d[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestDetectOverlaps(t *testing.T) {
	overlapA := weeklyRule("rule-a")
	overlapA.StartTime = availability.FromClock(9, 0)
	overlapA.EndTime = availability.FromClock(11, 0)

	overlapB := weeklyRule("rule-b")
	overlapB.StartTime = availability.FromClock(10, 0)
	overlapB.EndTime = availability.FromClock(12, 0)

	conflicts := DetectOverlaps([]model.Rule{overlapA, overlapB}, monday, monday)
	contractorConflicts := conflicts["contractor-1"]
	if len(contractorConflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(contractorConflicts))
	}
	c := contractorConflicts[0]
	if !c.Date.Equal(monday) {
		t.Errorf("conflict date = %s", c.Date.Format(model.DateLayout))
	}
	if c.Rule1ID == c.Rule2ID {
		t.Errorf("conflict pairs a rule with itself")
	}
}

func TestDetectOverlaps_TouchingIsNotConflict(t *testing.T) {
	first := weeklyRule("rule-a")
	first.StartTime = availability.FromClock(9, 0)
	first.EndTime = availability.FromClock(10, 0)

	second := weeklyRule("rule-b")
	second.StartTime = availability.FromClock(10, 0)
	second.EndTime = availability.FromClock(11, 0)

	conflicts := DetectOverlaps([]model.Rule{first, second}, monday, monday)
	if len(conflicts) != 0 {
		t.Fatalf("touching windows must not conflict, got %v", conflicts)
	}
}

func TestDetectOverlaps_AcrossContractors(t *testing.T) {
	// A rule set spanning several contractors groups conflicts per
	// contractor; identical windows on different contractors never
	// conflict with each other.
	aliceA := weeklyRule("alice-a")
	aliceB := weeklyRule("alice-b")
	aliceB.StartTime = availability.FromClock(10, 0)
	aliceB.EndTime = availability.FromClock(13, 0)

	bobA := weeklyRule("bob-a")
	bobA.ContractorID = "contractor-2"
	bobSolo := weeklyRule("bob-solo")
	bobSolo.ContractorID = "contractor-2"
	bobSolo.StartTime = availability.FromClock(14, 0)
	bobSolo.EndTime = availability.FromClock(16, 0)

	conflicts := DetectOverlaps([]model.Rule{aliceA, aliceB, bobA, bobSolo}, monday, monday)
	if len(conflicts) != 1 {
		t.Fatalf("expected conflicts for 1 contractor, got %d: %v", len(conflicts), conflicts)
	}
	if len(conflicts["contractor-1"]) != 1 {
		t.Fatalf("expected 1 conflict for contractor-1, got %d", len(conflicts["contractor-1"]))
	}
	if len(conflicts["contractor-2"]) != 0 {
		t.Fatalf("contractor-2 has no overlapping rules, got %v", conflicts["contractor-2"])
	}
}

func TestDetectOverlaps_IgnoresTimeOff(t *testing.T) {
	// Overlap detection looks at rule definitions, not at whether the
	// contractor is away that day.
	a := weeklyRule("rule-a")
	b := weeklyRule("rule-b")
	b.StartTime = availability.FromClock(10, 0)
	b.EndTime = availability.FromClock(13, 0)

	conflicts := DetectOverlaps([]model.Rule{a, b}, monday, monday)
	if len(conflicts["contractor-1"]) == 0 {
		t.Fatal("expected conflicts regardless of time off")
	}
}
