package occurrence

import (
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
)

// Conflict describes a pair of same-day occurrences from two rules of one
// contractor whose time ranges overlap.
type Conflict struct {
	Date       time.Time `json:"date"`
	Rule1ID    string    `json:"rule1_id"`
	Rule1Title string    `json:"rule1_title"`
	Rule1Time  string    `json:"rule1_time"`
	Rule2ID    string    `json:"rule2_id"`
	Rule2Title string    `json:"rule2_title"`
	Rule2Time  string    `json:"rule2_time"`
}

// DetectOverlaps flags contractor double-booking across independently created
// rules. Time off is ignored here: a conflict between two rules exists even
// on a day the contractor happens to be away. Occurrences that merely touch
// (one ends exactly when the next starts) do not conflict.
func DetectOverlaps(rules []model.Rule, from, to time.Time) map[string][]Conflict {
	occurrences := Generate(rules, from, to, Options{IncludeTimeOff: false})

	type key struct {
		contractor string
		date       time.Time
	}
	grouped := map[key][]Occurrence{}
	for _, occ := range occurrences {
		k := key{contractor: occ.ContractorID, date: occ.Date}
		grouped[k] = append(grouped[k], occ)
	}

	conflicts := map[string][]Conflict{}
	for k, occs := range grouped {
		if len(occs) < 2 {
			continue
		}
		for i, a := range occs {
			for _, b := range occs[i+1:] {
				w1 := availability.Interval{Start: a.Start, End: a.End}
				w2 := availability.Interval{Start: b.Start, End: b.End}
				if !w1.Overlaps(w2) {
					continue
				}
				conflicts[k.contractor] = append(conflicts[k.contractor], Conflict{
					Date:       k.date,
					Rule1ID:    a.RuleID,
					Rule1Title: a.RuleTitle,
					Rule1Time:  a.Start.String() + "-" + a.End.String(),
					Rule2ID:    b.RuleID,
					Rule2Title: b.RuleTitle,
					Rule2Time:  b.Start.String() + "-" + b.End.String(),
				})
			}
		}
	}
	return conflicts
}
