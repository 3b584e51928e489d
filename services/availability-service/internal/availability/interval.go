package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MinGapMinutes is the floor below which a free gap is considered noise and
// dropped from subtraction results. Nothing bookable fits in less.
const MinGapMinutes = 15

// TimeOfDay is a clock time expressed as minutes since midnight (0-1439).
// Minute granularity is all the scheduling engine ever needs, and plain ints
// keep the interval math trivial.
type TimeOfDay int

func FromClock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "15:04"-style clock strings. The whole input must be
// the clock value; surrounding whitespace or trailing characters are errors.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hourStr, minuteStr, found := strings.Cut(s, ":")
	if !found || hourStr == "" || len(minuteStr) != 2 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return FromClock(hour, minute), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Compact renders a 12-hour display token: "12a", "9a", "12p", "5p".
// Minutes are intentionally dropped; this feeds day-summary strings.
func (t TimeOfDay) Compact() string {
	h := t.Hour()
	switch {
	case h == 0:
		return "12a"
	case h < 12:
		return fmt.Sprintf("%da", h)
	case h == 12:
		return "12p"
	default:
		return fmt.Sprintf("%dp", h-12)
	}
}

// Interval is a half-open [Start, End) window within a single day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (iv Interval) Duration() int {
	return int(iv.End) - int(iv.Start)
}

// Overlaps reports whether the two windows share any time. Touching endpoints
// (one ends exactly when the other starts) do NOT overlap. Note the asymmetry
// with MergeOverlapping, which does coalesce touching windows: conflict
// detection and window unioning want different boundary behavior.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// FormatRange renders an interval for day summaries, e.g. "9a-5p".
func FormatRange(iv Interval) string {
	return iv.Start.Compact() + "-" + iv.End.Compact()
}

// MergeOverlapping returns the union of the given windows as a sorted list of
// disjoint intervals. Windows that merely touch (end == next start) are merged.
func MergeOverlapping(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if iv.Start <= cur.End {
			if iv.End > cur.End {
				cur.End = iv.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = iv
	}
	merged = append(merged, cur)
	return merged
}

// Subtract carves every occupied window out of the available windows and
// returns what is left. Each cut against a remaining segment yields zero, one,
// or two segments (drop, trim, or split). Gaps shorter than MinGapMinutes are
// discarded. With no occupied windows the input is returned unchanged.
func Subtract(available, occupied []Interval) []Interval {
	if len(available) == 0 {
		return nil
	}
	if len(occupied) == 0 {
		return available
	}

	occ := make([]Interval, len(occupied))
	copy(occ, occupied)
	sort.Slice(occ, func(i, j int) bool { return occ[i].Start < occ[j].Start })

	var result []Interval
	for _, free := range available {
		remaining := []Interval{free}
		for _, o := range occ {
			var next []Interval
			for _, seg := range remaining {
				switch {
				case o.End <= seg.Start || o.Start >= seg.End:
					// No overlap with this segment.
					next = append(next, seg)
				case o.Start <= seg.Start && o.End >= seg.End:
					// Occupied covers the whole segment.
				case o.Start > seg.Start && o.End < seg.End:
					// Occupied sits strictly inside; split.
					next = append(next, Interval{Start: seg.Start, End: o.Start})
					next = append(next, Interval{Start: o.End, End: seg.End})
				case o.Start <= seg.Start:
					// Occupied clips the front.
					next = append(next, Interval{Start: o.End, End: seg.End})
				default:
					// Occupied clips the tail.
					next = append(next, Interval{Start: seg.Start, End: o.Start})
				}
			}
			remaining = next
		}
		result = append(result, remaining...)
	}

	kept := result[:0]
	for _, iv := range result {
		if iv.Duration() >= MinGapMinutes {
			kept = append(kept, iv)
		}
	}
	return kept
}

// ValidStartTimes lists every start time, stepped at stepMinutes from each
// gap's start, at which a session of durationMinutes still ends inside the gap.
func ValidStartTimes(gaps []Interval, durationMinutes, stepMinutes int) []TimeOfDay {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return nil
	}
	var starts []TimeOfDay
	for _, gap := range gaps {
		for t := int(gap.Start); t+durationMinutes <= int(gap.End); t += stepMinutes {
			starts = append(starts, TimeOfDay(t))
		}
	}
	return starts
}
