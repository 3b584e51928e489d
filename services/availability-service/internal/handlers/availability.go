package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/calendar"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/directory"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/feasibility"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/occurrence"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/storage"
)

type AvailabilityHandler struct {
	repo      *storage.Repository
	directory directory.Provider
	logger    *slog.Logger
}

func NewAvailabilityHandler(repo *storage.Repository, directoryProvider directory.Provider, logger *slog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		repo:      repo,
		directory: directoryProvider,
		logger:    logger,
	}
}

type rangeView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type dayFeasibilityView struct {
	Date             string                      `json:"date"`
	ContractorID     string                      `json:"contractor_id"`
	RuleWindows      []rangeView                 `json:"rule_windows"`
	Bookings         []feasibility.BookingDetail `json:"bookings"`
	FreeGaps         []rangeView                 `json:"free_gaps"`
	FeasiblePrograms []feasibility.ProgramFit    `json:"feasible_programs"`
	SummaryRanges    []string                    `json:"summary_ranges"`
}

func rangeViews(intervals []availability.Interval) []rangeView {
	views := make([]rangeView, 0, len(intervals))
	for _, iv := range intervals {
		views = append(views, rangeView{StartTime: iv.Start.String(), EndTime: iv.End.String()})
	}
	return views
}

func dayView(day feasibility.DayFeasibility) dayFeasibilityView {
	view := dayFeasibilityView{
		Date:             day.Date.Format(model.DateLayout),
		ContractorID:     day.ContractorID,
		RuleWindows:      rangeViews(day.RuleWindows),
		Bookings:         day.Bookings,
		FreeGaps:         rangeViews(day.FreeGaps),
		FeasiblePrograms: day.FeasiblePrograms,
		SummaryRanges:    day.SummaryRanges,
	}
	if view.Bookings == nil {
		view.Bookings = []feasibility.BookingDetail{}
	}
	if view.FeasiblePrograms == nil {
		view.FeasiblePrograms = []feasibility.ProgramFit{}
	}
	if view.SummaryRanges == nil {
		view.SummaryRanges = []string{}
	}
	return view
}

// sharedExceptions indexes rule exceptions by date across all rules, later
// rules winning duplicate dates.
func sharedExceptions(rules []model.Rule) map[time.Time]model.RuleException {
	exceptions := map[time.Time]model.RuleException{}
	for _, rule := range rules {
		for _, exc := range rule.Exceptions {
			exceptions[model.DateOnly(exc.Date)] = exc
		}
	}
	return exceptions
}

func (h *AvailabilityHandler) loadDayInputs(ctx context.Context, contractorID string, date time.Time) ([]model.Rule, []model.Booking, []model.Program, error) {
	rules, err := h.repo.ListRules(ctx, contractorID, true)
	if err != nil {
		return nil, nil, nil, err
	}
	bookings, err := h.repo.ListBookings(ctx, contractorID, date, date)
	if err != nil {
		return nil, nil, nil, err
	}
	programs, err := h.repo.ListPrograms(ctx, contractorID)
	if err != nil {
		return nil, nil, nil, err
	}
	return rules, bookings, programs, nil
}

func (h *AvailabilityHandler) Day(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contractorID := strings.TrimSpace(r.URL.Query().Get("contractor_id"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if contractorID == "" || dateStr == "" {
		http.Error(w, "contractor_id and date required", http.StatusBadRequest)
		return
	}
	date, err := model.ParseDate(dateStr)
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	rules, bookings, programs, err := h.loadDayInputs(ctx, contractorID, date)
	if err != nil {
		h.logger.Error("day feasibility load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	day := feasibility.ComputeDay(contractorID, date, rules, bookings, programs, sharedExceptions(rules))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dayView(day))
}

func (h *AvailabilityHandler) Month(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contractorID := strings.TrimSpace(r.URL.Query().Get("contractor_id"))
	if contractorID == "" {
		http.Error(w, "contractor_id required", http.StatusBadRequest)
		return
	}
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	rules, err := h.repo.ListRules(ctx, contractorID, true)
	if err != nil {
		h.logger.Error("month feasibility load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	firstDay := model.NewDate(year, month, 1)
	lastDay := firstDay.AddDate(0, 1, -1)
	bookings, err := h.repo.ListBookings(ctx, contractorID, firstDay, lastDay)
	if err != nil {
		h.logger.Error("month feasibility load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	programs, err := h.repo.ListPrograms(ctx, contractorID)
	if err != nil {
		h.logger.Error("month feasibility load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	days := feasibility.ComputeMonth(contractorID, year, month, rules, bookings, programs)
	views := map[string]dayFeasibilityView{}
	for d, day := range days {
		views[d.Format(model.DateLayout)] = dayView(day)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"contractor_id": contractorID,
		"year":          year,
		"month":         int(month),
		"days":          views,
	})
}

func (h *AvailabilityHandler) StartTimes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contractorID := strings.TrimSpace(r.URL.Query().Get("contractor_id"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if contractorID == "" || dateStr == "" {
		http.Error(w, "contractor_id and date required", http.StatusBadRequest)
		return
	}
	date, err := model.ParseDate(dateStr)
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	durationMinutes := feasibility.DefaultSessionMinutes
	if v := strings.TrimSpace(r.URL.Query().Get("duration_minutes")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid duration_minutes", http.StatusBadRequest)
			return
		}
		durationMinutes = n
	}
	stepMinutes := availability.MinGapMinutes
	if v := strings.TrimSpace(r.URL.Query().Get("step_minutes")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid step_minutes", http.StatusBadRequest)
			return
		}
		stepMinutes = n
	}

	ctx := r.Context()
	rules, bookings, programs, err := h.loadDayInputs(ctx, contractorID, date)
	if err != nil {
		h.logger.Error("start times load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	day := feasibility.ComputeDay(contractorID, date, rules, bookings, programs, sharedExceptions(rules))
	starts := availability.ValidStartTimes(day.FreeGaps, durationMinutes, stepMinutes)
	items := make([]string, 0, len(starts))
	for _, s := range starts {
		items = append(items, s.String())
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"date":             date.Format(model.DateLayout),
		"duration_minutes": durationMinutes,
		"step_minutes":     stepMinutes,
		"start_times":      items,
	})
}

func (h *AvailabilityHandler) Occurrences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contractorID := strings.TrimSpace(r.URL.Query().Get("contractor_id"))
	from, to, ok := parseDateRange(w, r)
	if !ok {
		return
	}
	if contractorID == "" {
		http.Error(w, "contractor_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	rules, err := h.repo.ListRules(ctx, contractorID, true)
	if err != nil {
		h.logger.Error("occurrences load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	opts := occurrence.Options{}
	if isTruthy(r.URL.Query().Get("include_time_off")) {
		opts.IncludeTimeOff = true
		timeOff, err := h.repo.ListApprovedDayOff(ctx, contractorID, from, to)
		if err != nil {
			h.logger.Error("occurrences load failed", "err", err)
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		opts.TimeOff = timeOff
	}

	occurrences := occurrence.Generate(rules, from, to, opts)
	if h.directory != nil {
		h.fillContractorNames(ctx, occurrences)
	}
	items := make([]map[string]any, 0, len(occurrences))
	for _, occ := range occurrences {
		items = append(items, occ.ToDict())
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"occurrences": items})
}

// fillContractorNames backfills display names from the people service for
// rules stored before contractor_name was captured. Lookup failures keep the
// stored name.
func (h *AvailabilityHandler) fillContractorNames(ctx context.Context, occurrences []occurrence.Occurrence) {
	names := map[string]string{}
	for i := range occurrences {
		if occurrences[i].ContractorName != "" {
			continue
		}
		id := occurrences[i].ContractorID
		name, seen := names[id]
		if !seen {
			contractor, err := h.directory.GetContractor(ctx, id)
			if err != nil {
				h.logger.Warn("contractor lookup failed", "contractor_id", id, "err", err)
				names[id] = ""
				continue
			}
			name = contractor.DisplayName
			names[id] = name
		}
		occurrences[i].ContractorName = name
	}
}

func (h *AvailabilityHandler) Overlaps(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// contractor_id narrows the report to one contractor; omitted, the
	// report spans every contractor's active rules.
	contractorID := strings.TrimSpace(r.URL.Query().Get("contractor_id"))
	from, to, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	rules, err := h.repo.ListRules(r.Context(), contractorID, true)
	if err != nil {
		h.logger.Error("overlaps load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	conflicts := occurrence.DetectOverlaps(rules, from, to)
	if conflicts == nil {
		conflicts = map[string][]occurrence.Conflict{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"conflicts": conflicts})
}

type calendarItemView struct {
	RuleID    string `json:"rule_id"`
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Exception bool   `json:"is_exception"`
}

type calendarDayView struct {
	Day     int                `json:"day"`
	Date    string             `json:"date,omitempty"`
	InMonth bool               `json:"in_month"`
	IsToday bool               `json:"is_today"`
	Items   []calendarItemView `json:"items"`
}

func (h *AvailabilityHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contractorID := strings.TrimSpace(r.URL.Query().Get("contractor_id"))
	if contractorID == "" {
		http.Error(w, "contractor_id required", http.StatusBadRequest)
		return
	}
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	rules, err := h.repo.ListRules(ctx, contractorID, true)
	if err != nil {
		h.logger.Error("calendar load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	rangeStart, rangeEnd := calendar.MonthBounds(year, month)
	timeOff, err := h.repo.ListApprovedDayOff(ctx, contractorID, model.DateOnly(rangeStart), model.DateOnly(rangeEnd))
	if err != nil {
		h.logger.Error("calendar load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	occurrences := occurrence.Generate(rules, model.DateOnly(rangeStart), model.DateOnly(rangeEnd), occurrence.Options{
		IncludeTimeOff: true,
		TimeOff:        timeOff,
	})
	items := make([]calendar.Item, 0, len(occurrences))
	for _, occ := range occurrences {
		items = append(items, occ)
	}

	grid := calendar.BuildMonth(year, month, items, time.Now().UTC())

	weeks := make([][]calendarDayView, 0, len(grid.Weeks))
	for _, week := range grid.Weeks {
		days := make([]calendarDayView, 0, len(week.Days))
		for _, day := range week.Days {
			view := calendarDayView{
				Day:     day.Day,
				InMonth: day.InMonth,
				IsToday: day.IsToday,
				Items:   []calendarItemView{},
			}
			if day.Day > 0 {
				view.Date = day.Date.Format(model.DateLayout)
			}
			for _, item := range day.Items {
				occ, isOccurrence := item.(occurrence.Occurrence)
				if !isOccurrence {
					continue
				}
				programTitle := ""
				if len(occ.Programs) > 0 {
					programTitle = occ.Programs[0].Title
				}
				view.Items = append(view.Items, calendarItemView{
					RuleID:    occ.RuleID,
					Label:     calendar.DisplayLabel(occ.ExceptionNote, programTitle, occ.StartDateTime()),
					StartTime: occ.Start.String(),
					EndTime:   occ.End.String(),
					Exception: occ.IsException,
				})
			}
			days = append(days, view)
		}
		weeks = append(weeks, days)
	}

	prevYear, prevMonth := calendar.PrevMonth(year, month)
	nextYear, nextMonth := calendar.NextMonth(year, month)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"year":       grid.Year,
		"month":      int(grid.Month),
		"month_name": grid.MonthName,
		"weeks":      weeks,
		"prev":       map[string]int{"year": prevYear, "month": int(prevMonth)},
		"next":       map[string]int{"year": nextYear, "month": int(nextMonth)},
	})
}

func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	yearStr := strings.TrimSpace(r.URL.Query().Get("year"))
	monthStr := strings.TrimSpace(r.URL.Query().Get("month"))
	if yearStr == "" || monthStr == "" {
		http.Error(w, "year and month required", http.StatusBadRequest)
		return 0, 0, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return 0, 0, false
	}
	monthNum, err := strconv.Atoi(monthStr)
	if err != nil || monthNum < 1 || monthNum > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return 0, 0, false
	}
	return year, time.Month(monthNum), true
}

func parseDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	fromStr := strings.TrimSpace(r.URL.Query().Get("from"))
	toStr := strings.TrimSpace(r.URL.Query().Get("to"))
	if fromStr == "" || toStr == "" {
		http.Error(w, "from and to required", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	from, err := model.ParseDate(fromStr)
	if err != nil {
		http.Error(w, "invalid from (want YYYY-MM-DD)", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	to, err := model.ParseDate(toStr)
	if err != nil {
		http.Error(w, "invalid to (want YYYY-MM-DD)", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		http.Error(w, "to must not be before from", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
