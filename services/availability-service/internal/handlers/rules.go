package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/feasibility"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/outbox"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/storage"
)

type RuleHandler struct {
	repo       *storage.Repository
	outboxRepo *outbox.Repository
	logger     *slog.Logger
}

func NewRuleHandler(repo *storage.Repository, outboxRepo *outbox.Repository, logger *slog.Logger) *RuleHandler {
	return &RuleHandler{
		repo:       repo,
		outboxRepo: outboxRepo,
		logger:     logger,
	}
}

// Rules dispatches the collection endpoint: GET lists, POST creates.
func (h *RuleHandler) Rules(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type weekdaysRequest struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

type createRuleRequest struct {
	ContractorID   string          `json:"contractor_id"`
	ContractorName string          `json:"contractor_name"`
	Title          string          `json:"title"`
	Kind           string          `json:"kind"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
	DateStart      string          `json:"date_start"`
	DateEnd        string          `json:"date_end"`
	Weekdays       weekdaysRequest `json:"weekdays"`
	Timezone       string          `json:"timezone"`
	Notes          string          `json:"notes"`
	ProgramIDs     []string        `json:"program_ids"`
}

type createRuleResponse struct {
	RuleID string `json:"rule_id"`
}

func (h *RuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	req.ContractorID = strings.TrimSpace(req.ContractorID)
	req.Title = strings.TrimSpace(req.Title)
	req.Kind = strings.TrimSpace(req.Kind)
	if req.ContractorID == "" || req.Title == "" {
		http.Error(w, "contractor_id and title required", http.StatusBadRequest)
		return
	}

	kind := model.RuleKind(req.Kind)
	if kind != model.RuleKindWeeklyRecurring && kind != model.RuleKindDateRange {
		http.Error(w, "kind must be WEEKLY_RECURRING or DATE_RANGE", http.StatusBadRequest)
		return
	}

	startTime, err := availability.ParseTimeOfDay(req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time (want HH:MM)", http.StatusBadRequest)
		return
	}
	endTime, err := availability.ParseTimeOfDay(req.EndTime)
	if err != nil {
		http.Error(w, "invalid end_time (want HH:MM)", http.StatusBadRequest)
		return
	}
	if endTime <= startTime {
		http.Error(w, "end_time must be after start_time", http.StatusBadRequest)
		return
	}

	dateStart, err := model.ParseDate(req.DateStart)
	if err != nil {
		http.Error(w, "invalid date_start (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	dateEnd, err := model.ParseDate(req.DateEnd)
	if err != nil {
		http.Error(w, "invalid date_end (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	if dateEnd.Before(dateStart) {
		http.Error(w, "date_end must not be before date_start", http.StatusBadRequest)
		return
	}

	weekdays := model.Weekdays{
		Monday:    req.Weekdays.Monday,
		Tuesday:   req.Weekdays.Tuesday,
		Wednesday: req.Weekdays.Wednesday,
		Thursday:  req.Weekdays.Thursday,
		Friday:    req.Weekdays.Friday,
		Saturday:  req.Weekdays.Saturday,
		Sunday:    req.Weekdays.Sunday,
	}
	if kind == model.RuleKindWeeklyRecurring && !weekdays.Any() {
		http.Error(w, "weekly rules need at least one weekday", http.StatusBadRequest)
		return
	}

	rule := model.Rule{
		ContractorID:   req.ContractorID,
		ContractorName: strings.TrimSpace(req.ContractorName),
		Title:          req.Title,
		Kind:           kind,
		StartTime:      startTime,
		EndTime:        endTime,
		DateStart:      dateStart,
		DateEnd:        dateEnd,
		Weekdays:       weekdays,
		Timezone:       strings.TrimSpace(req.Timezone),
		Notes:          strings.TrimSpace(req.Notes),
	}
	for _, id := range req.ProgramIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			rule.Programs = append(rule.Programs, model.ProgramRef{ID: id})
		}
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.repo.CreateRule(ctx, tx, rule)
	if err != nil {
		h.logger.Error("rule create failed", "err", err)
		http.Error(w, "failed to create rule", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"rule_id":       id,
		"contractor_id": rule.ContractorID,
		"title":         rule.Title,
		"kind":          string(rule.Kind),
		"start_time":    rule.StartTime.String(),
		"end_time":      rule.EndTime.String(),
		"date_start":    rule.DateStart.Format(model.DateLayout),
		"date_end":      rule.DateEnd.Format(model.DateLayout),
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "availability_rule",
		AggregateID:   id,
		EventType:     outbox.EventRuleCreated,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createRuleResponse{RuleID: id})
}

type ruleListItem struct {
	RuleID         string             `json:"rule_id"`
	Title          string             `json:"title"`
	ContractorID   string             `json:"contractor_id"`
	ContractorName string             `json:"contractor_name,omitempty"`
	Kind           string             `json:"kind"`
	StartTime      string             `json:"start_time"`
	EndTime        string             `json:"end_time"`
	DateStart      string             `json:"date_start"`
	DateEnd        string             `json:"date_end"`
	Weekdays       weekdaysRequest    `json:"weekdays"`
	Timezone       string             `json:"timezone,omitempty"`
	IsActive       bool               `json:"is_active"`
	Notes          string             `json:"notes,omitempty"`
	Programs       []model.ProgramRef `json:"programs"`
	ExceptionCount int                `json:"exception_count"`
}

func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contractorID := strings.TrimSpace(r.URL.Query().Get("contractor_id"))
	if contractorID == "" {
		http.Error(w, "contractor_id required", http.StatusBadRequest)
		return
	}
	activeOnly := !isTruthy(r.URL.Query().Get("include_inactive"))

	rules, err := h.repo.ListRules(r.Context(), contractorID, activeOnly)
	if err != nil {
		h.logger.Error("rule list failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	items := make([]ruleListItem, 0, len(rules))
	for _, rule := range rules {
		programs := rule.Programs
		if programs == nil {
			programs = []model.ProgramRef{}
		}
		items = append(items, ruleListItem{
			RuleID:         rule.ID,
			Title:          rule.Title,
			ContractorID:   rule.ContractorID,
			ContractorName: rule.ContractorName,
			Kind:           string(rule.Kind),
			StartTime:      rule.StartTime.String(),
			EndTime:        rule.EndTime.String(),
			DateStart:      rule.DateStart.Format(model.DateLayout),
			DateEnd:        rule.DateEnd.Format(model.DateLayout),
			Weekdays: weekdaysRequest{
				Monday:    rule.Weekdays.Monday,
				Tuesday:   rule.Weekdays.Tuesday,
				Wednesday: rule.Weekdays.Wednesday,
				Thursday:  rule.Weekdays.Thursday,
				Friday:    rule.Weekdays.Friday,
				Saturday:  rule.Weekdays.Saturday,
				Sunday:    rule.Weekdays.Sunday,
			},
			Timezone:       rule.Timezone,
			IsActive:       rule.IsActive,
			Notes:          rule.Notes,
			Programs:       programs,
			ExceptionCount: len(rule.Exceptions),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"rules": items})
}

type archiveRuleRequest struct {
	RuleID string `json:"rule_id"`
}

func (h *RuleHandler) Archive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req archiveRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.RuleID = strings.TrimSpace(req.RuleID)
	if req.RuleID == "" {
		http.Error(w, "rule_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	archived, err := h.repo.ArchiveRule(ctx, tx, req.RuleID)
	if err != nil {
		h.logger.Error("rule archive failed", "err", err)
		http.Error(w, "failed to archive rule", http.StatusInternalServerError)
		return
	}
	if !archived {
		http.Error(w, "rule not found or already archived", http.StatusNotFound)
		return
	}

	evtPayload, _ := json.Marshal(map[string]any{"rule_id": req.RuleID})
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "availability_rule",
		AggregateID:   req.RuleID,
		EventType:     outbox.EventRuleArchived,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"rule_id": req.RuleID, "is_active": false})
}

type createExceptionRequest struct {
	RuleID        string `json:"rule_id"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	OverrideStart string `json:"override_start"`
	OverrideEnd   string `json:"override_end"`
	Note          string `json:"note"`
}

func (h *RuleHandler) CreateException(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.RuleID = strings.TrimSpace(req.RuleID)
	if req.RuleID == "" {
		http.Error(w, "rule_id required", http.StatusBadRequest)
		return
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	excType := model.ExceptionType(strings.TrimSpace(req.Type))
	if excType != model.ExceptionSkip && excType != model.ExceptionTimeOverride {
		http.Error(w, "type must be SKIP or TIME_OVERRIDE", http.StatusBadRequest)
		return
	}

	exc := model.RuleException{
		RuleID: req.RuleID,
		Date:   date,
		Type:   excType,
		Note:   strings.TrimSpace(req.Note),
	}
	if excType == model.ExceptionTimeOverride {
		overrideStart, err := availability.ParseTimeOfDay(req.OverrideStart)
		if err != nil {
			http.Error(w, "invalid override_start (want HH:MM)", http.StatusBadRequest)
			return
		}
		overrideEnd, err := availability.ParseTimeOfDay(req.OverrideEnd)
		if err != nil {
			http.Error(w, "invalid override_end (want HH:MM)", http.StatusBadRequest)
			return
		}
		if overrideEnd <= overrideStart {
			http.Error(w, "override_end must be after override_start", http.StatusBadRequest)
			return
		}
		exc.OverrideStart = overrideStart
		exc.OverrideEnd = overrideEnd
	}

	ctx := r.Context()
	rule, err := h.repo.GetRule(ctx, req.RuleID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "rule not found", http.StatusNotFound)
			return
		}
		h.logger.Error("rule lookup failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if !rule.AppliesOn(date) {
		http.Error(w, "rule has no occurrence on that date", http.StatusUnprocessableEntity)
		return
	}

	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.repo.CreateException(ctx, tx, exc)
	if err != nil {
		h.logger.Error("exception create failed", "err", err)
		http.Error(w, "failed to create exception", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"exception_id": id})
}

type createBookingRequest struct {
	RuleID         string `json:"rule_id"`
	ProgramID      string `json:"program_id"`
	ChildFirstName string `json:"child_first_name"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

type createBookingResponse struct {
	BookingID string `json:"booking_id"`
}

func (h *RuleHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.RuleID = strings.TrimSpace(req.RuleID)
	req.ProgramID = strings.TrimSpace(req.ProgramID)
	req.ChildFirstName = strings.TrimSpace(req.ChildFirstName)
	if req.RuleID == "" || req.ChildFirstName == "" {
		http.Error(w, "rule_id and child_first_name required", http.StatusBadRequest)
		return
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	startTime, err := availability.ParseTimeOfDay(req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time (want HH:MM)", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	rule, err := h.repo.GetRule(ctx, req.RuleID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "rule not found", http.StatusNotFound)
			return
		}
		h.logger.Error("rule lookup failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if !rule.IsActive {
		http.Error(w, "rule is archived", http.StatusUnprocessableEntity)
		return
	}
	if !rule.AppliesOn(date) {
		http.Error(w, "rule has no occurrence on that date", http.StatusUnprocessableEntity)
		return
	}

	// End time defaults to the program's configured session length, or the
	// engine default when neither is given.
	var endTime availability.TimeOfDay
	if strings.TrimSpace(req.EndTime) != "" {
		endTime, err = availability.ParseTimeOfDay(req.EndTime)
		if err != nil {
			http.Error(w, "invalid end_time (want HH:MM)", http.StatusBadRequest)
			return
		}
	} else {
		duration := feasibility.DefaultSessionMinutes
		if req.ProgramID != "" {
			program, err := h.repo.GetProgram(ctx, req.ProgramID)
			if err != nil && !storage.IsNotFound(err) {
				h.logger.Error("program lookup failed", "err", err)
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}
			if err == nil {
				duration = feasibility.SessionMinutes(program)
			}
		}
		endTime = startTime + availability.TimeOfDay(duration)
	}
	if endTime <= startTime {
		http.Error(w, "end_time must be after start_time", http.StatusBadRequest)
		return
	}

	rules, bookings, programs, err := h.loadBookingContext(r, rule.ContractorID, date)
	if err != nil {
		h.logger.Error("booking context load failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	day := feasibility.ComputeDay(rule.ContractorID, date, rules, bookings, programs, sharedExceptions(rules))
	requested := availability.Interval{Start: startTime, End: endTime}
	if !fitsInGap(day.FreeGaps, requested) {
		http.Error(w, "requested time is outside free availability", http.StatusUnprocessableEntity)
		return
	}

	booking := model.Booking{
		RuleID:         req.RuleID,
		ProgramID:      req.ProgramID,
		ChildFirstName: req.ChildFirstName,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         model.BookingPending,
	}

	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.repo.CreateBooking(ctx, tx, booking)
	if err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "time slot already booked", http.StatusConflict)
			return
		}
		h.logger.Error("booking create failed", "err", err)
		http.Error(w, "failed to create booking", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"booking_id":    id,
		"rule_id":       booking.RuleID,
		"program_id":    booking.ProgramID,
		"contractor_id": rule.ContractorID,
		"date":          date.Format(model.DateLayout),
		"start_time":    startTime.String(),
		"end_time":      endTime.String(),
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "rule_booking",
		AggregateID:   id,
		EventType:     outbox.EventBookingCreated,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createBookingResponse{BookingID: id})
}

func (h *RuleHandler) loadBookingContext(r *http.Request, contractorID string, date time.Time) ([]model.Rule, []model.Booking, []model.Program, error) {
	ctx := r.Context()
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

func fitsInGap(gaps []availability.Interval, requested availability.Interval) bool {
	for _, gap := range gaps {
		if requested.Start >= gap.Start && requested.End <= gap.End {
			return true
		}
	}
	return false
}

type cancelBookingRequest struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason"`
}

type cancelBookingResponse struct {
	BookingID   string `json:"booking_id"`
	Status      string `json:"status"`
	CancelledAt string `json:"cancelled_at,omitempty"`
}

func (h *RuleHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.BookingID = strings.TrimSpace(req.BookingID)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.BookingID == "" {
		http.Error(w, "booking_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	booking, err := h.repo.GetBookingForUpdate(ctx, tx, req.BookingID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		h.logger.Error("booking lookup failed", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if booking.Status == model.BookingCancelled {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cancelBookingResponse{
			BookingID: booking.ID,
			Status:    string(booking.Status),
		})
		return
	}

	cancelledAt, err := h.repo.CancelBooking(ctx, tx, req.BookingID, req.Reason)
	if err != nil {
		h.logger.Error("booking cancel failed", "err", err)
		http.Error(w, "failed to cancel booking", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"booking_id":   booking.ID,
		"rule_id":      booking.RuleID,
		"date":         booking.Date.Format(model.DateLayout),
		"reason":       req.Reason,
		"cancelled_at": cancelledAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "rule_booking",
		AggregateID:   booking.ID,
		EventType:     outbox.EventBookingCancelled,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cancelBookingResponse{
		BookingID:   booking.ID,
		Status:      string(model.BookingCancelled),
		CancelledAt: cancelledAt.UTC().Format(time.RFC3339),
	})
}
