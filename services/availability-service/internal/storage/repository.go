package storage

import (
	"context"
	"errors"
	"time"

	"github.com/NellsonAss/dd-scheduling/libs/db"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/availability"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Unique violation or exclusion constraint (overlapping booking range).
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}

const ruleColumns = `id::text, contractor_id::text, contractor_name, title, kind,
	start_minute, end_minute, date_start, date_end,
	weekdays_monday, weekdays_tuesday, weekdays_wednesday, weekdays_thursday,
	weekdays_friday, weekdays_saturday, weekdays_sunday,
	timezone, is_active, notes`

// ListRules loads a contractor's rules with their exceptions and offered
// programs attached. An empty contractorID selects every contractor, which
// the overlap report uses. Pass activeOnly=false to include archived rules.
func (r *Repository) ListRules(ctx context.Context, contractorID string, activeOnly bool) ([]model.Rule, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM availability_rules
		WHERE contractor_id = $1 AND (is_active OR NOT $2)
		ORDER BY created_at
	`
	args := []any{contractorID, activeOnly}
	if contractorID == "" {
		query = `
			SELECT ` + ruleColumns + `
			FROM availability_rules
			WHERE is_active OR NOT $1
			ORDER BY contractor_id, created_at
		`
		args = []any{activeOnly}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []model.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	if err := r.attachExceptions(ctx, rules); err != nil {
		return nil, err
	}
	if err := r.attachPrograms(ctx, rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *Repository) GetRule(ctx context.Context, ruleID string) (model.Rule, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+ruleColumns+`
		FROM availability_rules
		WHERE id = $1
	`, ruleID)

	rule, err := scanRule(row)
	if err != nil {
		return model.Rule{}, err
	}
	rules := []model.Rule{rule}
	if err := r.attachExceptions(ctx, rules); err != nil {
		return model.Rule{}, err
	}
	if err := r.attachPrograms(ctx, rules); err != nil {
		return model.Rule{}, err
	}
	return rules[0], nil
}

type ruleScanner interface {
	Scan(dest ...any) error
}

func scanRule(row ruleScanner) (model.Rule, error) {
	var rule model.Rule
	var startMin, endMin int
	err := row.Scan(
		&rule.ID, &rule.ContractorID, &rule.ContractorName, &rule.Title, &rule.Kind,
		&startMin, &endMin, &rule.DateStart, &rule.DateEnd,
		&rule.Weekdays.Monday, &rule.Weekdays.Tuesday, &rule.Weekdays.Wednesday, &rule.Weekdays.Thursday,
		&rule.Weekdays.Friday, &rule.Weekdays.Saturday, &rule.Weekdays.Sunday,
		&rule.Timezone, &rule.IsActive, &rule.Notes,
	)
	if err != nil {
		return model.Rule{}, err
	}
	rule.StartTime = availability.TimeOfDay(startMin)
	rule.EndTime = availability.TimeOfDay(endMin)
	rule.DateStart = model.DateOnly(rule.DateStart)
	rule.DateEnd = model.DateOnly(rule.DateEnd)
	return rule, nil
}

func (r *Repository) attachExceptions(ctx context.Context, rules []model.Rule) error {
	if len(rules) == 0 {
		return nil
	}
	ids := make([]string, 0, len(rules))
	index := make(map[string]int, len(rules))
	for i, rule := range rules {
		ids = append(ids, rule.ID)
		index[rule.ID] = i
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, rule_id::text, date, type, override_start_minute, override_end_minute, note
		FROM rule_exceptions
		WHERE rule_id = ANY($1)
		ORDER BY date
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var exc model.RuleException
		var overrideStart, overrideEnd *int
		if err := rows.Scan(&exc.ID, &exc.RuleID, &exc.Date, &exc.Type, &overrideStart, &overrideEnd, &exc.Note); err != nil {
			return err
		}
		exc.Date = model.DateOnly(exc.Date)
		if overrideStart != nil {
			exc.OverrideStart = availability.TimeOfDay(*overrideStart)
		}
		if overrideEnd != nil {
			exc.OverrideEnd = availability.TimeOfDay(*overrideEnd)
		}
		if i, ok := index[exc.RuleID]; ok {
			rules[i].Exceptions = append(rules[i].Exceptions, exc)
		}
	}
	return rows.Err()
}

func (r *Repository) attachPrograms(ctx context.Context, rules []model.Rule) error {
	if len(rules) == 0 {
		return nil
	}
	ids := make([]string, 0, len(rules))
	index := make(map[string]int, len(rules))
	for i, rule := range rules {
		ids = append(ids, rule.ID)
		index[rule.ID] = i
	}

	rows, err := r.pool.Query(ctx, `
		SELECT rp.rule_id::text, p.id::text, p.title, COALESCE(p.program_type, '')
		FROM rule_programs rp
		JOIN programs p ON p.id = rp.program_id
		WHERE rp.rule_id = ANY($1)
		ORDER BY p.title
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ruleID string
		var ref model.ProgramRef
		if err := rows.Scan(&ruleID, &ref.ID, &ref.Title, &ref.ProgramType); err != nil {
			return err
		}
		if i, ok := index[ruleID]; ok {
			rules[i].Programs = append(rules[i].Programs, ref)
		}
	}
	return rows.Err()
}

func (r *Repository) CreateRule(ctx context.Context, tx pgx.Tx, rule model.Rule) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO availability_rules
			(id, contractor_id, contractor_name, title, kind, start_minute, end_minute,
			date_start, date_end,
			weekdays_monday, weekdays_tuesday, weekdays_wednesday, weekdays_thursday,
			weekdays_friday, weekdays_saturday, weekdays_sunday,
			timezone, is_active, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`, id, rule.ContractorID, rule.ContractorName, rule.Title, rule.Kind,
		int(rule.StartTime), int(rule.EndTime), rule.DateStart, rule.DateEnd,
		rule.Weekdays.Monday, rule.Weekdays.Tuesday, rule.Weekdays.Wednesday, rule.Weekdays.Thursday,
		rule.Weekdays.Friday, rule.Weekdays.Saturday, rule.Weekdays.Sunday,
		rule.Timezone, true, rule.Notes)
	if err != nil {
		return "", err
	}

	for _, p := range rule.Programs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO rule_programs (rule_id, program_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, id, p.ID); err != nil {
			return "", err
		}
	}
	return id, nil
}

// ArchiveRule deactivates a rule so the engine stops expanding it. The row is
// kept for history and existing bookings.
func (r *Repository) ArchiveRule(ctx context.Context, tx pgx.Tx, ruleID string) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE availability_rules
		SET is_active = FALSE, updated_at = now()
		WHERE id = $1 AND is_active
	`, ruleID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CreateException(ctx context.Context, tx pgx.Tx, exc model.RuleException) (string, error) {
	id := uuid.NewString()
	var overrideStart, overrideEnd *int
	if exc.Type == model.ExceptionTimeOverride {
		s, e := int(exc.OverrideStart), int(exc.OverrideEnd)
		overrideStart, overrideEnd = &s, &e
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO rule_exceptions (id, rule_id, date, type, override_start_minute, override_end_minute, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, exc.RuleID, exc.Date, exc.Type, overrideStart, overrideEnd, exc.Note)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListBookings returns bookings on the contractor's rules within the
// inclusive [from, to] date range, any status.
func (r *Repository) ListBookings(ctx context.Context, contractorID string, from, to time.Time) ([]model.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id::text, b.rule_id::text, b.program_id::text, COALESCE(p.title, ''),
			b.child_first_name, b.booking_date, b.start_minute, b.end_minute, b.status
		FROM rule_bookings b
		JOIN availability_rules ar ON ar.id = b.rule_id
		LEFT JOIN programs p ON p.id = b.program_id
		WHERE ar.contractor_id = $1 AND b.booking_date BETWEEN $2 AND $3
		ORDER BY b.booking_date, b.start_minute
	`, contractorID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		var startMin, endMin int
		if err := rows.Scan(&b.ID, &b.RuleID, &b.ProgramID, &b.ProgramTitle,
			&b.ChildFirstName, &b.Date, &startMin, &endMin, &b.Status); err != nil {
			return nil, err
		}
		b.Date = model.DateOnly(b.Date)
		b.StartTime = availability.TimeOfDay(startMin)
		b.EndTime = availability.TimeOfDay(endMin)
		bookings = append(bookings, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return bookings, nil
}

func (r *Repository) CreateBooking(ctx context.Context, tx pgx.Tx, b model.Booking) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO rule_bookings
			(id, rule_id, program_id, child_first_name, booking_date, start_minute, end_minute, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, b.RuleID, b.ProgramID, b.ChildFirstName, b.Date, int(b.StartTime), int(b.EndTime), b.Status)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) GetBookingForUpdate(ctx context.Context, tx pgx.Tx, bookingID string) (model.Booking, error) {
	var b model.Booking
	var startMin, endMin int
	err := tx.QueryRow(ctx, `
		SELECT b.id::text, b.rule_id::text, b.program_id::text, COALESCE(p.title, ''),
			b.child_first_name, b.booking_date, b.start_minute, b.end_minute, b.status
		FROM rule_bookings b
		LEFT JOIN programs p ON p.id = b.program_id
		WHERE b.id = $1
		FOR UPDATE OF b
	`, bookingID).Scan(&b.ID, &b.RuleID, &b.ProgramID, &b.ProgramTitle,
		&b.ChildFirstName, &b.Date, &startMin, &endMin, &b.Status)
	if err != nil {
		return model.Booking{}, err
	}
	b.Date = model.DateOnly(b.Date)
	b.StartTime = availability.TimeOfDay(startMin)
	b.EndTime = availability.TimeOfDay(endMin)
	return b, nil
}

func (r *Repository) CancelBooking(ctx context.Context, tx pgx.Tx, bookingID, reason string) (time.Time, error) {
	var cancelledAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE rule_bookings
		SET status = 'cancelled', cancelled_at = now(), cancellation_reason = $2
		WHERE id = $1
		RETURNING cancelled_at
	`, bookingID, reason).Scan(&cancelledAt)
	return cancelledAt, err
}

// ListPrograms returns the programs offered across the contractor's active
// rules, the candidate set for feasibility checks.
func (r *Repository) ListPrograms(ctx context.Context, contractorID string) ([]model.Program, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT p.id::text, p.title, COALESCE(p.program_type, ''), COALESCE(p.session_minutes, 0)
		FROM programs p
		JOIN rule_programs rp ON rp.program_id = p.id
		JOIN availability_rules ar ON ar.id = rp.rule_id
		WHERE ar.contractor_id = $1 AND ar.is_active
		ORDER BY p.title
	`, contractorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []model.Program
	for rows.Next() {
		var p model.Program
		if err := rows.Scan(&p.ID, &p.Title, &p.ProgramType, &p.SessionMinutes); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return programs, nil
}

func (r *Repository) GetProgram(ctx context.Context, programID string) (model.Program, error) {
	var p model.Program
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, title, COALESCE(program_type, ''), COALESCE(session_minutes, 0)
		FROM programs
		WHERE id = $1
	`, programID).Scan(&p.ID, &p.Title, &p.ProgramType, &p.SessionMinutes)
	return p, err
}

// ListApprovedDayOff returns approved day-off requests touching the
// inclusive [from, to] range.
func (r *Repository) ListApprovedDayOff(ctx context.Context, contractorID string, from, to time.Time) ([]model.DayOff, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, contractor_id::text, start_date, end_date, status, COALESCE(reason, '')
		FROM day_off_requests
		WHERE contractor_id = $1 AND status = 'approved'
			AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`, contractorID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DayOff
	for rows.Next() {
		var off model.DayOff
		if err := rows.Scan(&off.ID, &off.ContractorID, &off.StartDate, &off.EndDate, &off.Status, &off.Reason); err != nil {
			return nil, err
		}
		off.StartDate = model.DateOnly(off.StartDate)
		off.EndDate = model.DateOnly(off.EndDate)
		out = append(out, off)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// UpsertDayOff mirrors an approval event from the people service into the
// local day-off cache consumed by the occurrence generator.
func (r *Repository) UpsertDayOff(ctx context.Context, off model.DayOff) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO day_off_requests (id, contractor_id, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			status = EXCLUDED.status,
			reason = EXCLUDED.reason,
			updated_at = now()
	`, off.ID, off.ContractorID, off.StartDate, off.EndDate, off.Status, off.Reason)
	return err
}
