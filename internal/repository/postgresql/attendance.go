package postgresql

import (
	"context"
	"errors"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const eventColumns = `id, staff_id, date, staff_name, department, badge_id,
	check_in, check_in_device, check_out, check_out_device, created_at`

func scanEvent(row pgx.Row) (attendance.Event, error) {
	var e attendance.Event
	err := row.Scan(
		&e.ID,
		&e.StaffID,
		&e.Date,
		&e.StaffName,
		&e.Department,
		&e.BadgeID,
		&e.CheckIn,
		&e.CheckInDevice,
		&e.CheckOut,
		&e.CheckOutDevice,
		&e.CreatedAt,
	)
	return e, err
}

// Create implements attendance.EventRepository. The per-day counter row is
// upserted in the same transaction scope as the event insert when the caller
// wraps it in WithTransaction.
func (r *eventRepositoryImpl) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_events (
			id, staff_id, date, staff_name, department, badge_id,
			check_in, check_in_device, check_out, check_out_device
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventColumns

	created, err := scanEvent(q.QueryRow(ctx, query,
		e.ID,
		e.StaffID,
		e.Date,
		e.StaffName,
		e.Department,
		e.BadgeID,
		e.CheckIn,
		e.CheckInDevice,
		e.CheckOut,
		e.CheckOutDevice,
	))
	if err != nil {
		return attendance.Event{}, err
	}

	_, err = q.Exec(ctx, `
		INSERT INTO attendance_days (date, count)
		VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE SET count = attendance_days.count + 1
	`, e.Date)
	if err != nil {
		return attendance.Event{}, err
	}

	return created, nil
}

// Update implements attendance.EventRepository.
func (r *eventRepositoryImpl) Update(ctx context.Context, e attendance.Event) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance_events
		SET check_out = $1, check_out_device = $2
		WHERE id = $3
	`, e.CheckOut, e.CheckOutDevice, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEventNotFound
	}
	return nil
}

// GetOpenEvent implements attendance.EventRepository.
func (r *eventRepositoryImpl) GetOpenEvent(ctx context.Context, staffID string, date string) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE staff_id = $1 AND date = $2 AND check_in IS NOT NULL AND check_out IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`

	found, err := scanEvent(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Event{}, attendance.ErrEventNotFound
		}
		return attendance.Event{}, err
	}
	return found, nil
}

// HasCheckedIn implements attendance.EventRepository.
func (r *eventRepositoryImpl) HasCheckedIn(ctx context.Context, staffID string, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM attendance_events
			WHERE staff_id = $1 AND date = $2 AND check_in IS NOT NULL
		)
	`, staffID, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListAll implements attendance.EventRepository.
func (r *eventRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM attendance_events ORDER BY date, created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

// ListRange implements attendance.EventRepository.
func (r *eventRepositoryImpl) ListRange(ctx context.Context, start, end string, staffID string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE date >= $1 AND date <= $2 AND ($3 = '' OR staff_id = $3)
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, start, end, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

// ListDays implements attendance.EventRepository.
func (r *eventRepositoryImpl) ListDays(ctx context.Context) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT date, count FROM attendance_days ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []attendance.Day
	for rows.Next() {
		var d attendance.Day
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// HasHistory implements attendance.EventRepository.
func (r *eventRepositoryImpl) HasHistory(ctx context.Context, staffID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance_events WHERE staff_id = $1)`, staffID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func collectEvents(rows pgx.Rows) ([]attendance.Event, error) {
	var out []attendance.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
