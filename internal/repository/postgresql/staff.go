package postgresql

import (
	"context"
	"errors"

	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/acss-labs/acss-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `id, name, department, badge_id, email, position, phone, status, removed, created_at, updated_at`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Department,
		&s.BadgeID,
		&s.Email,
		&s.Position,
		&s.Phone,
		&s.Status,
		&s.Removed,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO staff (id, name, department, badge_id, email, position, phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + staffColumns

	created, err := scanStaff(q.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.Department,
		s.BadgeID,
		s.Email,
		s.Position,
		s.Phone,
		s.Status,
	))
	if err != nil {
		return staff.Staff{}, err
	}
	return created, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1 AND removed = FALSE`

	found, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, err
	}
	return found, nil
}

// GetByBadgeID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByBadgeID(ctx context.Context, badgeID string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE badge_id = $1 AND removed = FALSE`

	found, err := scanStaff(q.QueryRow(ctx, query, badgeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, err
	}
	return found, nil
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE removed = FALSE ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, s staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET name = $1, department = $2, badge_id = $3, email = $4,
		    position = $5, phone = $6, status = $7, updated_at = NOW()
		WHERE id = $8 AND removed = FALSE
	`

	tag, err := q.Exec(ctx, query,
		s.Name,
		s.Department,
		s.BadgeID,
		s.Email,
		s.Position,
		s.Phone,
		s.Status,
		s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

// SoftRemove implements staff.StaffRepository.
func (r *staffRepositoryImpl) SoftRemove(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE staff SET removed = TRUE, updated_at = NOW() WHERE id = $1 AND removed = FALSE`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

// Delete implements staff.StaffRepository.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}
