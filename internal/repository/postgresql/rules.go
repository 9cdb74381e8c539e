package postgresql

import (
	"context"
	"errors"

	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/acss-labs/acss-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// The rules table holds a single row, keyed by a constant id, mirroring the
// original settings document layout.
const rulesRowID = 1

type rulesRepositoryImpl struct {
	db *database.DB
}

func NewRulesRepository(db *database.DB) rules.RulesRepository {
	return &rulesRepositoryImpl{db: db}
}

// Get implements rules.RulesRepository.
func (r *rulesRepositoryImpl) Get(ctx context.Context) (rules.Rules, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT work_start_hour, work_start_minute, work_end_hour, work_end_minute,
		       late_threshold_minutes, minimum_hours, weekend_days
		FROM attendance_rules
		WHERE id = $1
	`

	var (
		out     rules.Rules
		weekend []int32
	)
	err := q.QueryRow(ctx, query, rulesRowID).Scan(
		&out.WorkStart.Hour,
		&out.WorkStart.Minute,
		&out.WorkEnd.Hour,
		&out.WorkEnd.Minute,
		&out.LateThresholdMinutes,
		&out.MinimumHours,
		&weekend,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rules.Rules{}, rules.ErrRulesNotFound
		}
		return rules.Rules{}, err
	}

	out.WeekendDays = make([]int, len(weekend))
	for i, d := range weekend {
		out.WeekendDays[i] = int(d)
	}
	return out, nil
}

// Save implements rules.RulesRepository.
func (r *rulesRepositoryImpl) Save(ctx context.Context, in rules.Rules) error {
	q := GetQuerier(ctx, r.db)

	weekend := make([]int32, len(in.WeekendDays))
	for i, d := range in.WeekendDays {
		weekend[i] = int32(d)
	}

	_, err := q.Exec(ctx, `
		INSERT INTO attendance_rules (
			id, work_start_hour, work_start_minute, work_end_hour, work_end_minute,
			late_threshold_minutes, minimum_hours, weekend_days
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			work_start_hour = EXCLUDED.work_start_hour,
			work_start_minute = EXCLUDED.work_start_minute,
			work_end_hour = EXCLUDED.work_end_hour,
			work_end_minute = EXCLUDED.work_end_minute,
			late_threshold_minutes = EXCLUDED.late_threshold_minutes,
			minimum_hours = EXCLUDED.minimum_hours,
			weekend_days = EXCLUDED.weekend_days,
			updated_at = NOW()
	`, rulesRowID,
		in.WorkStart.Hour,
		in.WorkStart.Minute,
		in.WorkEnd.Hour,
		in.WorkEnd.Minute,
		in.LateThresholdMinutes,
		in.MinimumHours,
		weekend,
	)
	return err
}
