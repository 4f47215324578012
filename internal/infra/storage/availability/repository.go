package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/pkg/psqlbuilder"
	"github.com/tuj-devs/officehours-service/pkg/txmanager"
)

// Repository persists availability windows, one row per professor.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates an availability repository.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert replaces the professor's window wholesale. There is no
// history and no merge: last write wins, matching single-writer
// semantics for a professor's own configuration.
func (r *Repository) Upsert(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professor_availability").
		Columns(
			"professor_id",
			"days_of_week",
			"start_time",
			"end_time",
			"slot_duration_minutes",
			"location",
			"timezone",
		).
		Values(
			w.ProfessorID,
			pq.Array(w.DaysOfWeek),
			w.StartTime,
			w.EndTime,
			w.SlotDurationMinutes,
			w.Location,
			w.Timezone,
		).
		Suffix(`ON CONFLICT (professor_id) DO UPDATE SET
			days_of_week = EXCLUDED.days_of_week,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			location = EXCLUDED.location,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return w, nil
}

// GetByProfessor fetches the professor's current window.
func (r *Repository) GetByProfessor(ctx context.Context, professorID string) (*domain.AvailabilityWindow, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"professor_id",
		"days_of_week",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"location",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("professor_availability").
		Where(squirrel.Eq{"professor_id": professorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessor - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.AvailabilityWindow
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ProfessorID,
		pq.Array(&w.DaysOfWeek),
		&w.StartTime,
		&w.EndTime,
		&w.SlotDurationMinutes,
		&w.Location,
		&w.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessor - scan window: %v", ErrScanRow, err)
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return &w, nil
}
