package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/pkg/psqlbuilder"
	"github.com/tuj-devs/officehours-service/pkg/txmanager"
)

const uniqueViolation = "23505"

var reservationColumns = []string{
	"id",
	"professor_id",
	"student_id",
	"professor_name",
	"student_name",
	"start_at",
	"end_at",
	"note",
	"created_at",
}

// Repository persists reservations. All writes go through Create; a
// committed reservation is never mutated.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reservation. When the context carries an active
// transaction the insert runs inside it; the booking use case relies
// on that together with the locked day query for its at-most-one-winner
// guarantee. The unique (professor_id, start_at) index backs the same
// guarantee at the storage level and surfaces as ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"professor_id",
			"student_id",
			"professor_name",
			"student_name",
			"start_at",
			"end_at",
			"note",
		).
		Values(
			res.ID,
			res.ProfessorID,
			res.StudentID,
			res.ProfessorName,
			res.StudentName,
			res.StartAt,
			res.EndAt,
			res.Note,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// GetByID fetches one reservation.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// ListByStudent returns a student's reservations ordered by start
// instant ascending. When endAfter is set, only reservations ending
// after it are returned.
func (r *Repository) ListByStudent(ctx context.Context, studentID string, endAfter *time.Time) ([]*domain.Reservation, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID}, endAfter)
}

// ListByProfessor is the professor-side counterpart of ListByStudent.
func (r *Repository) ListByProfessor(ctx context.Context, professorID string, endAfter *time.Time) ([]*domain.Reservation, error) {
	return r.list(ctx, squirrel.Eq{"professor_id": professorID}, endAfter)
}

func (r *Repository) list(ctx context.Context, owner squirrel.Eq, endAfter *time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.Executor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(owner).
		OrderBy("start_at ASC")

	if endAfter != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": *endAfter})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListByProfessorBetween returns a professor's reservations with
// start_at in [from, to), ordered ascending. Inside a transaction the
// rows are locked with FOR UPDATE so a concurrent booking for the same
// day serializes behind the caller.
func (r *Repository) ListByProfessorBetween(ctx context.Context, professorID string, from, to time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.Executor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"professor_id": professorID}).
		Where(squirrel.GtOrEq{"start_at": from}).
		Where(squirrel.Lt{"start_at": to}).
		OrderBy("start_at ASC")

	if txmanager.InTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessorBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessorBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ProfessorID,
		&res.StudentID,
		&res.ProfessorName,
		&res.StudentName,
		&res.StartAt,
		&res.EndAt,
		&res.Note,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
