package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tuj-devs/officehours-service/internal/domain"
	availabilityRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/availability"
	professorRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/professor"
	"github.com/tuj-devs/officehours-service/internal/events"
	reservationRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/reservation"
	"github.com/tuj-devs/officehours-service/internal/watch"
)

type UseCase struct {
	professors   ProfessorRepository
	availability AvailabilityRepository
	reservations ReservationRepository
	txManager    TxManager
	waker        Waker
	publisher    EventPublisher
	logger       Logger
}

func NewUseCase(
	professors ProfessorRepository,
	availability AvailabilityRepository,
	reservations ReservationRepository,
	txManager TxManager,
	waker Waker,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		professors:   professors,
		availability: availability,
		reservations: reservations,
		txManager:    txManager,
		waker:        waker,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute books one slot atomically. The whole check-then-insert runs
// under a serializable transaction with the day's reservations locked,
// so two students racing for the same slot produce exactly one
// reservation; the loser gets ErrSlotNoLongerAvailable. Any storage
// failure aborts the booking: a read error is never treated as "slot
// free".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	professor, err := uc.professors.GetByID(ctx, req.ProfessorID)
	if err != nil {
		if errors.Is(err, professorRepo.ErrProfessorNotFound) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("%w: Execute - get professor: %v", ErrInternal, err)
	}

	var created *domain.Reservation

	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		window, err := uc.availability.GetByProfessor(ctx, req.ProfessorID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
				return ErrAvailabilityNotSet
			}
			return fmt.Errorf("get availability window: %w", err)
		}

		if !window.ContainsWeekday(req.Date.Weekday()) {
			return ErrProfessorUnavailable
		}

		if err := checkSlotAlignment(window, req.StartTime); err != nil {
			return err
		}

		loc, err := window.Zone()
		if err != nil {
			return fmt.Errorf("load professor zone: %w", err)
		}

		startAt := composeInstant(req.Date, req.StartTime.Hour(), req.StartTime.Minute(), loc)
		endAt := startAt.Add(time.Duration(window.SlotDurationMinutes) * time.Minute)

		dayStart, dayEnd := dayBounds(req.Date, loc)
		booked, err := uc.reservations.ListByProfessorBetween(ctx, req.ProfessorID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("list day reservations: %w", err)
		}
		for _, r := range booked {
			if r.StartAt.Equal(startAt) {
				return ErrSlotNoLongerAvailable
			}
		}

		created, err = uc.reservations.Create(ctx, &domain.Reservation{
			ID:            uuid.NewString(),
			ProfessorID:   req.ProfessorID,
			StudentID:     req.StudentID,
			ProfessorName: professor.Name,
			StudentName:   req.StudentName,
			StartAt:       startAt,
			EndAt:         endAt,
			Note:          req.Note,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotNoLongerAvailable
			}
			return fmt.Errorf("create reservation: %w", err)
		}
		return nil
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrAvailabilityNotSet),
			errors.Is(txErr, ErrProfessorUnavailable),
			errors.Is(txErr, ErrInvalidSlot),
			errors.Is(txErr, ErrSlotNoLongerAvailable):
			return nil, txErr
		default:
			return nil, fmt.Errorf("%w: Execute - booking transaction: %v", ErrInternal, txErr)
		}
	}

	uc.logger.Info("[CreateReservation] booked | reservation_id: %s, professor_id: %s, student_id: %s, start_at: %s",
		created.ID, created.ProfessorID, created.StudentID, created.StartAt.Format(time.RFC3339))

	uc.waker.Wake(watch.ProfessorKey(created.ProfessorID))
	uc.waker.Wake(watch.StudentKey(created.StudentID))

	uc.publisher.PublishReservationCreated(ctx, events.ReservationCreated{
		ReservationID: created.ID,
		ProfessorID:   created.ProfessorID,
		StudentID:     created.StudentID,
		ProfessorName: created.ProfessorName,
		StudentName:   created.StudentName,
		StartAt:       created.StartAt,
		EndAt:         created.EndAt,
	})

	return &Response{Reservation: created}, nil
}
