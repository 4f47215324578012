package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuj-devs/officehours-service/internal/domain"
	availabilityRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/availability"
)

type UseCase struct {
	availability AvailabilityRepository
	reservations ReservationRepository
	logger       Logger
}

func NewUseCase(availability AvailabilityRepository, reservations ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		reservations: reservations,
		logger:       logger,
	}
}

// Execute produces the open slots of one professor for one calendar
// date. A professor without a configured window yields an empty list
// with WindowSet=false. A failure to read existing reservations also
// yields an empty list: a slot must never be offered while its
// occupancy is unknown.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	resp := &Response{
		ProfessorID: req.ProfessorID,
		Date:        req.Date.Format(domain.DateFormat),
		Slots:       []domain.Slot{},
	}

	window, err := uc.availability.GetByProfessor(ctx, req.ProfessorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("%w: Execute - get availability window: %v", ErrInternal, err)
	}

	resp.WindowSet = true
	resp.Timezone = window.Timezone
	resp.Location = window.Location
	resp.SlotDurationMinutes = window.SlotDurationMinutes

	loc, err := window.Zone()
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - load professor zone: %v", ErrInternal, err)
	}

	slots, err := generateSlots(window, req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - generate slots: %v", ErrInternal, err)
	}
	if len(slots) == 0 {
		return resp, nil
	}

	dayStart, dayEnd := dayBounds(req.Date, loc)
	booked, err := uc.reservations.ListByProfessorBetween(ctx, req.ProfessorID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Warn("[GetAvailableSlots] reservations unreadable, offering no slots | professor_id: %s, date: %s, error: %v",
			req.ProfessorID, resp.Date, err)
		return resp, nil
	}

	resp.Slots = filterBooked(slots, booked)
	return resp, nil
}
