package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
	reservationRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/reservation"
	"github.com/tuj-devs/officehours-service/internal/service/reservations/models"
	"github.com/tuj-devs/officehours-service/internal/watch"
)

// Service answers reservation queries. Reads degrade rather than fail:
// a list that cannot be fetched comes back empty, and a reservation is
// only shown to the student or professor it involves.
type Service struct {
	reservationRepo ReservationRepository
	settings        SettingsProvider
	hub             Hub
	logger          Logger
}

func NewService(
	reservationRepo ReservationRepository,
	settings SettingsProvider,
	hub Hub,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		settings:        settings,
		hub:             hub,
		logger:          logger,
	}
}

// GetByID fetches one reservation. Only the two involved users may see
// it.
func (s *Service) GetByID(ctx context.Context, reservationID, requesterID string) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !reservation.InvolvedUser(requesterID) {
		s.logger.Warn("GetByID: access denied for user=%s to reservation=%s", requesterID, reservationID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation, s.settings.Get(ctx, requesterID)), nil
}

// ListForStudent returns the student's reservations, ascending by
// start. Students only see their own list. With upcoming set, past
// reservations are filtered out. An unreadable store yields an empty
// list, never a phantom reservation.
func (s *Service) ListForStudent(ctx context.Context, studentID, requesterID string, upcoming bool) (*models.ReservationListResponse, error) {
	if requesterID != studentID {
		s.logger.Warn("ListForStudent: access denied for user=%s to student=%s list", requesterID, studentID)
		return nil, ErrAccessDenied
	}

	list, err := s.reservationRepo.ListByStudent(ctx, studentID, endAfter(upcoming))
	if err != nil {
		s.logger.Error("ListForStudent: repository error for student=%s, returning empty list: %v", studentID, err)
		list = nil
	}
	return models.FromDomainReservations(list, s.settings.Get(ctx, requesterID)), nil
}

// ListForProfessor returns the professor's reservations, ascending by
// start. Professors only see their own list.
func (s *Service) ListForProfessor(ctx context.Context, professorID, requesterID string, upcoming bool) (*models.ReservationListResponse, error) {
	if requesterID != professorID {
		s.logger.Warn("ListForProfessor: access denied for user=%s to professor=%s list", requesterID, professorID)
		return nil, ErrAccessDenied
	}

	list, err := s.reservationRepo.ListByProfessor(ctx, professorID, endAfter(upcoming))
	if err != nil {
		s.logger.Error("ListForProfessor: repository error for professor=%s, returning empty list: %v", professorID, err)
		list = nil
	}
	return models.FromDomainReservations(list, s.settings.Get(ctx, requesterID)), nil
}

// WatchStudent subscribes to live snapshots of the student's list.
// Each snapshot is the full current state, re-fetched on every wakeup;
// the upcoming cutoff is recomputed at fetch time.
func (s *Service) WatchStudent(ctx context.Context, studentID, requesterID string, upcoming bool) (*watch.Subscription, error) {
	if requesterID != studentID {
		s.logger.Warn("WatchStudent: access denied for user=%s to student=%s list", requesterID, studentID)
		return nil, ErrAccessDenied
	}

	fetch := func(ctx context.Context) ([]*domain.Reservation, error) {
		return s.reservationRepo.ListByStudent(ctx, studentID, endAfter(upcoming))
	}
	return s.hub.Subscribe(ctx, watch.StudentKey(studentID), fetch)
}

// WatchProfessor subscribes to live snapshots of the professor's list.
func (s *Service) WatchProfessor(ctx context.Context, professorID, requesterID string, upcoming bool) (*watch.Subscription, error) {
	if requesterID != professorID {
		s.logger.Warn("WatchProfessor: access denied for user=%s to professor=%s list", requesterID, professorID)
		return nil, ErrAccessDenied
	}

	fetch := func(ctx context.Context) ([]*domain.Reservation, error) {
		return s.reservationRepo.ListByProfessor(ctx, professorID, endAfter(upcoming))
	}
	return s.hub.Subscribe(ctx, watch.ProfessorKey(professorID), fetch)
}

// RenderList converts a snapshot into response models using the
// requester's display settings.
func (s *Service) RenderList(ctx context.Context, requesterID string, list []*domain.Reservation) *models.ReservationListResponse {
	return models.FromDomainReservations(list, s.settings.Get(ctx, requesterID))
}

func endAfter(upcoming bool) *time.Time {
	if !upcoming {
		return nil
	}
	now := time.Now()
	return &now
}
