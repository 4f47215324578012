package availability

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/availability"
	professorRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/professor"
	"github.com/tuj-devs/officehours-service/internal/service/availability/models"
)

// Service manages professors' office-hours windows.
type Service struct {
	availabilityRepo AvailabilityRepository
	professorRepo    ProfessorRepository
	logger           Logger
}

func NewService(
	availabilityRepo AvailabilityRepository,
	professorRepo ProfessorRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		professorRepo:    professorRepo,
		logger:           logger,
	}
}

// Set replaces the professor's window wholesale. Professors can only
// edit their own window, and the professor must already have a
// directory entry. Replacing the window never touches reservations
// booked under the previous one.
func (s *Service) Set(ctx context.Context, requesterID, professorID string, req *models.SetAvailabilityRequest) (*models.AvailabilityResponse, error) {
	if requesterID != professorID {
		s.logger.Warn("Set: user=%s attempted to edit availability of professor=%s", requesterID, professorID)
		return nil, ErrAccessDenied
	}

	window, err := req.ToDomainWindow(professorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	if _, err := s.professorRepo.GetByID(ctx, professorID); err != nil {
		if errors.Is(err, professorRepo.ErrProfessorNotFound) {
			s.logger.Warn("Set: professor=%s has no directory entry", professorID)
			return nil, ErrProfessorNotFound
		}
		s.logger.Error("Set: repository error for professor=%s: %v", professorID, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	stored, err := s.availabilityRepo.Upsert(ctx, window)
	if err != nil {
		s.logger.Error("Set: failed to store window for professor=%s: %v", professorID, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: stored window for professor=%s, days=%v, %s-%s every %dmin",
		professorID, stored.DaysOfWeek, stored.StartTime, stored.EndTime, stored.SlotDurationMinutes)
	return models.FromDomainWindow(stored), nil
}

// Get returns the professor's configured window.
func (s *Service) Get(ctx context.Context, professorID string) (*models.AvailabilityResponse, error) {
	window, err := s.availabilityRepo.GetByProfessor(ctx, professorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return nil, ErrAvailabilityNotSet
		}
		s.logger.Error("Get: repository error for professor=%s: %v", professorID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWindow(window), nil
}
