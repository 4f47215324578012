package professors

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/internal/service/professors/models"
)

// Service manages the professor directory.
type Service struct {
	professorRepo ProfessorRepository
	logger        Logger
}

func NewService(professorRepo ProfessorRepository, logger Logger) *Service {
	return &Service{
		professorRepo: professorRepo,
		logger:        logger,
	}
}

// UpsertProfile creates or replaces a professor's directory entry.
// Professors can only edit their own entry.
func (s *Service) UpsertProfile(ctx context.Context, requesterID, professorID string, req *models.UpsertProfileRequest) (*models.ProfessorResponse, error) {
	if requesterID != professorID {
		s.logger.Warn("UpsertProfile: user=%s attempted to edit profile of professor=%s", requesterID, professorID)
		return nil, ErrAccessDenied
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if len(name) > domain.MaxDisplayNameLength {
		return nil, fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxDisplayNameLength)
	}

	professor, err := s.professorRepo.Upsert(ctx, &domain.Professor{
		ID:    professorID,
		Name:  name,
		Email: strings.TrimSpace(req.Email),
	})
	if err != nil {
		s.logger.Error("UpsertProfile: repository error for professor=%s: %v", professorID, err)
		return nil, fmt.Errorf("%w: UpsertProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertProfile: stored profile for professor=%s", professorID)
	return models.FromDomainProfessor(professor), nil
}

// List returns the directory listing, ascending by name.
func (s *Service) List(ctx context.Context) (*models.ProfessorListResponse, error) {
	professors, err := s.professorRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfessors(professors), nil
}
