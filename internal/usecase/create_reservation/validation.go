package create_reservation

import (
	"fmt"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ProfessorID == "" {
		return fmt.Errorf("%w: professor id must not be empty", ErrInvalidInput)
	}
	if req.StudentID == "" {
		return fmt.Errorf("%w: student id must not be empty", ErrInvalidInput)
	}
	if req.StudentName == "" {
		return fmt.Errorf("%w: student name must not be empty", ErrInvalidInput)
	}
	if len(req.StudentName) > domain.MaxDisplayNameLength {
		return fmt.Errorf("%w: student name must not exceed %d characters", ErrInvalidInput, domain.MaxDisplayNameLength)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date must be set", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}
	return nil
}
