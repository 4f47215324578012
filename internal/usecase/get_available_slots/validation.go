package get_available_slots

import "fmt"

func validateRequest(req *Request) error {
	if req.ProfessorID == "" {
		return fmt.Errorf("%w: professor id must not be empty", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date must be set", ErrInvalidInput)
	}
	return nil
}
