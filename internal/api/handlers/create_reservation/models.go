package create_reservation

import (
	"fmt"
	"time"

	"github.com/tuj-devs/officehours-service/internal/api/middleware"
	"github.com/tuj-devs/officehours-service/internal/domain"
	createReservation "github.com/tuj-devs/officehours-service/internal/usecase/create_reservation"
	"github.com/tuj-devs/officehours-service/pkg/types"
)

// CreateReservationRequest books one slot. The slot is named by date
// and start time in the professor's zone; the caller's identity comes
// from headers, never from here.
type CreateReservationRequest struct {
	ProfessorID string  `json:"professorId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	Note        *string `json:"note,omitempty"`
}

// ReservationResponse carries the committed reservation.
type ReservationResponse struct {
	ID            string    `json:"id"`
	ProfessorID   string    `json:"professorId"`
	StudentID     string    `json:"studentId"`
	ProfessorName string    `json:"professorName"`
	StudentName   string    `json:"studentName"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUseCaseRequest parses the wire model into the use case request.
func (r *CreateReservationRequest) ToUseCaseRequest(identity middleware.Identity) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}
	return &createReservation.Request{
		ProfessorID: r.ProfessorID,
		StudentID:   identity.UserID,
		StudentName: identity.Name,
		Date:        date,
		StartTime:   start,
		Note:        r.Note,
	}, nil
}

// FromDomainReservation converts the committed reservation to the
// HTTP model.
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            res.ID,
		ProfessorID:   res.ProfessorID,
		StudentID:     res.StudentID,
		ProfessorName: res.ProfessorName,
		StudentName:   res.StudentName,
		StartAt:       res.StartAt,
		EndAt:         res.EndAt,
		Note:          res.Note,
		CreatedAt:     res.CreatedAt,
	}
}
