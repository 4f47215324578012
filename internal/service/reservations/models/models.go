package models

import (
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// ReservationResponse carries one reservation. StartAt and EndAt are
// the authoritative instants; the display fields are rendered in the
// requester's configured zone and clock style and carry no meaning
// beyond presentation.
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
	DisplayDay    string    `json:"displayDay"`
	DisplayStart  string    `json:"displayStart"`
	DisplayEnd    string    `json:"displayEnd"`
}

// ReservationListResponse carries a reservation listing, ascending by
// start instant.
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// FromDomainReservation renders one reservation with the given display
// settings.
func FromDomainReservation(r *domain.Reservation, settings *domain.UserSettings) *ReservationResponse {
	loc := settings.DisplayLocation()
	return &ReservationResponse{
		ID:            r.ID,
		ProfessorID:   r.ProfessorID,
		StudentID:     r.StudentID,
		ProfessorName: r.ProfessorName,
		StudentName:   r.StudentName,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt,
		Note:          r.Note,
		CreatedAt:     r.CreatedAt,
		DisplayDay:    r.StartAt.In(loc).Format(domain.DisplayDayFormat),
		DisplayStart:  settings.FormatInstant(r.StartAt),
		DisplayEnd:    settings.FormatInstant(r.EndAt),
	}
}

// FromDomainReservations renders a listing.
func FromDomainReservations(list []*domain.Reservation, settings *domain.UserSettings) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]*ReservationResponse, 0, len(list)),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r, settings))
	}
	return resp
}
