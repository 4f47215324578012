package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/tuj-devs/officehours-service/internal/usecase/get_available_slots"
)

// SlotResponse is one bookable interval as absolute instants.
type SlotResponse struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// AvailableSlotsResponse carries the open slots of one professor for
// one calendar date.
type AvailableSlotsResponse struct {
	ProfessorID         string         `json:"professorId"`
	Date                string         `json:"date"`
	Timezone            string         `json:"timezone,omitempty"`
	Location            string         `json:"location,omitempty"`
	SlotDurationMinutes int            `json:"slotDurationMinutes,omitempty"`
	WindowSet           bool           `json:"windowSet"`
	Slots               []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		ProfessorID:         resp.ProfessorID,
		Date:                resp.Date,
		Timezone:            resp.Timezone,
		Location:            resp.Location,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		WindowSet:           resp.WindowSet,
		Slots:               make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{StartAt: s.StartAt, EndAt: s.EndAt})
	}
	return out
}
