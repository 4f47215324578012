package models

import (
	"fmt"
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/pkg/types"
)

// SetAvailabilityRequest replaces a professor's office-hours window
// wholesale.
type SetAvailabilityRequest struct {
	DaysOfWeek          []string `json:"daysOfWeek"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	Location            string   `json:"location"`
	Timezone            string   `json:"timezone,omitempty"`
}

// AvailabilityResponse carries a professor's office-hours window.
type AvailabilityResponse struct {
	ProfessorID         string    `json:"professorId"`
	DaysOfWeek          []string  `json:"daysOfWeek"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	Location            string    `json:"location"`
	Timezone            string    `json:"timezone"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ToDomainWindow converts the request into a domain window for the
// given professor. Day tags are normalized, times parsed as HH:MM.
func (r *SetAvailabilityRequest) ToDomainWindow(professorID string) (*domain.AvailabilityWindow, error) {
	days, err := domain.NormalizeDays(r.DaysOfWeek)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	timezone := r.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	return &domain.AvailabilityWindow{
		ProfessorID:         professorID,
		DaysOfWeek:          days,
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: r.SlotDurationMinutes,
		Location:            r.Location,
		Timezone:            timezone,
	}, nil
}

// FromDomainWindow converts a domain window to the response model.
func FromDomainWindow(w *domain.AvailabilityWindow) *AvailabilityResponse {
	return &AvailabilityResponse{
		ProfessorID:         w.ProfessorID,
		DaysOfWeek:          w.DaysOfWeek,
		StartTime:           w.StartTime.String(),
		EndTime:             w.EndTime.String(),
		SlotDurationMinutes: w.SlotDurationMinutes,
		Location:            w.Location,
		Timezone:            w.Timezone,
		CreatedAt:           w.CreatedAt,
		UpdatedAt:           w.UpdatedAt,
	}
}
