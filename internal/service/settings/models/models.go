package models

import "github.com/tuj-devs/officehours-service/internal/domain"

// UpdateSettingsRequest replaces a user's display settings wholesale.
type UpdateSettingsRequest struct {
	Timezone string `json:"timezone"`
	Is24Hour bool   `json:"is24Hour"`
}

// SettingsResponse carries a user's display settings.
type SettingsResponse struct {
	UserID   string `json:"userId"`
	Timezone string `json:"timezone"`
	Is24Hour bool   `json:"is24Hour"`
}

// FromDomainSettings converts domain settings to the response model.
func FromDomainSettings(s *domain.UserSettings) *SettingsResponse {
	return &SettingsResponse{
		UserID:   s.UserID,
		Timezone: s.Timezone,
		Is24Hour: s.Is24Hour,
	}
}
