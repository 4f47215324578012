package domain

import "time"

// UserSettings are per-device display preferences. They affect only
// how instants are rendered in responses, never which instants get
// committed.
type UserSettings struct {
	UserID   string `json:"userId"`
	Timezone string `json:"timezone"`
	Is24Hour bool   `json:"is24Hour"`
}

// DisplayLocation loads the settings zone, falling back to UTC when
// unset or unknown.
func (s *UserSettings) DisplayLocation() *time.Location {
	if s == nil || s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatInstant renders t in the settings zone and clock style.
func (s *UserSettings) FormatInstant(t time.Time) string {
	layout := Display12Format
	if s == nil || s.Is24Hour {
		layout = Display24Format
	}
	return t.In(s.DisplayLocation()).Format(layout)
}
