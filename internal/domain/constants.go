package domain

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxNoteLength          = 500
	MaxLocationLength      = 200
	MaxDisplayNameLength   = 100
)

// DefaultTimezone is used when a professor has not configured a zone.
const DefaultTimezone = "Asia/Tokyo"

// Time format constants
const (
	TimeFormat       = "15:04"      // HH:MM
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	Display24Format  = "15:04"
	Display12Format  = "3:04 PM"
	DisplayDayFormat = "Mon, Jan 2 2006"
)

// WeekdayNames is the canonical ordering of weekday tags as stored on
// an availability window.
var WeekdayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
