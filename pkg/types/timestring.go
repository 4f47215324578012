package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" format.
// It carries no date and no zone; composing it into an absolute
// instant is the caller's job.
type TimeString string

var (
	// ErrInvalidTimeString is returned for values not in HH:MM form
	ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

	// ErrTimeOutOfRange is returned when a value leaves the 24-hour day
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// NewTimeString creates a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// minutes parses the value into minutes since midnight.
// "24:00" is accepted as an exclusive end-of-day bound.
func (t TimeString) minutes() (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, string(t))
	}
	return h*60 + m, nil
}

// Validate checks the "HH:MM" format and that the value is a valid
// time of day (00:00 .. 23:59).
func (t TimeString) Validate() error {
	min, err := t.minutes()
	if err != nil {
		return err
	}
	if min >= 24*60 {
		return fmt.Errorf("%w: %q", ErrTimeOutOfRange, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// AddMinutes returns the time n minutes later. The result may be the
// exclusive bound "24:00" but never beyond it.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	min, err := t.minutes()
	if err != nil {
		return "", err
	}
	min += n
	if min < 0 || min > 24*60 {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOutOfRange, string(t), n)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", min/60, min%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Hour returns the hour component.
func (t TimeString) Hour() int {
	min, err := t.minutes()
	if err != nil {
		return 0
	}
	return min / 60
}

// Minute returns the minute component.
func (t TimeString) Minute() int {
	min, err := t.minutes()
	if err != nil {
		return 0
	}
	return min % 60
}

func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer so the type can be written directly.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner so the type can be read directly.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
	return nil
}
