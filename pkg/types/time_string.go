package types

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"time"
)

// TimeString represents a time of day in "HH:MM" format
type TimeString string

var timeStringRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// NewTimeString creates a TimeString from a time.Time, truncating seconds
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString creates a TimeString from a raw string, validating the format
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value matches the "HH:MM" format
func (t TimeString) Validate() error {
	if !timeStringRegex.MatchString(string(t)) {
		return fmt.Errorf("invalid time string format: %q, expected HH:MM", string(t))
	}
	return nil
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" value
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the value as minutes since midnight
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("failed to parse time string %q: %w", string(t), err)
	}
	return h*60 + m, nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total = (total + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore returns true if t is strictly earlier than other.
// Lexicographic comparison is correct for the fixed-width "HH:MM" format.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer for storing in the database
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner for reading from the database
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}
