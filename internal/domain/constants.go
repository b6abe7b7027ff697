package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxRecentBookings cap for the administrative listing
const MaxRecentBookings = 100

// AppointmentDurationMinutes fixed appointment length used for calendar events
// and email invites (1 hour 30 minutes)
const AppointmentDurationMinutes = 90

// Reminder offsets for calendar events, minutes before the appointment
const (
	ReminderEmailMinutes = 24 * 60
	ReminderPopupMinutes = 60
)
