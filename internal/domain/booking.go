package domain

import (
	"time"

	"github.com/yaday/YND-BookingService/pkg/types"
)

// Booking represents a confirmed appointment request at the salon.
// Bookings are append-only: once created they are never updated or deleted.
type Booking struct {
	ID       int64
	Nombre   string
	Email    string
	Telefono *string
	Servicio string // free text, not a reference into the service catalog
	Fecha    time.Time
	Hora     types.TimeString
	Mensaje  *string

	CreatedAt time.Time
}

// TelefonoOrDefault returns the phone number or a placeholder for notification texts
func (b *Booking) TelefonoOrDefault() string {
	if b.Telefono == nil || *b.Telefono == "" {
		return "No proporcionado"
	}
	return *b.Telefono
}

// StartsAt returns the appointment start as a time.Time in the given location
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	minutes, err := b.Hora.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(b.Fecha.Year(), b.Fecha.Month(), b.Fecha.Day(),
		minutes/60, minutes%60, 0, 0, loc), nil
}
