package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaday/YND-BookingService/internal/domain"
	"github.com/yaday/YND-BookingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testNotifier(t *testing.T) *Notifier {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	return New("smtp.example.com", 587, "user", "pass",
		"noreply@yaday.es", "operator@yaday.es", "YaDay Nail Designer", loc, noopLogger{})
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:       7,
		Nombre:   "María García",
		Email:    "maria@example.com",
		Telefono: ptr.Ptr("+34612345678"),
		Servicio: "Manicura",
		Fecha:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Hora:     "10:30",
		Mensaje:  ptr.Ptr("Primera visita"),
	}
}

func TestBuildInvite(t *testing.T) {
	// UTC, чтобы проверять время в сериализованном виде буквально
	n := New("smtp.example.com", 587, "user", "pass",
		"noreply@yaday.es", "operator@yaday.es", "YaDay Nail Designer", time.UTC, noopLogger{})

	content, err := n.buildInvite(testBooking())
	require.NoError(t, err)

	assert.Contains(t, content, "BEGIN:VCALENDAR")
	assert.Contains(t, content, "METHOD:REQUEST")
	assert.Contains(t, content, "BEGIN:VEVENT")
	assert.Contains(t, content, "UID:booking-7@yaday")
	assert.Contains(t, content, "STATUS:CONFIRMED")
	// Событие на 1,5 часа: 10:30 → 12:00
	assert.Contains(t, content, "20251015T103000Z")
	assert.Contains(t, content, "20251015T120000Z")
	// Напоминание за час
	assert.Contains(t, content, "BEGIN:VALARM")
	assert.Contains(t, content, "TRIGGER:-PT1H")
	assert.Contains(t, content, "ACTION:DISPLAY")
}

func TestOperatorBody(t *testing.T) {
	n := testNotifier(t)

	body := n.operatorBody(testBooking())

	assert.Contains(t, body, "Nueva Reserva - YaDay Nail Designer")
	assert.Contains(t, body, "María García")
	assert.Contains(t, body, "maria@example.com")
	assert.Contains(t, body, "+34612345678")
	assert.Contains(t, body, "Manicura")
	assert.Contains(t, body, "2025-10-15")
	assert.Contains(t, body, "10:30")
	assert.Contains(t, body, "Primera visita")
}

func TestOperatorBody_NoOptionalFields(t *testing.T) {
	n := testNotifier(t)

	booking := testBooking()
	booking.Telefono = nil
	booking.Mensaje = nil

	body := n.operatorBody(booking)

	assert.Contains(t, body, "No proporcionado")
	assert.NotContains(t, body, "Mensaje:")
}

func TestClientBody(t *testing.T) {
	n := testNotifier(t)

	body := n.clientBody(testBooking())

	assert.Contains(t, body, "Hola María García")
	assert.Contains(t, body, "YaDay Nail Designer")
	assert.Contains(t, body, "Manicura")
	assert.Contains(t, body, "2025-10-15")
	assert.Contains(t, body, "10:30")
}

func TestName(t *testing.T) {
	assert.Equal(t, "email", testNotifier(t).Name())
}
