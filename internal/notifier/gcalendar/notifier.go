package gcalendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/yaday/YND-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier создает событие в Google Calendar через сервисный аккаунт
type Notifier struct {
	jwtConfig  *jwt.Config
	calendarID string
	salonName  string
	location   *time.Location
	log        Logger
}

// New создает календарный нотификатор. Приватный ключ приходит из
// конфигурации с экранированными переводами строк.
func New(calendarID, serviceAccountEmail, privateKey, salonName string, loc *time.Location, log Logger) *Notifier {
	cfg := &jwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(strings.ReplaceAll(privateKey, `\n`, "\n")),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	return &Notifier{
		jwtConfig:  cfg,
		calendarID: calendarID,
		salonName:  salonName,
		location:   loc,
		log:        log,
	}
}

// Name возвращает имя нотификатора для логов и метрик
func (n *Notifier) Name() string {
	return "gcalendar"
}

// Send вставляет событие на 1,5 часа с напоминаниями за сутки (email)
// и за час (popup)
func (n *Notifier) Send(ctx context.Context, booking *domain.Booking) error {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(n.jwtConfig.Client(ctx)))
	if err != nil {
		return fmt.Errorf("gcalendar: failed to create calendar service: %w", err)
	}

	event, err := n.buildEvent(booking)
	if err != nil {
		return fmt.Errorf("gcalendar: failed to build event: %w", err)
	}

	created, err := svc.Events.Insert(n.calendarID, event).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gcalendar: failed to insert event: %w", err)
	}

	n.log.Info("Send: calendar event created id=%s for booking id=%d", created.Id, booking.ID)
	return nil
}

func (n *Notifier) buildEvent(b *domain.Booking) (*calendar.Event, error) {
	start, err := b.StartsAt(n.location)
	if err != nil {
		return nil, err
	}
	end := start.Add(domain.AppointmentDurationMinutes * time.Minute)

	description := fmt.Sprintf("Cliente: %s\nEmail: %s\nTeléfono: %s\nServicio: %s",
		b.Nombre, b.Email, b.TelefonoOrDefault(), b.Servicio)
	if b.Mensaje != nil {
		description += fmt.Sprintf("\nMensaje: %s", *b.Mensaje)
	}

	return &calendar.Event{
		Summary:     fmt.Sprintf("💅 %s - %s", b.Servicio, b.Nombre),
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: n.location.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: n.location.String(),
		},
		Attendees: []*calendar.EventAttendee{
			{Email: b.Email, DisplayName: b.Nombre},
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: domain.ReminderEmailMinutes},
				{Method: "popup", Minutes: domain.ReminderPopupMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ColorId: "11",
	}, nil
}
