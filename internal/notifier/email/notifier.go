package email

import (
	"context"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	gomail "gopkg.in/gomail.v2"

	"github.com/yaday/YND-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier отправляет два письма на каждую заявку: уведомление оператору
// и подтверждение клиенту с календарным вложением (.ics)
type Notifier struct {
	dialer     *gomail.Dialer
	from       string
	operatorTo string
	salonName  string
	location   *time.Location
	log        Logger
}

// New создает email-нотификатор
func New(host string, port int, user, password, from, operatorTo, salonName string, loc *time.Location, log Logger) *Notifier {
	return &Notifier{
		dialer:     gomail.NewDialer(host, port, user, password),
		from:       from,
		operatorTo: operatorTo,
		salonName:  salonName,
		location:   loc,
		log:        log,
	}
}

// Name возвращает имя нотификатора для логов и метрик
func (n *Notifier) Name() string {
	return "email"
}

// Send отправляет оба письма одним SMTP-соединением
func (n *Notifier) Send(ctx context.Context, booking *domain.Booking) error {
	icsContent, err := n.buildInvite(booking)
	if err != nil {
		return fmt.Errorf("email: failed to build calendar invite: %w", err)
	}

	operatorMsg := n.buildOperatorMessage(booking)
	clientMsg := n.buildClientMessage(booking, icsContent)

	if err := n.dialer.DialAndSend(operatorMsg, clientMsg); err != nil {
		return fmt.Errorf("email: failed to send messages: %w", err)
	}
	return nil
}

// buildInvite собирает iCalendar-вложение: событие на 1,5 часа
// с напоминанием за час до визита
func (n *Notifier) buildInvite(b *domain.Booking) (string, error) {
	start, err := b.StartsAt(n.location)
	if err != nil {
		return "", err
	}
	end := start.Add(domain.AppointmentDurationMinutes * time.Minute)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId(fmt.Sprintf("-//%s//ES", n.salonName))
	cal.SetCalscale("GREGORIAN")

	event := cal.AddEvent(fmt.Sprintf("booking-%d@yaday", b.ID))
	event.SetDtStampTime(time.Now())
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(fmt.Sprintf("💅 %s - %s", b.Servicio, n.salonName))
	event.SetDescription(fmt.Sprintf("Cita para %s\nCliente: %s", b.Servicio, b.Nombre))
	event.SetLocation(n.salonName)
	event.SetStatus(ics.ObjectStatusConfirmed)
	event.SetSequence(0)

	alarm := event.AddAlarm()
	alarm.SetAction(ics.ActionDisplay)
	alarm.SetTrigger("-PT1H")

	return cal.Serialize(), nil
}

// buildOperatorMessage письмо-уведомление оператору салона
func (n *Notifier) buildOperatorMessage(b *domain.Booking) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.operatorTo)
	m.SetHeader("Subject", fmt.Sprintf("✨ Nueva Reserva - %s", n.salonName))
	m.SetBody("text/html", n.operatorBody(b))
	return m
}

// buildClientMessage письмо-подтверждение клиенту с календарным вложением
func (n *Notifier) buildClientMessage(b *domain.Booking, icsContent string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", b.Email)
	m.SetHeader("Subject", fmt.Sprintf("💅 Confirmación de tu cita - %s", n.salonName))
	m.SetBody("text/html", n.clientBody(b))
	m.Attach("cita.ics", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write([]byte(icsContent))
		return err
	}))
	return m
}

func (n *Notifier) operatorBody(b *domain.Booking) string {
	mensaje := ""
	if b.Mensaje != nil {
		mensaje = fmt.Sprintf("<p><strong>💬 Mensaje:</strong> %s</p>", *b.Mensaje)
	}

	return fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif;">
<h1 style="color: #991142;">✨ Nueva Reserva - %s</h1>
<p>¡Hola! Has recibido una nueva solicitud de cita:</p>
<div style="background-color: #FFE0E9; border-left: 4px solid #991142; padding: 20px; border-radius: 8px;">
<p><strong>👤 Cliente:</strong> %s</p>
<p><strong>📧 Email:</strong> %s</p>
<p><strong>📱 Teléfono:</strong> %s</p>
<p><strong>💅 Servicio:</strong> %s</p>
<p><strong>📅 Fecha:</strong> %s</p>
<p><strong>🕒 Hora:</strong> %s</p>
%s</div>
</body></html>`,
		n.salonName, b.Nombre, b.Email, b.TelefonoOrDefault(), b.Servicio,
		b.Fecha.Format(domain.DateFormat), b.Hora, mensaje)
}

func (n *Notifier) clientBody(b *domain.Booking) string {
	return fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif;">
<h1 style="color: #991142;">💅 ¡Tu cita está confirmada!</h1>
<p>Hola %s, gracias por reservar con %s. Estos son los datos de tu cita:</p>
<div style="background-color: #FFE0E9; border-left: 4px solid #991142; padding: 20px; border-radius: 8px;">
<p><strong>💅 Servicio:</strong> %s</p>
<p><strong>📅 Fecha:</strong> %s</p>
<p><strong>🕒 Hora:</strong> %s</p>
</div>
<p>Adjuntamos una invitación de calendario para que no se te olvide. 😉</p>
<p>Si necesitas cambiar tu cita, responde a este email.</p>
</body></html>`,
		b.Nombre, n.salonName, b.Servicio, b.Fecha.Format(domain.DateFormat), b.Hora)
}
