package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/yaday/YND-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier отправляет WhatsApp-сообщение оператору салона через Twilio
type Notifier struct {
	client    *twilio.RestClient
	from      string
	to        string
	salonName string
	log       Logger
}

// New создает WhatsApp-нотификатор
func New(accountSID, authToken, from, to, salonName string, log Logger) *Notifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &Notifier{
		client:    client,
		from:      from,
		to:        to,
		salonName: salonName,
		log:       log,
	}
}

// Name возвращает имя нотификатора для логов и метрик
func (n *Notifier) Name() string {
	return "whatsapp"
}

// Send отправляет сообщение о новой заявке на номер оператора
func (n *Notifier) Send(ctx context.Context, booking *domain.Booking) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo(n.to)
	params.SetBody(n.buildMessage(booking))

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("whatsapp: failed to send message: %w", err)
	}
	return nil
}

// buildMessage собирает текст уведомления для оператора
func (n *Notifier) buildMessage(b *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🎉 *Nueva Reserva %s!*\n\n", n.salonName)
	fmt.Fprintf(&sb, "👤 *Nombre:* %s\n", b.Nombre)
	fmt.Fprintf(&sb, "📧 *Email:* %s\n", b.Email)
	fmt.Fprintf(&sb, "📞 *Teléfono:* %s\n", b.TelefonoOrDefault())
	fmt.Fprintf(&sb, "💅 *Servicio:* %s\n", b.Servicio)
	fmt.Fprintf(&sb, "📅 *Fecha:* %s\n", b.Fecha.Format(domain.DateFormat))
	fmt.Fprintf(&sb, "🕐 *Hora:* %s\n", b.Hora)
	if b.Mensaje != nil {
		fmt.Fprintf(&sb, "\n💬 *Mensaje:* %s\n", *b.Mensaje)
	}
	fmt.Fprintf(&sb, "\n---\n_Notificación automática de %s_", n.salonName)

	return sb.String()
}
