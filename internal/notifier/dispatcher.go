package notifier

import (
	"context"
	"time"

	"github.com/yaday/YND-BookingService/internal/domain"
	"github.com/yaday/YND-BookingService/pkg/metrics"
)

// Notifier исходящая интеграция, вызываемая после сохранения бронирования.
// Каждая интеграция независимо опциональна: незарегистрированный нотификатор
// просто не участвует в рассылке.
type Notifier interface {
	Name() string
	Send(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dispatcher рассылает уведомления по всем зарегистрированным нотификаторам.
// Рассылка fire-and-forget: одна попытка на нотификатор, без повторов,
// сбои логируются и не влияют на вызывающего.
type Dispatcher struct {
	notifiers []Notifier
	timeout   time.Duration
	metrics   *metrics.Metrics // может быть nil, если метрики выключены
	logger    Logger
}

// NewDispatcher создает диспетчер уведомлений
func NewDispatcher(timeout time.Duration, m *metrics.Metrics, logger Logger, notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{
		notifiers: notifiers,
		timeout:   timeout,
		metrics:   m,
		logger:    logger,
	}
}

// Dispatch запускает отправку по каждому нотификатору в отдельной горутине
// и возвращается немедленно. Контекст каждой отправки отвязан от запроса:
// ответ клиенту не ждет уведомлений.
func (d *Dispatcher) Dispatch(booking *domain.Booking) {
	if len(d.notifiers) == 0 {
		d.logger.Info("Dispatch: no notifiers configured, skipping for booking id=%d", booking.ID)
		return
	}

	for _, n := range d.notifiers {
		go d.send(n, booking)
	}
}

func (d *Dispatcher) send(n Notifier, booking *domain.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := n.Send(ctx, booking); err != nil {
		d.logger.Error("Dispatch: %s notification failed for booking id=%d: %v", n.Name(), booking.ID, err)
		d.count(n.Name(), "error")
		return
	}

	d.logger.Info("Dispatch: %s notification sent for booking id=%d", n.Name(), booking.ID)
	d.count(n.Name(), "ok")
}

func (d *Dispatcher) count(name, status string) {
	if d.metrics != nil {
		d.metrics.NotificationsTotal.WithLabelValues(name, status).Inc()
	}
}
