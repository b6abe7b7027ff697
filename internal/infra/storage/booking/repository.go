package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/yaday/YND-BookingService/internal/domain"
	"github.com/yaday/YND-BookingService/pkg/dbmetrics"
	"github.com/yaday/YND-BookingService/pkg/psqlbuilder"
	"github.com/yaday/YND-BookingService/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. id и created_at назначаются БД.
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Нарушение уникального индекса (fecha, hora) транслируется в ErrSlotTaken:
// это последний рубеж защиты от двойного бронирования, когда два запроса
// прошли проверку доступности одновременно.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"nombre",
			"email",
			"telefono",
			"servicio",
			"fecha",
			"hora",
			"mensaje",
		).
		Values(
			booking.Nombre,
			booking.Email,
			booking.Telefono,
			booking.Servicio,
			booking.Fecha,
			booking.Hora,
			booking.Mensaje,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetOccupiedSlots получает занятые временные слоты на указанную дату,
// отсортированные по возрастанию. fecha передается строкой YYYY-MM-DD:
// приведение к date выполняет PostgreSQL.
// Внутри транзакции добавляет FOR UPDATE: usecase создания бронирования
// блокирует строки даты на время проверки доступности.
func (r *Repository) GetOccupiedSlots(ctx context.Context, fecha string) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("hora").
		From("bookings").
		Where(squirrel.Eq{"fecha": fecha}).
		OrderBy("hora ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	horas := make([]types.TimeString, 0)
	for rows.Next() {
		var hora types.TimeString
		if err := rows.Scan(&hora); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedSlots - scan hora: %v", ErrScanRow, err)
		}
		horas = append(horas, hora)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - rows error: %v", ErrScanRow, err)
	}

	return horas, nil
}

// ListRecent получает последние бронирования, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"nombre",
		"email",
		"telefono",
		"servicio",
		"fecha",
		"hora",
		"mensaje",
		"created_at",
	).
		From("bookings").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Nombre,
			&booking.Email,
			&booking.Telefono,
			&booking.Servicio,
			&booking.Fecha,
			&booking.Hora,
			&booking.Mensaje,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
