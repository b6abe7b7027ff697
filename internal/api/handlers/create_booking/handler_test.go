package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/yaday/YND-BookingService/internal/usecase/create_booking"
	"github.com/yaday/YND-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"nombre": "María García",
	"email": "maria@example.com",
	"telefono": "+34612345678",
	"servicio": "Manicura",
	"fecha": "2025-10-15",
	"hora": "10:30"
}`

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:        7,
		Nombre:    "María García",
		Email:     "maria@example.com",
		Servicio:  "Manicura",
		Fecha:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Hora:      types.TimeString("10:30"),
		CreatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "Reserva creada exitosamente", resp.Message)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(7), resp.Booking.ID)
	assert.Equal(t, "2025-10-15", resp.Booking.Fecha)
	assert.Equal(t, "10:30", resp.Booking.Hora)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "missing fields", err: createBooking.ErrMissingFields, wantStatus: http.StatusBadRequest, wantMsg: "Faltan campos requeridos"},
		{name: "invalid email", err: createBooking.ErrInvalidEmail, wantStatus: http.StatusBadRequest, wantMsg: "Email inválido"},
		{name: "invalid phone", err: createBooking.ErrInvalidPhone, wantStatus: http.StatusBadRequest, wantMsg: "Teléfono inválido"},
		{name: "invalid date", err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest, wantMsg: "Fecha inválida"},
		{name: "invalid slot", err: createBooking.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest, wantMsg: "Hora inválida"},
		{name: "slot taken", err: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict, wantMsg: "La hora seleccionada ya no está disponible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: errors.New("db is down")}, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Error interno del servidor", body["error"])
	assert.Contains(t, body["details"], "db is down")
}
