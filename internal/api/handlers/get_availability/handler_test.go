package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/yaday/YND-BookingService/internal/usecase/get_availability"
	"github.com/yaday/YND-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc GetAvailabilityUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		Fecha:         "2025-10-15",
		HorasOcupadas: []types.TimeString{"09:00", "12:00"},
		Total:         2,
	}}

	rec := doRequest(t, uc, "/api/v1/availability?fecha=2025-10-15")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2025-10-15", resp.Fecha)
	assert.Equal(t, []string{"09:00", "12:00"}, resp.HorasOcupadas)
	assert.Equal(t, 2, resp.Total)
}

// Свободный день сериализуется пустым массивом, а не null
func TestHandle_EmptyDaySerializesEmptyArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		Fecha:         "2025-10-16",
		HorasOcupadas: nil,
		Total:         0,
	}}

	rec := doRequest(t, uc, "/api/v1/availability?fecha=2025-10-16")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"horasOcupadas":[]`)
}

func TestHandle_MissingDate(t *testing.T) {
	uc := &fakeUseCase{err: getAvailability.ErrMissingDate}

	rec := doRequest(t, uc, "/api/v1/availability")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Fecha requerida", body["error"])
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	uc := &fakeUseCase{err: getAvailability.ErrInvalidDateFormat}

	rec := doRequest(t, uc, "/api/v1/availability?fecha=15-10-2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: getAvailability.ErrInternal}

	rec := doRequest(t, uc, "/api/v1/availability?fecha=2025-10-15")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
