package get_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaday/YND-BookingService/pkg/types"
)

type fakeRepo struct {
	occupied map[string][]types.TimeString
	err      error
	calls    []string
}

func (f *fakeRepo) GetOccupiedSlots(ctx context.Context, fecha string) ([]types.TimeString, error) {
	f.calls = append(f.calls, fecha)
	if f.err != nil {
		return nil, f.err
	}
	return f.occupied[fecha], nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{occupied: map[string][]types.TimeString{
		"2025-10-15": {"09:00", "12:00", "16:30"},
	}}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Fecha: "2025-10-15"})
	require.NoError(t, err)

	assert.Equal(t, "2025-10-15", resp.Fecha)
	assert.Equal(t, []types.TimeString{"09:00", "12:00", "16:30"}, resp.HorasOcupadas)
	assert.Equal(t, 3, resp.Total)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Fecha: "2025-10-16"})
	require.NoError(t, err)

	assert.Empty(t, resp.HorasOcupadas)
	assert.Equal(t, 0, resp.Total)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, noopLogger{})

	for _, fecha := range []string{"", "   "} {
		_, err := uc.Execute(context.Background(), &Request{Fecha: fecha})
		assert.ErrorIs(t, err, ErrMissingDate)
	}
}

func TestExecute_InvalidDateFormat(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, noopLogger{})

	tests := []string{"15-10-2025", "2025/10/15", "20251015", "hoy", "2025-1-5"}
	for _, fecha := range tests {
		t.Run(fecha, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{Fecha: fecha})
			assert.ErrorIs(t, err, ErrInvalidDateFormat)
		})
	}
}

// Проверяется только форма даты: несуществующий календарный день
// проходит до репозитория и отклоняется уже базой
func TestExecute_ImpossibleDatePassesShapeCheck(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Fecha: "2024-02-30"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-30"}, repo.calls)
	assert.Equal(t, 0, resp.Total)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection reset")}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Fecha: "2025-10-15"})
	assert.ErrorIs(t, err, ErrInternal)
}

// Чтение идемпотентно: повторный вызов дает тот же результат
func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeRepo{occupied: map[string][]types.TimeString{
		"2025-10-15": {"10:30"},
	}}
	uc := NewUseCase(repo, noopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Fecha: "2025-10-15"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Fecha: "2025-10-15"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
