package chat_step

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaday/YND-BookingService/internal/chatflow"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/step", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_StartFromEmptyState(t *testing.T) {
	rec := doRequest(t, `{"event": {"type": "start"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ChatStepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, chatflow.StepService, resp.State.Step)
	assert.Equal(t, chatflow.Prompt(chatflow.StepService), resp.Prompt)
}

func TestHandle_InputAdvancesFlow(t *testing.T) {
	body := `{
		"state": {"step": "service"},
		"event": {"type": "input", "value": "Manicura"}
	}`

	rec := doRequest(t, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ChatStepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, chatflow.StepDate, resp.State.Step)
	assert.Equal(t, "Manicura", resp.State.Servicio)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_EmptyInputOnRequiredStep(t *testing.T) {
	body := `{
		"state": {"step": "name"},
		"event": {"type": "input", "value": ""}
	}`

	rec := doRequest(t, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Este campo es obligatorio", resp["error"])
}

func TestHandle_InvalidTransition(t *testing.T) {
	body := `{
		"state": {"step": "date"},
		"event": {"type": "confirm"}
	}`

	rec := doRequest(t, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Acción no válida en este paso", resp["error"])
}

func TestHandle_UnknownEvent(t *testing.T) {
	body := `{
		"state": {"step": "date"},
		"event": {"type": "teleport"}
	}`

	rec := doRequest(t, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Tipo de evento desconocido", resp["error"])
}
