package chatflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_HappyPath(t *testing.T) {
	state := NewState()
	assert.Equal(t, StepWelcome, state.Step)

	state, prompt, err := Apply(state, Event{Type: EventStart})
	require.NoError(t, err)
	assert.Equal(t, StepService, state.Step)
	assert.NotEmpty(t, prompt)

	inputs := []struct {
		value string
		next  Step
	}{
		{value: "Manicura", next: StepDate},
		{value: "2025-10-15", next: StepTime},
		{value: "10:30", next: StepName},
		{value: "María", next: StepEmail},
		{value: "maria@example.com", next: StepPhone},
		{value: "612345678", next: StepMessage},
		{value: "Primera visita", next: StepConfirm},
	}

	for _, in := range inputs {
		state, _, err = Apply(state, Event{Type: EventInput, Value: in.value})
		require.NoError(t, err)
		assert.Equal(t, in.next, state.Step)
	}

	assert.Equal(t, "Manicura", state.Servicio)
	assert.Equal(t, "2025-10-15", state.Fecha)
	assert.Equal(t, "10:30", state.Hora)
	assert.Equal(t, "María", state.Nombre)
	assert.Equal(t, "maria@example.com", state.Email)
	assert.Equal(t, "612345678", state.Telefono)
	assert.Equal(t, "Primera visita", state.Mensaje)

	state, prompt, err = Apply(state, Event{Type: EventConfirm})
	require.NoError(t, err)
	assert.Equal(t, StepCompleted, state.Step)
	assert.Equal(t, Prompt(StepCompleted), prompt)
}

func TestApply_OptionalStepsAcceptEmptyInput(t *testing.T) {
	state := State{Step: StepPhone, Nombre: "María"}

	state, _, err := Apply(state, Event{Type: EventInput, Value: ""})
	require.NoError(t, err)
	assert.Equal(t, StepMessage, state.Step)
	assert.Empty(t, state.Telefono)

	state, _, err = Apply(state, Event{Type: EventInput, Value: "  "})
	require.NoError(t, err)
	assert.Equal(t, StepConfirm, state.Step)
	assert.Empty(t, state.Mensaje)
}

func TestApply_RequiredStepRejectsEmptyInput(t *testing.T) {
	state := State{Step: StepName}

	_, _, err := Apply(state, Event{Type: EventInput, Value: "   "})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// Возврат очищает только поле покидаемого шага, остальные данные сохраняются
func TestApply_BackClearsOnlyCurrentField(t *testing.T) {
	state := State{
		Step:     StepTime,
		Servicio: "Manicura",
		Fecha:    "2025-10-15",
		Hora:     "10:30",
	}

	next, prompt, err := Apply(state, Event{Type: EventBack})
	require.NoError(t, err)

	assert.Equal(t, StepDate, next.Step)
	assert.Equal(t, Prompt(StepDate), prompt)
	assert.Empty(t, next.Hora)
	assert.Equal(t, "Manicura", next.Servicio)
	assert.Equal(t, "2025-10-15", next.Fecha)
}

func TestApply_BackFromFirstStepFails(t *testing.T) {
	_, _, err := Apply(NewState(), Event{Type: EventBack})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// Переход к правке с экрана подтверждения не очищает данные
func TestApply_EditFromConfirm(t *testing.T) {
	state := State{
		Step:     StepConfirm,
		Servicio: "Manicura",
		Fecha:    "2025-10-15",
		Hora:     "10:30",
		Nombre:   "María",
		Email:    "maria@example.com",
	}

	next, _, err := Apply(state, Event{Type: EventEdit, Target: StepDate})
	require.NoError(t, err)

	assert.Equal(t, StepDate, next.Step)
	assert.Equal(t, "2025-10-15", next.Fecha)
	assert.Equal(t, "María", next.Nombre)

	// Новый ввод перезаписывает поле и продвигает дальше
	next, _, err = Apply(next, Event{Type: EventInput, Value: "2025-10-20"})
	require.NoError(t, err)
	assert.Equal(t, StepTime, next.Step)
	assert.Equal(t, "2025-10-20", next.Fecha)
}

func TestApply_EditOutsideConfirmFails(t *testing.T) {
	state := State{Step: StepDate}

	_, _, err := Apply(state, Event{Type: EventEdit, Target: StepService})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApply_EditToNonCollectingStepFails(t *testing.T) {
	state := State{Step: StepConfirm}

	for _, target := range []Step{StepWelcome, StepConfirm, StepCompleted} {
		_, _, err := Apply(state, Event{Type: EventEdit, Target: target})
		assert.ErrorIs(t, err, ErrInvalidTransition, "target %s", target)
	}
}

func TestApply_ResetFromAnywhere(t *testing.T) {
	state := State{
		Step:     StepConfirm,
		Servicio: "Manicura",
		Nombre:   "María",
	}

	next, prompt, err := Apply(state, Event{Type: EventReset})
	require.NoError(t, err)

	assert.Equal(t, NewState(), next)
	assert.Equal(t, Prompt(StepWelcome), prompt)
}

func TestApply_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		state State
		event Event
	}{
		{name: "start mid-flow", state: State{Step: StepDate}, event: Event{Type: EventStart}},
		{name: "confirm too early", state: State{Step: StepName}, event: Event{Type: EventConfirm}},
		{name: "input at welcome", state: NewState(), event: Event{Type: EventInput, Value: "hola"}},
		{name: "input after completed", state: State{Step: StepCompleted}, event: Event{Type: EventInput, Value: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Apply(tt.state, tt.event)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestApply_UnknownEvent(t *testing.T) {
	_, _, err := Apply(NewState(), Event{Type: "jump"})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

// Подсказка шага выбора услуги перечисляет каталог салона
func TestPrompt_ServiceStepListsCatalog(t *testing.T) {
	prompt := Prompt(StepService)

	assert.Contains(t, prompt, "Manicura")
	assert.Contains(t, prompt, "Pedicura")
	assert.Contains(t, prompt, "Retiro de Material")
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	state := State{Step: StepService}

	_, _, err := Apply(state, Event{Type: EventInput, Value: "Pedicura"})
	require.NoError(t, err)

	assert.Equal(t, StepService, state.Step)
	assert.Empty(t, state.Servicio)
}
