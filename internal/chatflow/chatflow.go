package chatflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaday/YND-BookingService/internal/domain"
)

// Step is one state of the conversational booking flow.
// The flow is strictly linear: welcome → service → date → time → name →
// email → phone → message → confirm → completed.
type Step string

const (
	StepWelcome   Step = "welcome"
	StepService   Step = "service"
	StepDate      Step = "date"
	StepTime      Step = "time"
	StepName      Step = "name"
	StepEmail     Step = "email"
	StepPhone     Step = "phone"
	StepMessage   Step = "message"
	StepConfirm   Step = "confirm"
	StepCompleted Step = "completed"
)

// EventType is the kind of client action applied to a flow state
type EventType string

const (
	EventStart   EventType = "start"   // welcome → service
	EventInput   EventType = "input"   // store the value of the current step, advance
	EventBack    EventType = "back"    // return to the predecessor, clearing the current field
	EventEdit    EventType = "edit"    // jump from confirm to an earlier step
	EventConfirm EventType = "confirm" // confirm → completed
	EventReset   EventType = "reset"   // abandon the flow, fresh welcome state
)

// Event is a single client action
type Event struct {
	Type   EventType `json:"type"`
	Value  string    `json:"value,omitempty"`  // input payload
	Target Step      `json:"target,omitempty"` // edit destination
}

// State is the full flow state. It lives on the client between requests:
// the server holds no session.
type State struct {
	Step     Step   `json:"step"`
	Servicio string `json:"servicio,omitempty"`
	Fecha    string `json:"fecha,omitempty"`
	Hora     string `json:"hora,omitempty"`
	Nombre   string `json:"nombre,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Mensaje  string `json:"mensaje,omitempty"`
}

var (
	// ErrUnknownEvent возвращается для события неизвестного типа
	ErrUnknownEvent = errors.New("chatflow: unknown event type")

	// ErrInvalidTransition возвращается для события, недопустимого в текущем шаге
	ErrInvalidTransition = errors.New("chatflow: invalid transition")

	// ErrEmptyInput возвращается для пустого значения на обязательном шаге
	ErrEmptyInput = errors.New("chatflow: empty input")
)

// previousStep карта предыдущих шагов для перехода "назад"
var previousStep = map[Step]Step{
	StepService: StepWelcome,
	StepDate:    StepService,
	StepTime:    StepDate,
	StepName:    StepTime,
	StepEmail:   StepName,
	StepPhone:   StepEmail,
	StepMessage: StepPhone,
	StepConfirm: StepMessage,
}

// nextStep карта следующих шагов для продвижения по вводу
var nextStep = map[Step]Step{
	StepService: StepDate,
	StepDate:    StepTime,
	StepTime:    StepName,
	StepName:    StepEmail,
	StepEmail:   StepPhone,
	StepPhone:   StepMessage,
	StepMessage: StepConfirm,
}

// optionalSteps шаги, где допустим пустой ввод
var optionalSteps = map[Step]bool{
	StepPhone:   true,
	StepMessage: true,
}

// stepPrompts сообщение бота при входе в шаг
var stepPrompts = map[Step]string{
	StepWelcome:   "¡Hola! 💅 Soy el asistente de reservas. ¿Quieres pedir una cita?",
	StepService:   "¿Qué servicio te gustaría reservar? Ofrecemos: " + strings.Join(domain.ServiceNames(), ", ") + ".",
	StepDate:      "¿Para qué fecha? (YYYY-MM-DD)",
	StepTime:      "¿A qué hora te viene bien?",
	StepName:      "¿Cómo te llamas?",
	StepEmail:     "¿Cuál es tu email?",
	StepPhone:     "¿Tu teléfono? (opcional, pulsa enviar para saltar)",
	StepMessage:   "¿Quieres dejar algún mensaje? (opcional)",
	StepConfirm:   "Revisa los datos de tu cita y confirma.",
	StepCompleted: "¡Reserva creada exitosamente! Te esperamos. ✨",
}

// NewState returns a fresh flow state at the welcome step
func NewState() State {
	return State{Step: StepWelcome}
}

// Prompt returns the bot message for a step
func Prompt(step Step) string {
	return stepPrompts[step]
}

// Apply applies an event to a state and returns the next state together with
// the prompt of the step being entered. The input state is never mutated.
func Apply(state State, ev Event) (State, string, error) {
	switch ev.Type {
	case EventReset:
		next := NewState()
		return next, Prompt(next.Step), nil

	case EventStart:
		if state.Step != StepWelcome {
			return state, "", fmt.Errorf("%w: start from %q", ErrInvalidTransition, state.Step)
		}
		state.Step = StepService
		return state, Prompt(StepService), nil

	case EventInput:
		return applyInput(state, strings.TrimSpace(ev.Value))

	case EventBack:
		return applyBack(state)

	case EventEdit:
		return applyEdit(state, ev.Target)

	case EventConfirm:
		if state.Step != StepConfirm {
			return state, "", fmt.Errorf("%w: confirm from %q", ErrInvalidTransition, state.Step)
		}
		state.Step = StepCompleted
		return state, Prompt(StepCompleted), nil

	default:
		return state, "", fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// applyInput сохраняет значение текущего шага и продвигает поток
func applyInput(state State, value string) (State, string, error) {
	next, ok := nextStep[state.Step]
	if !ok {
		return state, "", fmt.Errorf("%w: input at %q", ErrInvalidTransition, state.Step)
	}

	if value == "" && !optionalSteps[state.Step] {
		return state, "", fmt.Errorf("%w: step %q", ErrEmptyInput, state.Step)
	}

	setField(&state, state.Step, value)
	state.Step = next
	return state, Prompt(next), nil
}

// applyBack возвращает на предыдущий шаг, очищая поле покидаемого шага
func applyBack(state State) (State, string, error) {
	prev, ok := previousStep[state.Step]
	if !ok {
		return state, "", fmt.Errorf("%w: back from %q", ErrInvalidTransition, state.Step)
	}

	// Очищается только поле текущего шага: ранее введенные данные сохраняются
	setField(&state, state.Step, "")
	state.Step = prev
	return state, Prompt(prev), nil
}

// applyEdit переходит с шага подтверждения к любому более раннему шагу сбора данных
func applyEdit(state State, target Step) (State, string, error) {
	if state.Step != StepConfirm {
		return state, "", fmt.Errorf("%w: edit from %q", ErrInvalidTransition, state.Step)
	}
	if _, ok := nextStep[target]; !ok {
		return state, "", fmt.Errorf("%w: edit target %q", ErrInvalidTransition, target)
	}

	state.Step = target
	return state, Prompt(target), nil
}

// setField записывает значение в поле, принадлежащее шагу
func setField(state *State, step Step, value string) {
	switch step {
	case StepService:
		state.Servicio = value
	case StepDate:
		state.Fecha = value
	case StepTime:
		state.Hora = value
	case StepName:
		state.Nombre = value
	case StepEmail:
		state.Email = value
	case StepPhone:
		state.Telefono = value
	case StepMessage:
		state.Mensaje = value
	}
}
