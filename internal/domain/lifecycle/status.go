package lifecycle

import (
	"fmt"
	"time"

	"gestao_servicos/internal/domain/entities"
)

// InvalidStatusError is returned when an update explicitly writes a status
// outside the ServiceStatus enum.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid service status %q", e.Value)
}

// Kind classifies the error for callers that branch on error families.
func (e *InvalidStatusError) Kind() string { return "validation" }

func (e *InvalidStatusError) Unwrap() error { return entities.ErrValidation }

// Event is what a patch does to the scheduling dates of a service.
type Event string

const (
	EventNone         Event = ""
	EventCompleted    Event = "completed"
	EventStarted      Event = "started"
	EventStartCleared Event = "start_cleared"
)

type transitionKey struct {
	from  entities.ServiceStatus
	event Event
}

// Completion is terminal regardless of the current status; start events only
// move between pendente and em_andamento.
var transitions = map[transitionKey]entities.ServiceStatus{
	{entities.ServiceStatusPendente, EventCompleted}:       entities.ServiceStatusConcluido,
	{entities.ServiceStatusEmAndamento, EventCompleted}:    entities.ServiceStatusConcluido,
	{entities.ServiceStatusConcluido, EventCompleted}:      entities.ServiceStatusConcluido,
	{entities.ServiceStatusPendente, EventStarted}:         entities.ServiceStatusEmAndamento,
	{entities.ServiceStatusEmAndamento, EventStartCleared}: entities.ServiceStatusPendente,
}

// Transition is one legal inferred status change.
type Transition struct {
	From  entities.ServiceStatus
	Event Event
	To    entities.ServiceStatus
}

// Transitions lists every inferred transition the resolver can produce.
func Transitions() []Transition {
	out := make([]Transition, 0, len(transitions))
	for _, from := range []entities.ServiceStatus{
		entities.ServiceStatusPendente,
		entities.ServiceStatusEmAndamento,
		entities.ServiceStatusConcluido,
	} {
		for _, ev := range []Event{EventCompleted, EventStarted, EventStartCleared} {
			if to, ok := transitions[transitionKey{from, ev}]; ok {
				out = append(out, Transition{From: from, Event: ev, To: to})
			}
		}
	}
	return out
}

// EventOf derives the scheduling event of a patch. Completion takes precedence
// over start changes made in the same update. A zero date is not an event.
func EventOf(p ServicePatch) Event {
	switch {
	case hasDate(p.CompletedDate):
		return EventCompleted
	case hasDate(p.StartDate):
		return EventStarted
	case p.StartDate.IsClear():
		return EventStartCleared
	default:
		return EventNone
	}
}

func hasDate(f Field[time.Time]) bool {
	v, ok := f.Value()
	return ok && !v.IsZero()
}

// Resolution is the outcome of ResolveStatus. Changed is false when the final
// payload must not carry an inferred status.
type Resolution struct {
	Status  entities.ServiceStatus
	Changed bool
}

// ResolveStatus infers the status a patch implies for a service currently in
// status current.
//
// An explicit status in the patch always wins and yields an unchanged
// resolution; it is only validated against the enum.
func ResolveStatus(current entities.ServiceStatus, p ServicePatch) (Resolution, error) {
	if p.Status.Present() {
		v, ok := p.Status.Value()
		if !ok || !v.Valid() {
			return Resolution{}, &InvalidStatusError{Value: string(v)}
		}
		return Resolution{}, nil
	}

	ev := EventOf(p)
	if ev == EventNone {
		return Resolution{}, nil
	}
	to, ok := transitions[transitionKey{current, ev}]
	if !ok {
		return Resolution{}, nil
	}
	return Resolution{Status: to, Changed: true}, nil
}
