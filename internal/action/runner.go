// Package action drives user-triggered, side-effecting backend calls through
// an Idle -> Pending -> Settled lifecycle.
package action

import (
	"context"
	"fmt"
	"time"

	"botdash/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Call performs the remote operation.
type Call[T any] func(ctx context.Context) (*T, error)

// SettledMsg is delivered to the Bubble Tea update loop when a call returns.
type SettledMsg[T any] struct {
	Kind      Kind
	RequestID string
	Payload   *T
	Err       error
	Duration  time.Duration
}

// Outcome classifies the message.
func (m SettledMsg[T]) Outcome() Outcome {
	if m.Err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}

// Runner owns the status slot of a single action. It has no retry, timeout
// or cancellation: a call that never returns leaves the runner Pending.
type Runner[T any] struct {
	kind   Kind
	call   Call[T]
	status Status[T]
	newID  func() string
}

// NewRunner creates an idle runner for call.
func NewRunner[T any](kind Kind, call Call[T]) *Runner[T] {
	return &Runner[T]{kind: kind, call: call, newID: uuid.NewString}
}

// Status returns the current status.
func (r *Runner[T]) Status() Status[T] { return r.status }

// Invoke starts the call and returns the command that performs it. While an
// invocation is pending it returns nil and leaves the status untouched.
// Invoking from Settled discards the previous result.
func (r *Runner[T]) Invoke() tea.Cmd {
	if r.status.Pending() {
		return nil
	}
	id := r.newID()
	r.status = Status[T]{Phase: PhasePending, RequestID: id}
	kind, call := r.kind, r.call
	return func() tea.Msg {
		return run(kind, id, call)
	}
}

// Settle records the result of the pending invocation. Messages that do not
// belong to the pending invocation are ignored and false is returned.
func (r *Runner[T]) Settle(msg SettledMsg[T]) bool {
	if !r.status.Pending() || msg.Kind != r.kind || msg.RequestID != r.status.RequestID {
		return false
	}
	next := Status[T]{Phase: PhaseSettled, RequestID: msg.RequestID}
	if msg.Err != nil {
		next.Outcome = OutcomeError
		next.Message = msg.Err.Error()
	} else {
		next.Outcome = OutcomeSuccess
		next.Payload = msg.Payload
	}
	r.status = next
	return true
}

func run[T any](kind Kind, id string, call Call[T]) (msg SettledMsg[T]) {
	start := time.Now()
	msg = SettledMsg[T]{Kind: kind, RequestID: id}
	defer func() {
		if p := recover(); p != nil {
			msg.Payload = nil
			msg.Err = fmt.Errorf("%s: panic: %v", kind, p)
		}
		msg.Duration = time.Since(start)
	}()

	ctx := api.WithRequestID(context.Background(), id)
	payload, err := call(ctx)
	switch {
	case err != nil:
		msg.Err = err
	case payload == nil:
		msg.Err = api.ErrEmptyResponse
	default:
		msg.Payload = payload
	}
	return msg
}
