package action

// Kind names one of the dashboard's one-shot remote operations.
type Kind string

const (
	KindWebhook      Kind = "webhook"
	KindUsersboxTest Kind = "usersbox_test"
)

// Phase is the lifecycle position of an action: Idle -> Pending -> Settled.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Outcome is how a settled invocation ended. It is OutcomeNone until settled.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the presentable state of one action. Payload is set only for a
// successful settle, Message only for a failed one.
type Status[T any] struct {
	Phase     Phase
	Outcome   Outcome
	Payload   *T
	Message   string
	RequestID string
}

// Pending reports whether an invocation is in flight.
func (s Status[T]) Pending() bool { return s.Phase == PhasePending }

// Settled reports whether the last invocation has completed.
func (s Status[T]) Settled() bool { return s.Phase == PhaseSettled }
