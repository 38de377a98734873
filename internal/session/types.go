package session

import "time"

// Screen is the active step of the invitation. Exactly one is active at a time.
type Screen int

const (
	Welcome Screen = iota
	Heating
	Details
	Confirmed
)

// String returns a human-readable screen name.
func (s Screen) String() string {
	switch s {
	case Welcome:
		return "welcome"
	case Heating:
		return "heating"
	case Details:
		return "details"
	case Confirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// SubmissionStatus tracks the lifecycle of the one outbound RSVP request.
type SubmissionStatus int

const (
	StatusIdle SubmissionStatus = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

// String returns a human-readable status.
func (s SubmissionStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Timing holds the fixed durations of the flow.
type Timing struct {
	// Heat is how long the temperature takes to go from 0 to 100.
	Heat time.Duration
	// Hold is the pause at 100 before the details appear.
	Hold time.Duration
	// ConfirmDelay is the pause between a successful RSVP and the confirmation screen.
	ConfirmDelay time.Duration
}

// DefaultTiming returns the durations the invitation ships with.
func DefaultTiming() Timing {
	return Timing{
		Heat:         5 * time.Second,
		Hold:         time.Second,
		ConfirmDelay: time.Second,
	}
}

// HeatingStatus is the status line shown under the thermometer.
func HeatingStatus(progress float64) string {
	switch {
	case progress < 30:
		return "Inicializando subsistemas..."
	case progress < 60:
		return "Verificando integridade..."
	case progress < 90:
		return "Sincronizando protocolos..."
	default:
		return "Sistema operacional!"
	}
}
