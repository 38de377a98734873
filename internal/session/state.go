// Package session holds the invitation's session state and the rules for
// moving between screens. It has no notion of terminals or timers: callers
// feed it user actions, animation frames and request results, and schedule
// the delays it asks for.
package session

import (
	"time"

	"github.com/rileyhilliard/invite/internal/rsvp"
)

// State is the whole mutable session. It is owned by the top-level UI model
// and only mutated through its methods.
type State struct {
	Screen    Screen
	ModalOpen bool
	Progress  float64
	Record    rsvp.Record
	Submitted rsvp.Record
	Errors    rsvp.FieldErrors
	Status    SubmissionStatus
	LastError error

	// Epoch increases on every reset. Delayed transitions and request results
	// carry the epoch they were started in and are dropped if it changed.
	Epoch int

	timing     Timing
	anim       *Animation
	nextAnimID int
}

// New creates a session on the welcome screen.
func New(timing Timing) *State {
	return &State{
		Screen: Welcome,
		Record: rsvp.NewRecord(),
		Status: StatusIdle,
		timing: timing,
	}
}

// Timing returns the configured durations.
func (s *State) Timing() Timing {
	return s.timing
}

// Animation returns the current heating animation, if any.
func (s *State) Animation() *Animation {
	return s.anim
}

// ThemeProgress is the value the theme follows: the live temperature while
// welcoming or heating, fully hot afterwards.
func (s *State) ThemeProgress() float64 {
	switch s.Screen {
	case Welcome, Heating:
		return s.Progress
	default:
		return 100
	}
}

// Start leaves the welcome screen and begins heating from 0.
// It returns the new animation, or nil when not on the welcome screen.
func (s *State) Start(now time.Time) *Animation {
	if s.Screen != Welcome {
		return nil
	}
	s.cancelAnimation()
	s.nextAnimID++
	s.anim = newAnimation(s.nextAnimID, now, s.timing.Heat)
	s.Progress = 0
	s.Screen = Heating
	return s.anim
}

// Advance applies an animation frame sampled at now. Frames for a stale,
// canceled or finished animation are ignored (applied is false). done is true
// on the frame that reaches 100.
func (s *State) Advance(id int, now time.Time) (applied, done bool) {
	a := s.anim
	if s.Screen != Heating || a == nil || a.ID != id || !a.Active() {
		return false, false
	}
	s.Progress = a.Progress(now)
	if s.Progress >= 100 {
		a.finished = true
		return true, true
	}
	return true, false
}

// FinishHeating moves from heating to details once the animation completed.
func (s *State) FinishHeating(epoch int) bool {
	if epoch != s.Epoch || s.Screen != Heating || s.anim == nil || !s.anim.Finished() {
		return false
	}
	s.anim = nil
	s.Screen = Details
	return true
}

// OpenRSVP opens the RSVP modal over the details screen.
func (s *State) OpenRSVP() bool {
	if s.Screen != Details || s.Status == StatusSucceeded {
		return false
	}
	s.ModalOpen = true
	return true
}

// CloseRSVP closes the modal. Entered data is kept.
func (s *State) CloseRSVP() {
	s.ModalOpen = false
}

// Editable reports whether the record may change. It is frozen while a
// request is in flight.
func (s *State) Editable() bool {
	return s.Status != StatusPending
}

// SetName updates the name field.
func (s *State) SetName(name string) {
	if s.Editable() {
		s.Record.Name = name
	}
}

// SetPhone formats and stores the phone field, returning the stored value.
func (s *State) SetPhone(raw string) string {
	if s.Editable() {
		s.Record.Phone = rsvp.FormatPhone(raw)
	}
	return s.Record.Phone
}

// SetGuests updates the guest count. Range is enforced by validation.
func (s *State) SetGuests(n int) {
	if s.Editable() {
		s.Record.Guests = n
	}
}

// Submit validates the record. On failure the field errors are stored and
// false is returned; on success the record is copied to Submitted, the status
// becomes pending and the caller must issue exactly one request for
// Submitted, reporting back with SubmitSucceeded or SubmitFailed using the
// current Epoch.
func (s *State) Submit() bool {
	if !s.ModalOpen || s.Status == StatusPending {
		return false
	}
	s.Errors = rsvp.Validate(s.Record)
	if !s.Errors.Empty() {
		return false
	}
	s.LastError = nil
	s.Submitted = s.Record
	s.Status = StatusPending
	return true
}

// SubmitSucceeded records a 2xx answer and closes the modal.
// The caller schedules Confirm after Timing().ConfirmDelay.
func (s *State) SubmitSucceeded(epoch int) bool {
	if epoch != s.Epoch || s.Status != StatusPending {
		return false
	}
	s.Status = StatusSucceeded
	s.ModalOpen = false
	return true
}

// SubmitFailed records a failed request. The record and the modal are left
// as they are so the guest can retry.
func (s *State) SubmitFailed(epoch int, err error) bool {
	if epoch != s.Epoch || s.Status != StatusPending {
		return false
	}
	s.Status = StatusFailed
	s.LastError = err
	return true
}

// DismissError hides the failure banner.
func (s *State) DismissError() {
	if s.Status == StatusFailed {
		s.Status = StatusIdle
		s.LastError = nil
	}
}

// Confirm shows the confirmation screen after a successful submission.
func (s *State) Confirm(epoch int) bool {
	if epoch != s.Epoch || s.Status != StatusSucceeded || s.Screen != Details {
		return false
	}
	s.Screen = Confirmed
	return true
}

// Reset returns to the welcome screen with a fresh record, canceling any
// running animation and invalidating pending delays and responses.
func (s *State) Reset() {
	s.cancelAnimation()
	s.Screen = Welcome
	s.ModalOpen = false
	s.Progress = 0
	s.Record = rsvp.NewRecord()
	s.Submitted = rsvp.Record{}
	s.Errors = nil
	s.Status = StatusIdle
	s.LastError = nil
	s.Epoch++
}

func (s *State) cancelAnimation() {
	if s.anim != nil {
		s.anim.Cancel()
		s.anim = nil
	}
}
