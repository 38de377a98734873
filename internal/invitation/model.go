package invitation

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/invite/internal/event"
	"github.com/rileyhilliard/invite/internal/logger"
	"github.com/rileyhilliard/invite/internal/rsvp"
	"github.com/rileyhilliard/invite/internal/session"
	"github.com/rileyhilliard/invite/internal/ui"
)

// DefaultFrame is the interval between heating animation frames.
const DefaultFrame = 50 * time.Millisecond

// Placeholder is shown until the terminal size is known.
const Placeholder = "Carregando convite..."

// Submitter sends one RSVP. *rsvp.Client implements it.
type Submitter interface {
	Submit(ctx context.Context, r rsvp.Record) error
}

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	Details event.Details
	Timing  session.Timing
	// Frame is the heating animation frame interval.
	Frame time.Duration
	// SubmitTimeout bounds the RSVP request. Zero leaves it to the submitter.
	SubmitTimeout time.Duration
	Logger        logger.Logger
	Now           func() time.Time
}

// field is a focusable control in the RSVP modal.
type field int

const (
	fieldName field = iota
	fieldPhone
	fieldGuests
	fieldSubmit
	fieldCount
)

// Model is the Bubble Tea model for the invitation.
type Model struct {
	state     *session.State
	details   event.Details
	submitter Submitter
	log       logger.Logger
	now       func() time.Time

	frame         time.Duration
	submitTimeout time.Duration

	name    textinput.Model
	phone   textinput.Model
	focus   field
	spinner spinner.Model

	width    int
	height   int
	ready    bool
	quitting bool
	showHelp bool
}

// frameMsg is one heating animation frame.
type frameMsg struct {
	id int
	t  time.Time
}

// holdDoneMsg fires after the pause at 100%.
type holdDoneMsg struct {
	epoch int
}

// submitResultMsg carries the outcome of the RSVP request.
type submitResultMsg struct {
	epoch int
	err   error
}

// confirmMsg fires after the pause following a successful RSVP.
type confirmMsg struct {
	epoch int
}

// NewModel creates the invitation model on the welcome screen.
func NewModel(submitter Submitter, opts Options) Model {
	if opts.Timing == (session.Timing{}) {
		opts.Timing = session.DefaultTiming()
	}
	if opts.Frame <= 0 {
		opts.Frame = DefaultFrame
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Details.Honoree == "" {
		opts.Details = event.Default()
	}

	name := textinput.New()
	name.Placeholder = "Seu nome completo"
	name.CharLimit = 120
	name.Prompt = ""

	phone := textinput.New()
	phone.Placeholder = "(51) 99999-9999"
	phone.CharLimit = 15
	phone.Prompt = ""

	return Model{
		state:         session.New(opts.Timing),
		details:       opts.Details,
		submitter:     submitter,
		log:           opts.Logger,
		now:           opts.Now,
		frame:         opts.Frame,
		submitTimeout: opts.SubmitTimeout,
		name:          name,
		phone:         phone,
		spinner:       ui.NewBubblesSpinner(ui.ColorInfo),
	}
}

// State exposes the session for inspection.
func (m Model) State() *session.State {
	return m.state
}

// Init has nothing to start; the flow waits for the guest.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		_, cmd := m.HandleKeyMsg(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.log.Debug("terminal ready: %dx%d", msg.Width, msg.Height)
		}
		m.ready = true

	case frameMsg:
		applied, done := m.state.Advance(msg.id, msg.t)
		if !applied {
			return m, nil
		}
		if done {
			return m, m.holdCmd()
		}
		return m, m.frameCmd(msg.id)

	case holdDoneMsg:
		if m.state.FinishHeating(msg.epoch) {
			m.log.Debug("screen: %s", m.state.Screen)
		}

	case submitResultMsg:
		return m, m.handleSubmitResult(msg)

	case confirmMsg:
		if m.state.Confirm(msg.epoch) {
			m.log.Debug("screen: %s", m.state.Screen)
		}

	case spinner.TickMsg:
		if m.state.Status != session.StatusPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		// Cursor blink and other textinput internals
		return m, m.updateInputs(msg)
	}

	return m, nil
}

// start leaves the welcome screen and schedules the first frame.
func (m *Model) start() tea.Cmd {
	anim := m.state.Start(m.now())
	if anim == nil {
		return nil
	}
	m.log.Debug("screen: %s (animation %d)", m.state.Screen, anim.ID)
	return m.frameCmd(anim.ID)
}

// goBack returns to the welcome screen and clears the form.
func (m *Model) goBack() {
	m.state.Reset()
	m.name.SetValue("")
	m.phone.SetValue("")
	m.name.Blur()
	m.phone.Blur()
	m.focus = fieldName
	m.log.Debug("screen: %s (epoch %d)", m.state.Screen, m.state.Epoch)
}

// openRSVP shows the modal with the name field focused.
func (m *Model) openRSVP() tea.Cmd {
	if !m.state.OpenRSVP() {
		return nil
	}
	return m.setFocus(fieldName)
}

// submit validates and, when valid, issues exactly one request.
func (m *Model) submit() tea.Cmd {
	if !m.state.Submit() {
		if !m.state.Errors.Empty() {
			return m.setFocus(m.firstInvalidField())
		}
		return nil
	}

	epoch := m.state.Epoch
	record := m.state.Submitted
	submitter := m.submitter
	timeout := m.submitTimeout
	m.log.Info("submitting RSVP for %d guest(s)", record.Guests)

	request := func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return submitResultMsg{epoch: epoch, err: submitter.Submit(ctx, record)}
	}

	return tea.Batch(request, m.spinner.Tick)
}

func (m *Model) handleSubmitResult(msg submitResultMsg) tea.Cmd {
	if msg.err != nil {
		if m.state.SubmitFailed(msg.epoch, msg.err) {
			m.log.Error("RSVP failed: %v", msg.err)
		}
		return nil
	}

	if !m.state.SubmitSucceeded(msg.epoch) {
		return nil
	}
	m.log.Info("RSVP confirmed")
	m.name.Blur()
	m.phone.Blur()

	epoch := m.state.Epoch
	return tea.Tick(m.state.Timing().ConfirmDelay, func(time.Time) tea.Msg {
		return confirmMsg{epoch: epoch}
	})
}

// frameCmd schedules the next frame for animation id.
func (m Model) frameCmd(id int) tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg{id: id, t: t}
	})
}

// holdCmd schedules the move to the details screen.
func (m Model) holdCmd() tea.Cmd {
	epoch := m.state.Epoch
	return tea.Tick(m.state.Timing().Hold, func(time.Time) tea.Msg {
		return holdDoneMsg{epoch: epoch}
	})
}

// setFocus moves modal focus, focusing the matching text input.
func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.phone.Blur()
	switch f {
	case fieldName:
		return m.name.Focus()
	case fieldPhone:
		return m.phone.Focus()
	}
	return nil
}

func (m Model) firstInvalidField() field {
	switch {
	case m.state.Errors.Get(rsvp.FieldName) != "":
		return fieldName
	case m.state.Errors.Get(rsvp.FieldPhone) != "":
		return fieldPhone
	case m.state.Errors.Get(rsvp.FieldGuests) != "":
		return fieldGuests
	}
	return fieldSubmit
}

// updateInputs forwards a message to the focused text input and copies its
// value into the session. The phone is reformatted on every change.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
		m.state.SetName(m.name.Value())
	case fieldPhone:
		m.phone, cmd = m.phone.Update(msg)
		raw := m.phone.Value()
		if formatted := m.state.SetPhone(raw); formatted != raw {
			m.phone.SetValue(formatted)
			m.phone.CursorEnd()
			// SetValue cuts at CharLimit; keep the record equal to what is shown.
			m.state.SetPhone(m.phone.Value())
		}
	}
	return cmd
}
