package invitation

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/invite/internal/rsvp"
	"github.com/rileyhilliard/invite/internal/session"
)

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyStart      = "enter"
	KeyStartAlt   = " "
	KeyStartSpace = "space"
	KeyBack       = "esc"
	KeyBackAlt    = "b"
	KeyRSVP       = "r"
	KeyRestart    = "r"
	KeyNextField  = "tab"
	KeyPrevField  = "shift+tab"
	KeyFieldDown  = "down"
	KeyFieldUp    = "up"
	KeySubmit     = "enter"
	KeyDismiss    = "x"
	KeyGuestsLess = "left"
	KeyGuestsMore = "right"
	KeyGuestsDec  = "-"
	KeyGuestsInc  = "+"
	KeyToggleHelp = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == KeyQuitAlt {
		m.quitting = true
		return true, tea.Quit
	}

	// The modal captures everything else so typing "q" or "r" is just text.
	if m.state.ModalOpen {
		return m.handleModalKey(msg)
	}

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyBack {
		m.showHelp = false
		return true, nil
	}

	if key == KeyQuit {
		m.quitting = true
		return true, tea.Quit
	}

	switch m.state.Screen {
	case session.Welcome:
		if key == KeyStart || key == KeyStartAlt || key == KeyStartSpace {
			return true, m.start()
		}

	case session.Heating:
		if key == KeyBack || key == KeyBackAlt {
			m.goBack()
			return true, nil
		}

	case session.Details:
		switch key {
		case KeyBack, KeyBackAlt:
			m.goBack()
			return true, nil
		case KeyRSVP, KeySubmit:
			return true, m.openRSVP()
		case KeyDismiss:
			m.state.DismissError()
			return true, nil
		}

	case session.Confirmed:
		switch key {
		case KeyRestart, KeyBack, KeyBackAlt:
			m.goBack()
			return true, nil
		}
	}

	return false, nil
}

// handleModalKey handles keys while the RSVP modal is open.
func (m *Model) handleModalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	switch key {
	case KeyBack:
		m.state.CloseRSVP()
		m.name.Blur()
		m.phone.Blur()
		return true, nil

	case KeyNextField, KeyFieldDown:
		return true, m.setFocus((m.focus + 1) % fieldCount)

	case KeyPrevField, KeyFieldUp:
		return true, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case KeySubmit:
		if m.focus == fieldSubmit {
			return true, m.submit()
		}
		// Enter in a field moves on, like tabbing through a form.
		return true, m.setFocus(m.focus + 1)
	}

	// Nothing is editable while the request is in flight.
	if !m.state.Editable() {
		return true, nil
	}

	// Text fields get every other key.
	if m.focus == fieldName || m.focus == fieldPhone {
		return true, m.updateInputs(msg)
	}

	switch key {
	case KeyDismiss:
		m.state.DismissError()
		return true, nil
	case KeyGuestsLess, KeyGuestsDec:
		if m.focus == fieldGuests {
			m.stepGuests(-1)
		}
		return true, nil
	case KeyGuestsMore, KeyGuestsInc:
		if m.focus == fieldGuests {
			m.stepGuests(1)
		}
		return true, nil
	}

	return false, nil
}

// stepGuests moves the guest selector, staying within the offered options.
func (m *Model) stepGuests(delta int) {
	n := m.state.Record.Guests + delta
	if n < rsvp.MinGuests {
		n = rsvp.MinGuests
	}
	if n > rsvp.MaxGuests {
		n = rsvp.MaxGuests
	}
	m.state.SetGuests(n)
}
