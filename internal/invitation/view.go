package invitation

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/invite/internal/rsvp"
	"github.com/rileyhilliard/invite/internal/session"
	"github.com/rileyhilliard/invite/internal/ui"
)

// Texts shown to guests.
const (
	TextStart        = "Iniciar Aquecimento do Core"
	TextHeating      = "Sistema Aquecendo..."
	TextHeatingSub   = "Analisando Transferência de Calor"
	TextOperational  = "Sistema Operacional!"
	TextInvited      = "Motor atingiu temperatura ideal. Você está oficialmente convidado para celebrar este marco especial."
	TextBack         = "← Voltar ao Início"
	TextRSVP         = "Confirmar Presença"
	TextRSVPHint     = "Confirmação essencial para calibração"
	TextModalTitle   = "Registrar Presença"
	TextModalSub     = "Preencha os dados no sistema"
	TextNameLabel    = "Nome Completo *"
	TextPhoneLabel   = "Telefone de Contato *"
	TextGuestsLabel  = "Total de Convidados (Incluindo você)"
	TextProcessing   = "Processando..."
	TextSubmitFailed = "⚠️ Falha de conexão. Tente novamente."
	TextRegistered   = "✓ Presença registrada"
	TextConfirmed    = "Sistema Confirmado!"
	TextSystemLog    = "Log do Sistema"
	TextAddCalendar  = "Adicionar ao Calendário"
	TextViewMap      = "Ver no Mapa"
	TextRestart      = "← Reiniciar Sistema"
)

// maxContentWidth keeps paragraphs readable on wide terminals.
const maxContentWidth = 72

// View renders the invitation.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return Placeholder
	}

	p := PaletteAt(m.state.ThemeProgress())

	if m.showHelp {
		return m.renderHelpOverlay(p)
	}
	if m.state.ModalOpen {
		return m.place(p, m.renderModal(p))
	}

	var content string
	switch m.state.Screen {
	case session.Welcome:
		content = m.renderWelcome(p)
	case session.Heating:
		content = m.renderHeating(p)
	case session.Details:
		content = m.renderDetails(p)
	case session.Confirmed:
		content = m.renderConfirmed(p)
	}

	return m.place(p, content)
}

// place centers content on a background painted with the theme.
func (m Model) place(p Palette, content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(p.Background),
	)
}

// contentWidth is the wrap width for paragraphs.
func (m Model) contentWidth() int {
	w := m.width - 10
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) paragraph(s string) string {
	return textStyle.Width(m.contentWidth()).Align(lipgloss.Center).Render(s)
}

func (m Model) footer(hints ...string) string {
	return mutedStyle.Render(strings.Join(hints, " · "))
}

func (m Model) renderWelcome(p Palette) string {
	d := m.details
	title := p.TitleStyle().Render(d.Honoree)
	course := p.SubtitleStyle().Render(d.Course)
	button := p.ButtonStyle(true).Render("🌡  " + TextStart)

	return lipgloss.JoinVertical(lipgloss.Center,
		"🎓",
		"",
		title,
		course,
		"",
		m.paragraph(d.Tagline),
		"",
		button,
		"",
		m.footer("enter iniciar", "? ajuda", "q sair"),
	)
}

// Temperature returns the displayed temperature, rounded like the gauge.
func Temperature(progress float64) string {
	return fmt.Sprintf("%d°C", int(math.Round(progress)))
}

func (m Model) renderHeating(p Palette) string {
	progress := m.state.Progress
	barWidth := m.contentWidth() - 4

	// Labels spread under the bar at 0/25/50/75/100%.
	labels := []string{"0%", "25%", "50%", "75%", "100%"}
	gap := (barWidth - 14) / 4
	if gap < 1 {
		gap = 1
	}
	scale := mutedStyle.Render(strings.Join(labels, strings.Repeat(" ", gap)))

	return lipgloss.JoinVertical(lipgloss.Center,
		p.TitleStyle().Render(TextHeating),
		p.SubtitleStyle().Render(TextHeatingSub),
		"",
		labelStyle.Render("🌡 "+Temperature(progress)),
		"",
		ui.RenderGradientBar(progress, barWidth, ui.TemperatureGradient),
		scale,
		"",
		textStyle.Render("⚙ "+session.HeatingStatus(progress)),
		"",
		m.footer("esc voltar", "q sair"),
	)
}

func (m Model) renderDetails(p Palette) string {
	d := m.details
	width := m.contentWidth()
	block := lipgloss.NewStyle().Width(width)

	var schedule []string
	for _, item := range d.Schedule {
		schedule = append(schedule, labelStyle.Render(item.Time)+textStyle.Render(" - "+item.Label))
	}

	var journey []string
	for _, ms := range d.Milestones {
		journey = append(journey, labelStyle.Render(ms.Year)+" "+textStyle.Render(ms.Label))
	}

	sections := []string{
		p.SectionStyle().Render("📅 Data & Dia"),
		textStyle.Render(d.DateLabel),
		"",
		p.SectionStyle().Render("🕒 Cronograma"),
		strings.Join(schedule, "\n"),
		"",
		p.SectionStyle().Render("📍 Coordenadas do Evento"),
		labelStyle.Render(d.Venue.Name),
		textStyle.Width(width).Render(d.Venue.Address),
		mutedStyle.Render(TextViewMap + ": " + d.Venue.MapsURL),
		"",
		p.SectionStyle().Render("Jornada Acadêmica"),
		strings.Join(journey, mutedStyle.Render(" ── ")),
	}

	lines := []string{
		mutedStyle.Render(TextBack + " (esc)"),
		"",
		p.TitleStyle().Render(TextOperational),
		m.paragraph(TextInvited),
		"",
		p.CardStyle().Render(block.Render(strings.Join(sections, "\n"))),
		"",
	}

	switch m.state.Status {
	case session.StatusSucceeded:
		lines = append(lines, successStyle.Render(TextRegistered))
	case session.StatusFailed:
		lines = append(lines, errorStyle.Render(TextSubmitFailed), m.footer("x fechar aviso"))
		fallthrough
	default:
		lines = append(lines,
			p.ButtonStyle(true).Render("✓ "+TextRSVP),
			mutedStyle.Render(TextRSVPHint))
	}

	lines = append(lines, "", m.footer("enter confirmar presença", "esc voltar", "q sair"))

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) renderModal(p Palette) string {
	errs := m.state.Errors
	inputWidth := m.contentWidth() - 12
	if inputWidth < 16 {
		inputWidth = 16
	}

	fieldError := func(f rsvp.Field) string {
		if msg := errs.Get(f); msg != "" {
			return errorStyle.Render(msg)
		}
		return ""
	}

	name := m.name
	name.Width = inputWidth
	phone := m.phone
	phone.Width = inputWidth

	guests := fmt.Sprintf("‹ %s ›", rsvp.GuestLabel(m.state.Record.Guests))
	guestStyle := p.InputStyle(m.focus == fieldGuests).Width(inputWidth + 2)

	var action string
	if m.state.Status == session.StatusPending {
		action = m.spinner.View() + " " + textStyle.Render(TextProcessing)
	} else {
		action = p.ButtonStyle(m.focus == fieldSubmit).Render("✓ " + TextRSVP)
	}

	lines := []string{
		p.TitleStyle().Render(TextModalTitle),
		mutedStyle.Render(TextModalSub),
		"",
		labelStyle.Render("👤 " + TextNameLabel),
		p.InputStyle(m.focus == fieldName).Render(name.View()),
		fieldError(rsvp.FieldName),
		labelStyle.Render("📞 " + TextPhoneLabel),
		p.InputStyle(m.focus == fieldPhone).Render(phone.View()),
		fieldError(rsvp.FieldPhone),
		labelStyle.Render(TextGuestsLabel),
		guestStyle.Render(guests),
		fieldError(rsvp.FieldGuests),
		action,
	}

	if m.state.Status == session.StatusFailed {
		lines = append(lines, "", errorStyle.Render(TextSubmitFailed))
	}

	lines = append(lines, "", m.footer("tab próximo campo", "enter confirmar", "esc fechar"))

	return p.ModalStyle().Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderConfirmed(p Palette) string {
	r := m.state.Submitted
	width := m.contentWidth()

	log := []string{
		p.SectionStyle().Render(TextSystemLog),
		successStyle.Render("✓ ") + textStyle.Render("Nome: "+r.Name),
		successStyle.Render("✓ ") + textStyle.Render("Telefone: "+r.Phone),
		successStyle.Render("✓ ") + textStyle.Render(fmt.Sprintf("Convidados: %d", r.Guests)),
		successStyle.Render("✓ ") + textStyle.Render("Status: CONFIRMADO"),
	}

	message := fmt.Sprintf("Parabéns, %s! Seu protocolo foi registrado. "+
		"Aguardo sua presença para a ativação final do evento.", r.Name)

	return lipgloss.JoinVertical(lipgloss.Center,
		successStyle.Render("✓ ★"),
		"",
		p.TitleStyle().Render(TextConfirmed),
		m.paragraph(message),
		"",
		p.CardStyle().Render(lipgloss.NewStyle().Width(width).Render(strings.Join(log, "\n"))),
		"",
		labelStyle.Render("📅 "+TextAddCalendar),
		mutedStyle.Render(m.details.Calendar.Link()),
		"",
		p.ButtonStyle(false).Render(TextRestart),
		"",
		m.footer("r reiniciar", "q sair"),
	)
}
