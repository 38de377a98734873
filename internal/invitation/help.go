package invitation

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "Enter / Espaço", Desc: "Iniciar aquecimento"},
	{Key: "Enter / r", Desc: "Confirmar presença"},
	{Key: "Tab / Shift+Tab", Desc: "Próximo / anterior campo"},
	{Key: "← / →", Desc: "Número de convidados"},
	{Key: "x", Desc: "Fechar aviso de erro"},
	{Key: "Esc / b", Desc: "Voltar ao início / fechar"},
	{Key: "r", Desc: "Reiniciar sistema"},
	{Key: "q / Ctrl+C", Desc: "Sair"},
	{Key: "?", Desc: "Mostrar / esconder ajuda"},
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay(p Palette) string {
	titleStyle := lipgloss.NewStyle().Foreground(p.Accent).Bold(true).MarginBottom(1)
	keyStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true).Width(18)
	descStyle := lipgloss.NewStyle().Foreground(ColorTextSecondary)

	var lines []string
	lines = append(lines, titleStyle.Render("Atalhos"))

	for _, binding := range helpBindings {
		lines = append(lines, keyStyle.Render(binding.Key)+descStyle.Render(binding.Desc))
	}

	lines = append(lines, "", mutedStyle.Render("? para fechar"))

	box := p.ModalStyle().Render(strings.Join(lines, "\n"))
	return m.place(p, box)
}
