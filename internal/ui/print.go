package ui

import (
	"fmt"
	"io"
)

// PrintSuccess writes a green checkmark line.
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", SuccessStyle().Render(SymbolSuccess), msg)
}

// PrintWarning writes a yellow warning line.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", WarningStyle().Render(SymbolWarning), msg)
}

// PrintError writes a red failure line.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle().Render(SymbolFail), msg)
}

// PrintLink writes a labelled URL.
func PrintLink(w io.Writer, label, url string) {
	fmt.Fprintf(w, "%s %s\n  %s\n", InfoStyle().Render(SymbolLink), label, MutedStyle().Render(url))
}
