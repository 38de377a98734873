package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/invite/internal/theme"
	"github.com/rileyhilliard/invite/internal/ui"
	"github.com/spf13/cobra"
)

// themeResult is the --json payload of the theme command.
type themeResult struct {
	Progress float64       `json:"progress"`
	Tokens   []theme.Token `json:"tokens"`
}

func newThemeCmd(opts *rootOptions) *cobra.Command {
	var (
		progress float64
		css      bool
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the colour tokens for a temperature",
		Long: `Print the interpolated colour tokens at a given heating progress (0-100).

Values outside the range are clamped.

Examples:
  invite theme
  invite theme --progress 62.5
  invite theme --progress 100 --css > theme.css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := theme.Clamp(progress)
			colors := theme.InterpolateTheme(p)
			tokens := colors.Tokens()
			out := cmd.OutOrStdout()

			switch {
			case opts.jsonOutput:
				return WriteJSONSuccess(out, themeResult{Progress: p, Tokens: tokens})
			case css:
				writeCSS(out, tokens)
				return nil
			}

			bar := ui.RenderProgressBar(p, 30, lipgloss.Color(colors.Primary.Hex()))
			fmt.Fprintf(out, "Temperatura %s\n\n", bar)
			rows := make([][]string, len(tokens))
			for i, t := range tokens {
				rows[i] = []string{t.Name, t.Value, t.Hex}
			}
			fmt.Fprintln(out, ui.RenderSimpleTable([]ui.TableColumn{
				{Title: "Token", Width: 18},
				{Title: "Value", Width: 24},
				{Title: "Hex", Width: 8},
			}, rows))
			return nil
		},
	}

	cmd.Flags().Float64Var(&progress, "progress", 0, "heating progress from 0 to 100")
	cmd.Flags().BoolVar(&css, "css", false, "print a :root block of CSS custom properties")

	return cmd
}

// writeCSS prints tokens as CSS custom properties.
func writeCSS(w io.Writer, tokens []theme.Token) {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, t := range tokens {
		fmt.Fprintf(&b, "  %s: %s;\n", t.Name, t.Value)
	}
	b.WriteString("}\n")
	fmt.Fprint(w, b.String())
}
