package cli

import (
	"fmt"

	"github.com/rileyhilliard/invite/internal/config"
	"github.com/rileyhilliard/invite/internal/ui"
	"github.com/spf13/cobra"
)

// linksResult is the --json payload of the links command.
type linksResult struct {
	Maps     string   `json:"maps"`
	Calendar string   `json:"calendar"`
	Warnings []string `json:"warnings"`
}

func newLinksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "Print the map and add-to-calendar links",
		Long: `Print the venue map link and the Google Calendar link for the event.

Warns when the calendar entry and the date shown on the invitation disagree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}

			d := env.details
			res := linksResult{
				Maps:     d.Venue.MapsURL,
				Calendar: d.Calendar.Link(),
				Warnings: configWarnings(env),
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return WriteJSONSuccess(out, res)
			}

			fmt.Fprintf(out, "%s\n%s\n\n", d.Venue.Name, ui.MutedStyle().Render(d.Venue.Address))
			ui.PrintLink(out, "Ver no Mapa", res.Maps)
			ui.PrintLink(out, "Adicionar ao Calendário", res.Calendar)
			for _, w := range res.Warnings {
				ui.PrintWarning(cmd.ErrOrStderr(), w)
			}
			return nil
		},
	}
}

// configWarnings never returns nil so JSON output always has an array.
func configWarnings(env *environment) []string {
	warnings := []string{}
	for _, w := range config.Warnings(env.cfg) {
		env.log.Warn("%s", w)
		warnings = append(warnings, w)
	}
	return warnings
}
