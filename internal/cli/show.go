package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/invitation"
	"github.com/rileyhilliard/invite/internal/rsvp"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Open the full-screen invitation",
		Long: `Open the animated invitation. This is also what plain "invite" does.

Keys:
  enter/space  heat the core
  r            confirm presence
  esc/b        go back
  ?            show all shortcuts
  q            quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runShow(cmd)
		},
	}
}

func (o *rootOptions) runShow(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		return errors.New(errors.ErrUI,
			"The invitation needs an interactive terminal",
			"Use 'invite rsvp' to confirm your presence from a script or pipe")
	}

	env, err := o.load()
	if err != nil {
		return err
	}

	client := rsvp.NewClient(env.cfg.ClientConfig(), rsvp.WithLogger(env.log))
	model := invitation.NewModel(client, invitation.Options{
		Details:       env.details,
		Timing:        env.cfg.Timing(),
		Frame:         env.cfg.Animation.Frame,
		SubmitTimeout: env.cfg.RSVP.Timeout,
		Logger:        env.log,
	})

	env.log.Info("opening invitation")
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		if cmd.Context().Err() != nil {
			// Interrupted from outside; not a failure.
			return nil
		}
		env.log.Error("invitation crashed: %v", err)
		return errors.WrapWithCode(err, errors.ErrUI,
			"The invitation closed unexpectedly",
			"Try resizing the terminal or run with --debug and check the log file")
	}
	env.log.Info("invitation closed")
	return nil
}
