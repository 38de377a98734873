package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/invite/internal/config"
	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/event"
	"github.com/rileyhilliard/invite/internal/logger"
	"github.com/rileyhilliard/invite/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootOptions holds the global flags and the state loaded from them.
// Commands that need the config call load; the rest never touch disk.
type rootOptions struct {
	configPath string
	noColor    bool
	jsonOutput bool
	debug      bool

	// interactive reports whether prompts may be shown. Nil means
	// "stdin is a terminal".
	interactive func() bool

	env     *environment
	closers []func() error
}

// environment is everything a config-aware command gets from load.
type environment struct {
	cfg     *config.Config
	path    string
	details event.Details
	log     logger.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Kieran's graduation invitation, in your terminal",
		Long: `An animated graduation invitation.

Running invite with no arguments opens the full-screen invitation:
heat the core, read the event details, and confirm your presence.

Examples:
  invite
  invite rsvp --name "Ana Souza" --phone 51999999999 --guests 2
  invite theme --progress 50 --css
  invite links`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor || os.Getenv("NO_COLOR") != "" {
				ui.DisableColors()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runShow(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: .invite.yaml, searched upwards)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.jsonOutput, "json", false, "machine-readable JSON output")
	flags.BoolVar(&opts.debug, "debug", false, "write debug messages to the log file")

	cmd.AddCommand(
		newShowCmd(opts),
		newRSVPCmd(opts),
		newThemeCmd(opts),
		newLinksCmd(opts),
		newInitCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
		newCompletionCmd(),
	)

	return cmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	opts := &rootOptions{}
	err := newRootCmd(opts).ExecuteContext(ctx)
	opts.close()
	stop()

	if err != nil {
		reportError(os.Stdout, os.Stderr, opts.jsonOutput, err)
		os.Exit(1)
	}
}

// reportError prints err as a JSON envelope or as the structured error text.
func reportError(stdout, stderr io.Writer, jsonOutput bool, err error) {
	if jsonOutput {
		_ = WriteJSONFromError(stdout, err)
		return
	}
	if e, ok := err.(*errors.Error); ok {
		fmt.Fprint(stderr, e.Error())
		return
	}
	ui.PrintError(stderr, err.Error())
}

// load reads and validates the config, then opens the log file.
// The result is cached for the lifetime of the command.
func (o *rootOptions) load() (*environment, error) {
	if o.env != nil {
		return o.env, nil
	}

	cfg, path, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	details, err := cfg.Details()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Event dates don't parse",
			"Use YYYY-MM-DD for event.date and YYYY-MM-DD HH:MM for the calendar")
	}

	if !o.noColor {
		ui.ApplyColorMode(cfg.Output.Color)
	}

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = config.DefaultLogFile()
	}
	log, closeLog, err := logger.NewFile(logPath, "invite", o.debug || cfg.Log.Debug)
	if err != nil {
		// Best-effort: no log file means no logs.
		log = logger.Noop()
	} else {
		o.closers = append(o.closers, closeLog)
	}
	logger.SetDefault(log)

	if path != "" {
		log.Debug("loaded config from %s", path)
	} else {
		log.Debug("no config file found, using defaults")
	}

	o.env = &environment{cfg: cfg, path: path, details: details, log: log}
	return o.env, nil
}

// close releases the log file.
func (o *rootOptions) close() {
	for _, c := range o.closers {
		_ = c()
	}
	o.closers = nil
	logger.SetDefault(logger.Noop())
}

// canPrompt reports whether huh forms may run.
func (o *rootOptions) canPrompt() bool {
	if o.jsonOutput {
		return false
	}
	if o.interactive != nil {
		return o.interactive()
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
