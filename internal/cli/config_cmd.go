package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/invite/internal/config"
	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or edit the configuration",
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one value in the config file",
		Long: `Set a dotted key in the config file, keeping its comments and layout.

The file is validated afterwards and left untouched if the new value is rejected.

Examples:
  invite config set rsvp.endpoint https://formspree.io/f/abcd1234
  invite config set animation.duration 3s
  invite config set event.venue.name "Casa de Festas"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runConfigSet(cmd, args[0], args[1])
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults and environment overrides are applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return WriteJSONSuccess(out, map[string]interface{}{"path": env.path, "config": env.cfg})
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(env.cfg); err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig, "Failed to render config", "")
			}
			return enc.Close()
		},
	}

	cmd.AddCommand(setCmd, showCmd)
	return cmd
}

func (o *rootOptions) runConfigSet(cmd *cobra.Command, key, value string) error {
	path, err := config.Find(o.configPath)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Config file not found",
			"Run 'invite init' to create one")
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			"Check file permissions")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't set %s", key),
			"Keys are dotted paths like rsvp.endpoint or event.venue.name")
	}

	cfg, err := config.Load(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		if restoreErr := os.WriteFile(path, original, 0o644); restoreErr != nil {
			return errors.WrapWithCode(restoreErr, errors.ErrConfig,
				"Failed to restore config file after a rejected value: "+path,
				"Check the file by hand")
		}
		return err
	}

	if o.jsonOutput {
		return WriteJSONSuccess(cmd.OutOrStdout(), map[string]string{"path": path, "key": key, "value": value})
	}
	ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Set %s in %s", key, path))
	for _, w := range config.Warnings(cfg) {
		ui.PrintWarning(cmd.ErrOrStderr(), w)
	}
	return nil
}
