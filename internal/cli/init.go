package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/invite/internal/config"
	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const configHeader = `# invite configuration
# Every value below is the default; delete what you don't change.
# Environment variables override it, e.g. INVITE_RSVP_ENDPOINT.

`

// initOptions holds options for the init command.
type initOptions struct {
	force bool
	// confirm asks before overwriting. Nil uses a huh prompt.
	confirm func(path string) (bool, error)
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	iopts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .invite.yaml configuration",
		Long: `Write a .invite.yaml with the default invitation, ready to edit.

The file is written to --config when given, otherwise to the current directory.

Examples:
  invite init
  invite init --force
  invite init --config ~/.config/invite/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runInit(cmd, iopts)
		},
	}

	cmd.Flags().BoolVarP(&iopts.force, "force", "f", false, "overwrite existing config")

	return cmd
}

func (o *rootOptions) runInit(cmd *cobra.Command, iopts *initOptions) error {
	path := o.configPath
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !iopts.force {
		if !o.canPrompt() {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		confirm := iopts.confirm
		if confirm == nil {
			confirm = confirmOverwrite
		}
		overwrite, err := confirm(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	data, err := defaultConfigYAML()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to create config directory: "+dir,
				"Check directory permissions")
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}

	if o.jsonOutput {
		return WriteJSONSuccess(out, map[string]string{"path": path})
	}

	ui.PrintSuccess(out, "Created "+path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  invite config set event.venue.name \"Your venue\"")
	fmt.Fprintln(out, "  invite links")
	fmt.Fprintln(out, "  invite")
	return nil
}

// defaultConfigYAML renders the default config with a short header.
func defaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}
