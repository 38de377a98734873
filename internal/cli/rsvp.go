package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/rsvp"
	"github.com/rileyhilliard/invite/internal/ui"
	"github.com/spf13/cobra"
)

// rsvpFlags holds the values given on the command line.
type rsvpFlags struct {
	name   string
	phone  string
	guests int
}

// rsvpResult is the --json payload of a successful confirmation.
type rsvpResult struct {
	Record      rsvp.Record `json:"record"`
	Event       string      `json:"event"`
	ConfirmedAt time.Time   `json:"confirmed_at"`
}

func newRSVPCmd(opts *rootOptions) *cobra.Command {
	flags := &rsvpFlags{}

	cmd := &cobra.Command{
		Use:   "rsvp",
		Short: "Confirm your presence without the full-screen UI",
		Long: `Send one attendance confirmation to the RSVP endpoint.

Missing values are asked for interactively when running in a terminal.
The same rules as the invitation apply: a name, a phone number with 10 or
11 digits, and 1 to 5 entries.

Examples:
  invite rsvp
  invite rsvp --name "Ana Souza" --phone 51999999999 --guests 2
  invite rsvp --name "Ana Souza" --phone "(51) 99999-9999" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runRSVP(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "full name")
	cmd.Flags().StringVar(&flags.phone, "phone", "", "contact phone, digits or formatted")
	cmd.Flags().IntVar(&flags.guests, "guests", rsvp.MinGuests,
		fmt.Sprintf("entries including yourself (%d-%d)", rsvp.MinGuests, rsvp.MaxGuests))

	return cmd
}

func (o *rootOptions) runRSVP(cmd *cobra.Command, flags *rsvpFlags) error {
	env, err := o.load()
	if err != nil {
		return err
	}

	rec := rsvp.Record{
		Name:   rsvp.NormalizeName(flags.name),
		Phone:  rsvp.FormatPhone(flags.phone),
		Guests: flags.guests,
	}

	if (rec.Name == "" || rec.Phone == "") && o.canPrompt() {
		if err := promptRecord(&rec, !cmd.Flags().Changed("guests")); err != nil {
			return errors.WrapWithCode(err, errors.ErrUI,
				"Failed to get user input",
				"Pass --name and --phone instead")
		}
	}

	if fieldErrs := rsvp.Validate(rec); !fieldErrs.Empty() {
		env.log.Warn("rsvp rejected: %v", fieldErrs)
		return validationError(fieldErrs)
	}

	client := rsvp.NewClient(env.cfg.ClientConfig(), rsvp.WithLogger(env.log))

	var spinner *ui.Spinner
	if !o.jsonOutput {
		spinner = ui.NewSpinner(cmd.ErrOrStderr(), "Enviando confirmação")
		spinner.Start()
	}

	err = client.Submit(cmd.Context(), rec)
	if spinner != nil {
		if err != nil {
			spinner.Fail()
		} else {
			spinner.Success()
		}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.jsonOutput {
		return WriteJSONSuccess(out, rsvpResult{
			Record:      rec,
			Event:       env.cfg.RSVP.EventLabel,
			ConfirmedAt: time.Now(),
		})
	}

	ui.PrintSuccess(out, "Presença registrada")
	fmt.Fprintf(out, "  Nome: %s\n  Telefone: %s\n  Convidados: %d\n", rec.Name, rec.Phone, rec.Guests)
	return nil
}

// promptRecord asks for the fields rec is missing.
func promptRecord(rec *rsvp.Record, askGuests bool) error {
	var fields []huh.Field

	if rec.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Nome Completo").
			Placeholder("Seu nome completo").
			Value(&rec.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("%s", rsvp.MsgNameRequired)
				}
				return nil
			}))
	}

	if rec.Phone == "" {
		fields = append(fields, huh.NewInput().
			Title("Telefone de Contato").
			Placeholder("(51) 99999-9999").
			Value(&rec.Phone).
			Validate(func(s string) error {
				if msg := rsvp.ValidatePhone(s); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				return nil
			}))
	}

	if askGuests {
		options := make([]huh.Option[int], 0, rsvp.MaxGuests)
		for n := rsvp.MinGuests; n <= rsvp.MaxGuests; n++ {
			options = append(options, huh.NewOption(rsvp.GuestLabel(n), n))
		}
		fields = append(fields, huh.NewSelect[int]().
			Title("Número de Convidados").
			Options(options...).
			Value(&rec.Guests))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}

	rec.Name = rsvp.NormalizeName(rec.Name)
	rec.Phone = rsvp.FormatPhone(rec.Phone)
	return nil
}

// validationError lists every field problem in a fixed order.
func validationError(fieldErrs rsvp.FieldErrors) error {
	var lines []string
	for _, f := range []rsvp.Field{rsvp.FieldName, rsvp.FieldPhone, rsvp.FieldGuests} {
		if msg := fieldErrs.Get(f); msg != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", f, msg))
		}
	}
	return errors.WrapWithCode(fmt.Errorf("%s", strings.Join(lines, "\n  ")), errors.ErrValidation,
		"RSVP is incomplete",
		"Pass --name and --phone (10 or 11 digits), and --guests between 1 and 5")
}
