package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/event"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but invite only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade invite, or lower the version in .invite.yaml.")
	}

	if err := validateRSVP(cfg.RSVP); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'rsvp' section in your .invite.yaml.")
	}

	if err := validateAnimation(cfg.Animation); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'animation' section in your .invite.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .invite.yaml.")
	}

	d, err := cfg.Details()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Event dates don't parse",
			fmt.Sprintf("Use %s for event.date and %s for the calendar times.", DateLayout, DateTimeLayout))
	}
	if !d.Calendar.End.After(d.Calendar.Start) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Calendar ends (%s) before it starts (%s)", cfg.Event.Calendar.End, cfg.Event.Calendar.Start),
			"Check event.calendar.start and event.calendar.end.")
	}

	return nil
}

// Warnings returns problems that don't stop the invitation from running,
// like a calendar link that disagrees with the displayed date.
func Warnings(cfg *Config) []string {
	d, err := cfg.Details()
	if err != nil {
		return nil
	}
	return event.CheckConsistency(d)
}

func validateRSVP(r RSVPConfig) error {
	if r.Endpoint == "" {
		return fmt.Errorf("rsvp endpoint is empty")
	}
	u, err := url.Parse(r.Endpoint)
	if err != nil {
		return fmt.Errorf("rsvp endpoint '%s' is not a valid URL", r.Endpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("rsvp endpoint '%s' needs an http or https scheme", r.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("rsvp endpoint '%s' has no host", r.Endpoint)
	}
	if r.Timeout < 0 {
		return fmt.Errorf("rsvp timeout can't be negative (got %s)", r.Timeout)
	}
	return nil
}

func validateAnimation(a AnimationConfig) error {
	if a.Duration <= 0 {
		return fmt.Errorf("animation duration must be positive (got %s)", a.Duration)
	}
	if a.Frame <= 0 {
		return fmt.Errorf("animation frame must be positive (got %s)", a.Frame)
	}
	if a.Frame > a.Duration {
		return fmt.Errorf("animation frame (%s) is longer than the whole animation (%s)", a.Frame, a.Duration)
	}
	for name, d := range map[string]time.Duration{"hold": a.Hold, "confirm_delay": a.ConfirmDelay} {
		if d < 0 {
			return fmt.Errorf("animation %s can't be negative (got %s)", name, d)
		}
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	switch o.Color {
	case "", "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output color '%s' isn't valid - use auto, always, or never", o.Color)
	}
}
