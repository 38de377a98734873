package config

import (
	"time"

	"github.com/rileyhilliard/invite/internal/event"
	"github.com/rileyhilliard/invite/internal/rsvp"
	"github.com/rileyhilliard/invite/internal/session"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Layouts for dates and times in the config file.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// DefaultEndpoint is the form-collection endpoint the invitation posts to.
const DefaultEndpoint = "https://formspree.io/f/mqabqwnq"

// Config represents the complete .invite.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Event     EventConfig     `yaml:"event" mapstructure:"event"`
	RSVP      RSVPConfig      `yaml:"rsvp" mapstructure:"rsvp"`
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// EventConfig holds everything displayed about the celebration.
type EventConfig struct {
	Honoree    string         `yaml:"honoree" mapstructure:"honoree"`
	Course     string         `yaml:"course" mapstructure:"course"`
	Tagline    string         `yaml:"tagline" mapstructure:"tagline"`
	Date       string         `yaml:"date" mapstructure:"date"`
	DateText   string         `yaml:"date_label" mapstructure:"date_label"`
	Schedule   []ScheduleItem `yaml:"schedule" mapstructure:"schedule"`
	Milestones []Milestone    `yaml:"milestones" mapstructure:"milestones"`
	Venue      VenueConfig    `yaml:"venue" mapstructure:"venue"`
	Calendar   CalendarConfig `yaml:"calendar" mapstructure:"calendar"`
}

// ScheduleItem is one line of the programme.
type ScheduleItem struct {
	Time  string `yaml:"time" mapstructure:"time"`
	Label string `yaml:"label" mapstructure:"label"`
}

// Milestone is one point on the academic journey timeline.
type Milestone struct {
	Year  string `yaml:"year" mapstructure:"year"`
	Label string `yaml:"label" mapstructure:"label"`
}

// VenueConfig is where the event happens.
type VenueConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Address string `yaml:"address" mapstructure:"address"`
	MapsURL string `yaml:"maps_url" mapstructure:"maps_url"`
}

// CalendarConfig controls the "add to calendar" link.
type CalendarConfig struct {
	Title string `yaml:"title" mapstructure:"title"`
	// Start and End use DateTimeLayout in local time.
	Start string `yaml:"start" mapstructure:"start"`
	End   string `yaml:"end" mapstructure:"end"`
}

// RSVPConfig controls the attendance submission.
type RSVPConfig struct {
	// Endpoint receives one JSON POST per confirmation.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// SubjectPrefix is prepended to the guest name in the notification subject.
	SubjectPrefix string `yaml:"subject_prefix" mapstructure:"subject_prefix"`

	// EventLabel is sent with every RSVP to identify the event.
	EventLabel string `yaml:"event_label" mapstructure:"event_label"`

	// Timeout bounds the request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// AnimationConfig controls the timing of the heating sequence.
type AnimationConfig struct {
	Duration     time.Duration `yaml:"duration" mapstructure:"duration"`
	Hold         time.Duration `yaml:"hold" mapstructure:"hold"`
	ConfirmDelay time.Duration `yaml:"confirm_delay" mapstructure:"confirm_delay"`
	// Frame is the interval between animation frames.
	Frame time.Duration `yaml:"frame" mapstructure:"frame"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// File is the log path. Empty means the user cache directory.
	File  string `yaml:"file" mapstructure:"file"`
	Debug bool   `yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns a Config with the invitation as authored.
func DefaultConfig() *Config {
	d := event.Default()

	schedule := make([]ScheduleItem, len(d.Schedule))
	for i, s := range d.Schedule {
		schedule[i] = ScheduleItem{Time: s.Time, Label: s.Label}
	}

	milestones := make([]Milestone, len(d.Milestones))
	for i, m := range d.Milestones {
		milestones[i] = Milestone{Year: m.Year, Label: m.Label}
	}

	timing := session.DefaultTiming()

	return &Config{
		Version: CurrentConfigVersion,
		Event: EventConfig{
			Honoree:    d.Honoree,
			Course:     d.Course,
			Tagline:    d.Tagline,
			Date:       d.Date.Format(DateLayout),
			DateText:   d.DateLabel,
			Schedule:   schedule,
			Milestones: milestones,
			Venue: VenueConfig{
				Name:    d.Venue.Name,
				Address: d.Venue.Address,
				MapsURL: d.Venue.MapsURL,
			},
			Calendar: CalendarConfig{
				Title: d.Calendar.Title,
				Start: d.Calendar.Start.Format(DateTimeLayout),
				End:   d.Calendar.End.Format(DateTimeLayout),
			},
		},
		RSVP: RSVPConfig{
			Endpoint:      DefaultEndpoint,
			SubjectPrefix: "✅ Nova Confirmação - ",
			EventLabel:    "Formatura Kieran Rocha 🎓",
			Timeout:       rsvp.DefaultTimeout,
		},
		Animation: AnimationConfig{
			Duration:     timing.Heat,
			Hold:         timing.Hold,
			ConfirmDelay: timing.ConfirmDelay,
			Frame:        50 * time.Millisecond,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Timing converts the animation section for the session.
func (c *Config) Timing() session.Timing {
	return session.Timing{
		Heat:         c.Animation.Duration,
		Hold:         c.Animation.Hold,
		ConfirmDelay: c.Animation.ConfirmDelay,
	}
}

// ClientConfig converts the rsvp section for the submission client.
func (c *Config) ClientConfig() rsvp.ClientConfig {
	return rsvp.ClientConfig{
		Endpoint:      c.RSVP.Endpoint,
		SubjectPrefix: c.RSVP.SubjectPrefix,
		EventLabel:    c.RSVP.EventLabel,
		Timeout:       c.RSVP.Timeout,
	}
}

// Details converts the event section, parsing its dates in local time.
func (c *Config) Details() (event.Details, error) {
	e := c.Event

	date, err := time.ParseInLocation(DateLayout, e.Date, time.Local)
	if err != nil {
		return event.Details{}, err
	}
	start, err := time.ParseInLocation(DateTimeLayout, e.Calendar.Start, time.Local)
	if err != nil {
		return event.Details{}, err
	}
	end, err := time.ParseInLocation(DateTimeLayout, e.Calendar.End, time.Local)
	if err != nil {
		return event.Details{}, err
	}

	schedule := make([]event.ScheduleItem, len(e.Schedule))
	for i, s := range e.Schedule {
		schedule[i] = event.ScheduleItem{Time: s.Time, Label: s.Label}
	}

	milestones := make([]event.Milestone, len(e.Milestones))
	for i, m := range e.Milestones {
		milestones[i] = event.Milestone{Year: m.Year, Label: m.Label}
	}

	return event.Details{
		Honoree:    e.Honoree,
		Course:     e.Course,
		Tagline:    e.Tagline,
		Date:       date,
		DateLabel:  e.DateText,
		Schedule:   schedule,
		Milestones: milestones,
		Venue: event.Venue{
			Name:    e.Venue.Name,
			Address: e.Venue.Address,
			MapsURL: e.Venue.MapsURL,
		},
		Calendar: event.Calendar{
			Title: e.Calendar.Title,
			Start: start,
			End:   end,
		},
	}, nil
}
