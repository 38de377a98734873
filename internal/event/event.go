// Package event describes the celebration itself: who, when, where, and the
// external links (maps, calendar) offered to guests.
package event

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// CalendarBase is the Google Calendar event-template endpoint.
const CalendarBase = "https://www.google.com/calendar/render"

// calendarLayout is the compact local time format Google Calendar expects.
const calendarLayout = "20060102T150405"

// ScheduleItem is one line of the programme.
type ScheduleItem struct {
	Time  string
	Label string
}

// Milestone is one point on the academic journey timeline.
type Milestone struct {
	Year  string
	Label string
}

// Venue is where the event happens.
type Venue struct {
	Name    string
	Address string
	MapsURL string
}

// Calendar is the event as offered in the "add to calendar" link.
type Calendar struct {
	Title string
	Start time.Time
	End   time.Time
}

// Details is everything shown on the details and welcome screens.
type Details struct {
	Honoree    string
	Course     string
	Tagline    string
	Date       time.Time
	DateLabel  string
	Schedule   []ScheduleItem
	Milestones []Milestone
	Venue      Venue
	Calendar   Calendar
}

// Default returns the invitation as authored.
func Default() Details {
	return Details{
		Honoree: "Kieran Rocha",
		Course:  "Bacharelado em Engenharia Mecânica",
		Tagline: "Após anos de dedicação, projetos e descobertas, o sistema atingiu a fase de conclusão. " +
			"É hora de iniciar o protocolo de celebração.",
		Date:      time.Date(2025, 8, 16, 0, 0, 0, 0, time.Local),
		DateLabel: "Sábado, 16 de Agosto de 2025",
		Schedule: []ScheduleItem{
			{Time: "19:30", Label: "Recepção & Calibração"},
			{Time: "20:00", Label: "Jantar & Celebração"},
		},
		Milestones: []Milestone{
			{Year: "2017", Label: "Início"},
			{Year: "2023", Label: "Meio"},
			{Year: "2025", Label: "Conclusão!"},
		},
		Venue: Venue{
			Name:    "Restaurante Gruta dos Índios",
			Address: "Rua Capitão Pedro Werlang, 1570 - Higienópolis, Santa Cruz do Sul - RS, 96825-325",
			MapsURL: "https://maps.app.goo.gl/Ji1JHUEMKFinZi7Y9",
		},
		// The calendar template was authored with a different date than the
		// one displayed. It is reported by CheckConsistency, not corrected.
		Calendar: Calendar{
			Title: "Formatura Kieran Rocha",
			Start: time.Date(2025, 12, 20, 20, 0, 0, 0, time.Local),
			End:   time.Date(2025, 12, 20, 23, 0, 0, 0, time.Local),
		},
	}
}

// Link builds the "add to calendar" URL.
func (c Calendar) Link() string {
	var b strings.Builder
	b.WriteString(CalendarBase)
	b.WriteString("?action=TEMPLATE&text=")
	b.WriteString(url.QueryEscape(c.Title))
	b.WriteString("&dates=")
	b.WriteString(c.Start.Format(calendarLayout))
	b.WriteString("/")
	b.WriteString(c.End.Format(calendarLayout))
	return b.String()
}

// CheckConsistency returns a warning for every place the details disagree
// with themselves. An empty result means the invitation is consistent.
func CheckConsistency(d Details) []string {
	var warnings []string

	if !d.Date.IsZero() && !d.Calendar.Start.IsZero() && !sameDay(d.Date, d.Calendar.Start) {
		warnings = append(warnings, fmt.Sprintf(
			"calendar link starts on %s but the invitation shows %s (%s)",
			d.Calendar.Start.Format("2006-01-02"), d.Date.Format("2006-01-02"), d.DateLabel))
	}
	if !d.Calendar.End.After(d.Calendar.Start) {
		warnings = append(warnings, "calendar link ends before it starts")
	}
	if d.Venue.MapsURL != "" {
		if u, err := url.Parse(d.Venue.MapsURL); err != nil || u.Scheme == "" || u.Host == "" {
			warnings = append(warnings, "maps link is not an absolute URL: "+d.Venue.MapsURL)
		}
	}

	return warnings
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
