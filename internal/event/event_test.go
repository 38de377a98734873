package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarLink(t *testing.T) {
	c := Calendar{
		Title: "Formatura Kieran Rocha",
		Start: time.Date(2025, 12, 20, 20, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 12, 20, 23, 0, 0, 0, time.UTC),
	}

	assert.Equal(t,
		"https://www.google.com/calendar/render?action=TEMPLATE&text=Formatura+Kieran+Rocha&dates=20251220T200000/20251220T230000",
		c.Link())
}

func TestCalendarLink_EscapesTitle(t *testing.T) {
	c := Calendar{Title: "Festa & Jantar", Start: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), End: time.Date(2025, 1, 2, 4, 0, 0, 0, time.UTC)}
	assert.Contains(t, c.Link(), "text=Festa+%26+Jantar&")
}

func TestDefault(t *testing.T) {
	d := Default()

	assert.Equal(t, "Kieran Rocha", d.Honoree)
	assert.Equal(t, "Sábado, 16 de Agosto de 2025", d.DateLabel)
	require.Len(t, d.Schedule, 2)
	assert.Equal(t, "19:30", d.Schedule[0].Time)
	assert.Equal(t, "https://maps.app.goo.gl/Ji1JHUEMKFinZi7Y9", d.Venue.MapsURL)
}

func TestCheckConsistency_FlagsAuthoredDateMismatch(t *testing.T) {
	warnings := CheckConsistency(Default())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "2025-12-20")
	assert.Contains(t, warnings[0], "2025-08-16")
}

func TestCheckConsistency(t *testing.T) {
	day := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	base := Details{
		Date: day,
		Calendar: Calendar{
			Start: day.Add(20 * time.Hour),
			End:   day.Add(23 * time.Hour),
		},
		Venue: Venue{MapsURL: "https://maps.example.com/x"},
	}

	tests := []struct {
		name     string
		mutate   func(d *Details)
		warnings int
	}{
		{name: "consistent", mutate: func(d *Details) {}, warnings: 0},
		{name: "different day", mutate: func(d *Details) { d.Calendar.Start = d.Calendar.Start.AddDate(0, 0, 1); d.Calendar.End = d.Calendar.End.AddDate(0, 0, 1) }, warnings: 1},
		{name: "ends before start", mutate: func(d *Details) { d.Calendar.End = d.Calendar.Start.Add(-time.Hour) }, warnings: 1},
		{name: "relative maps url", mutate: func(d *Details) { d.Venue.MapsURL = "maps/x" }, warnings: 1},
		{name: "no maps url", mutate: func(d *Details) { d.Venue.MapsURL = "" }, warnings: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			assert.Len(t, CheckConsistency(d), tt.warnings)
		})
	}
}
