package ics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gabrielgilbord/Frantana-Booking/shared/ics"
)

func TestGenerate(t *testing.T) {
	start := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		event    ics.Event
		contains []string
		excludes []string
	}{
		{
			name: "full event",
			event: ics.Event{
				Title:       "Boda de Ana",
				Description: "Celebracion en el jardin",
				Location:    "Sala principal",
				StartDate:   start,
				EndDate:     end,
				Organizer: &ics.Organizer{
					Name:  "Frantana",
					Email: "info@frantana.com",
				},
			},
			contains: []string{
				"BEGIN:VCALENDAR",
				"VERSION:2.0",
				"PRODID:-//FRANTANA//Event Calendar//ES",
				"CALSCALE:GREGORIAN",
				"METHOD:PUBLISH",
				"BEGIN:VEVENT",
				"DTSTART:20250614T180000",
				"DTEND:20250614T200000",
				"SUMMARY:Boda de Ana",
				"DESCRIPTION:Celebracion en el jardin",
				"LOCATION:Sala principal",
				"ORGANIZER;CN=\"Frantana\":MAILTO:info@frantana.com",
				"STATUS:CONFIRMED",
				"SEQUENCE:0",
				"END:VEVENT",
				"END:VCALENDAR",
			},
		},
		{
			name: "minimal event omits optional properties",
			event: ics.Event{
				Title:     "Reunion",
				StartDate: start,
				EndDate:   end,
			},
			contains: []string{"SUMMARY:Reunion"},
			excludes: []string{"DESCRIPTION:", "LOCATION:", "ORGANIZER"},
		},
		{
			name: "special characters are escaped",
			event: ics.Event{
				Title:       "Cena; gala, anual",
				Description: "Linea uno\nLinea dos",
				StartDate:   start,
				EndDate:     end,
			},
			contains: []string{
				`SUMMARY:Cena\; gala\, anual`,
				`DESCRIPTION:Linea uno\nLinea dos`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := ics.Generate(tt.event)

			for _, want := range tt.contains {
				assert.Contains(t, content, want)
			}

			for _, unwanted := range tt.excludes {
				assert.NotContains(t, content, unwanted)
			}

			assert.True(t, strings.Contains(content, "\r\n"), "lines must be CRLF separated")
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Boda de Ana", want: "boda_de_ana.ics"},
		{title: "Evento 2025!", want: "evento_2025_.ics"},
		{title: "SIMPLE", want: "simple.ics"},
		{title: "", want: ".ics"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ics.Filename(tt.title))
		})
	}
}
