// Package ics renders iCalendar (RFC 5545) event files for the
// "add to calendar" links sent with booking confirmations.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

const (
	dateLayout = "20060102T150405"
	prodID     = "-//FRANTANA//Event Calendar//ES"
)

type Organizer struct {
	Name  string
	Email string
}

type Event struct {
	Title       string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     time.Time
	Organizer   *Organizer
}

// escape protects the characters RFC 5545 reserves in text values.
func escape(str string) string {
	str = strings.ReplaceAll(str, `\`, `\\`)
	str = strings.ReplaceAll(str, ";", `\;`)
	str = strings.ReplaceAll(str, ",", `\,`)
	str = strings.ReplaceAll(str, "\n", `\n`)

	return str
}

func formatDate(t time.Time) string {
	return timezone.ToAppTime(t).Format(dateLayout)
}

// Generate renders the event as .ics file content with CRLF line endings.
func Generate(event Event) string {
	now := timezone.Now()
	uid := fmt.Sprintf("%s-%s@frantana.com", formatDate(now), uuid.New().String()[:8])

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + formatDate(now),
		"DTSTART:" + formatDate(event.StartDate),
		"DTEND:" + formatDate(event.EndDate),
		"SUMMARY:" + escape(event.Title),
	}

	if event.Description != "" {
		lines = append(lines, "DESCRIPTION:"+escape(event.Description))
	}

	if event.Location != "" {
		lines = append(lines, "LOCATION:"+escape(event.Location))
	}

	if event.Organizer != nil {
		lines = append(lines, fmt.Sprintf("ORGANIZER;CN=%q:MAILTO:%s", escape(event.Organizer.Name), event.Organizer.Email))
	}

	lines = append(lines,
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	return strings.Join(lines, "\r\n")
}

// Filename builds the download filename from the event title. Anything
// outside [a-zA-Z0-9] collapses to an underscore.
func Filename(title string) string {
	var b strings.Builder

	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('_')
		}
	}

	return b.String() + ".ics"
}
