package model

import "time"

// Event is one calendar entry as produced by the ICS parser. Fields not
// exposed as first-class ICS properties (conference links, attachments,
// vendor extensions) end up in Extra as raw property lines.
type Event struct {
	UID       string        // iCal UID, or a generated fallback
	Title     string        // SUMMARY
	Start     time.Time     // DTSTART
	Duration  time.Duration // DTEND - DTSTART; zero if DTEND is missing
	Organizer string        // organizer email; empty means absent
	Attendees []string      // ATTENDEE values
	Extra     string        // unmapped property lines, one per line
}

// HasOrganizer reports whether the event carries an organizer. Events
// without one are skipped by the loader.
func (e Event) HasOrganizer() bool {
	return e.Organizer != ""
}
