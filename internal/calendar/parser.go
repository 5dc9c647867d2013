package calendar

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/startwise/eventscribe/internal/model"
)

// Load reads an .ics file and returns its events in file order.
func Load(path string) ([]model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open calendar: %w", err)
	}
	defer f.Close()

	return decode(f)
}

func decode(r io.Reader) ([]model.Event, error) {
	dec := ical.NewDecoder(r)

	var events []model.Event
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			events = append(events, parseEvent(comp))
		}
	}

	return events, nil
}

// mappedProps are the properties parsed into first-class Event fields.
// Everything else (ATTACH, DESCRIPTION, X- extensions) is carried as raw
// lines in Extra, where the link extractor scans for resource references.
var mappedProps = map[string]bool{
	ical.PropUID:           true,
	ical.PropSummary:       true,
	ical.PropDateTimeStart: true,
	ical.PropDateTimeEnd:   true,
	ical.PropOrganizer:     true,
	ical.PropAttendee:      true,
}

func parseEvent(comp *ical.Component) model.Event {
	event := model.Event{}

	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		event.UID = prop.Value
	}
	if event.UID == "" {
		// UID is the stable row key downstream; never leave it empty.
		event.UID = uuid.NewString()
	}

	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		event.Title = prop.Value
	}

	var start, end time.Time
	if prop := comp.Props.Get(ical.PropDateTimeStart); prop != nil {
		if t, err := prop.DateTime(time.UTC); err == nil {
			start = t
		}
	}
	if prop := comp.Props.Get(ical.PropDateTimeEnd); prop != nil {
		if t, err := prop.DateTime(time.UTC); err == nil {
			end = t
		}
	}
	event.Start = start
	if !start.IsZero() && end.After(start) {
		event.Duration = end.Sub(start)
	}

	if prop := comp.Props.Get(ical.PropOrganizer); prop != nil {
		event.Organizer = stripMailto(prop.Value)
	}

	for _, prop := range comp.Props.Values(ical.PropAttendee) {
		event.Attendees = append(event.Attendees, stripMailto(prop.Value))
	}

	event.Extra = extraLines(comp)

	return event
}

// extraLines serializes every unmapped property back to its content-line
// form, one per line, sorted by property name for determinism. Parameters
// are kept: Google attaches recordings as e.g.
// ATTACH;FMTTYPE=video/mp4:https://drive.google.com/... and the FMTTYPE
// marker is what the extractor keys on.
func extraLines(comp *ical.Component) string {
	names := make([]string, 0, len(comp.Props))
	for name := range comp.Props {
		if mappedProps[name] {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		for _, prop := range comp.Props[name] {
			b.WriteString(prop.Name)
			paramNames := make([]string, 0, len(prop.Params))
			for pn := range prop.Params {
				paramNames = append(paramNames, pn)
			}
			sort.Strings(paramNames)
			for _, pn := range paramNames {
				b.WriteString(";")
				b.WriteString(pn)
				b.WriteString("=")
				b.WriteString(strings.Join(prop.Params[pn], ","))
			}
			b.WriteString(":")
			b.WriteString(prop.Value)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func stripMailto(value string) string {
	if len(value) >= 7 && strings.EqualFold(value[:7], "mailto:") {
		return value[7:]
	}
	return value
}
