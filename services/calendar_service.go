package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/skillswap-app/skillswap_api/models"
)

const (
	eventTitle       = "SkillSwap Session"
	compactDstLayout = "20060102T150405"
)

// SessionArtifacts are the scheduling values minted exactly once when a
// teacher accepts a request. They are stored on the request and returned
// verbatim from then on.
type SessionArtifacts struct {
	MeetLink      string
	CalendarLinks models.CalendarLinks
	EventID       string
}

// BuildSessionArtifacts derives the meeting link and add-to-calendar links
// for an accepted request. The event starts at the requested slot in the
// teacher's time zone and runs for one hour.
func BuildSessionArtifacts(requestID, date, timeSlot string, loc *time.Location) (SessionArtifacts, error) {
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return SessionArtifacts{}, fmt.Errorf("invalid session date %q: %w", date, err)
	}
	hour, ok := SlotHour(timeSlot)
	if !ok {
		return SessionArtifacts{}, fmt.Errorf("invalid time slot %q", timeSlot)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
	end := start.Add(time.Hour)

	meetLink := meetLinkFromID(requestID)
	eventID, err := newEventID()
	if err != nil {
		return SessionArtifacts{}, err
	}

	return SessionArtifacts{
		MeetLink: meetLink,
		CalendarLinks: models.CalendarLinks{
			Google:  googleCalendarLink(start, end, meetLink),
			Outlook: outlookCalendarLink(start, end, meetLink),
			Yahoo:   yahooCalendarLink(start, end, meetLink),
		},
		EventID: eventID,
	}, nil
}

// meetLinkFromID folds the request id into a stable meeting-room code, so
// accepting the same request always lands on the same room.
func meetLinkFromID(requestID string) string {
	code := strings.ReplaceAll(requestID, "-", "")
	if len(code) < 16 {
		code = code + strings.Repeat("0", 16-len(code))
	}
	return fmt.Sprintf("https://meet.google.com/%s-%s-%s", code[:8], code[8:12], code[12:16])
}

func newEventID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate event id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func googleCalendarLink(start, end time.Time, meetLink string) string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", eventTitle)
	params.Set("dates", start.Format(compactDstLayout)+"/"+end.Format(compactDstLayout))
	params.Set("details", "Join Google Meet: "+meetLink)
	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

func outlookCalendarLink(start, end time.Time, meetLink string) string {
	params := url.Values{}
	params.Set("path", "/calendar/action/compose")
	params.Set("rru", "addevent")
	params.Set("subject", eventTitle)
	params.Set("startdt", start.Format(time.RFC3339))
	params.Set("enddt", end.Format(time.RFC3339))
	params.Set("body", "Join Google Meet: "+meetLink)
	return "https://outlook.live.com/calendar/0/deeplink/compose?" + params.Encode()
}

func yahooCalendarLink(start, end time.Time, meetLink string) string {
	params := url.Values{}
	params.Set("v", "60")
	params.Set("title", eventTitle)
	params.Set("st", start.Format(compactDstLayout))
	params.Set("et", end.Format(compactDstLayout))
	params.Set("desc", "Join Google Meet: "+meetLink)
	return "https://calendar.yahoo.com/?" + params.Encode()
}
