package services

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

const testRequestID = "123e4567-e89b-12d3-a456-426614174000"

func TestBuildSessionArtifacts(t *testing.T) {
	artifacts, err := BuildSessionArtifacts(testRequestID, "2025-06-01", "3:00 PM", time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	wantMeet := "https://meet.google.com/123e4567-e89b-12d3"
	if artifacts.MeetLink != wantMeet {
		t.Errorf("meet link = %q, want %q", artifacts.MeetLink, wantMeet)
	}
	if len(artifacts.EventID) != 32 {
		t.Errorf("event id = %q, want 32 hex characters", artifacts.EventID)
	}

	google, err := url.Parse(artifacts.CalendarLinks.Google)
	if err != nil {
		t.Fatal(err)
	}
	if google.Host != "calendar.google.com" {
		t.Errorf("google link host = %q", google.Host)
	}
	if got := google.Query().Get("dates"); got != "20250601T150000/20250601T160000" {
		t.Errorf("google dates = %q", got)
	}
	if got := google.Query().Get("details"); !strings.Contains(got, wantMeet) {
		t.Errorf("google details %q does not carry the meet link", got)
	}

	outlook, err := url.Parse(artifacts.CalendarLinks.Outlook)
	if err != nil {
		t.Fatal(err)
	}
	if got := outlook.Query().Get("startdt"); got != "2025-06-01T15:00:00Z" {
		t.Errorf("outlook startdt = %q", got)
	}
	if got := outlook.Query().Get("enddt"); got != "2025-06-01T16:00:00Z" {
		t.Errorf("outlook enddt = %q", got)
	}

	yahoo, err := url.Parse(artifacts.CalendarLinks.Yahoo)
	if err != nil {
		t.Fatal(err)
	}
	if got := yahoo.Query().Get("st"); got != "20250601T150000" {
		t.Errorf("yahoo st = %q", got)
	}
	if got := yahoo.Query().Get("et"); got != "20250601T160000" {
		t.Errorf("yahoo et = %q", got)
	}
}

func TestBuildSessionArtifactsUsesZone(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := BuildSessionArtifacts(testRequestID, "2025-06-01", "9:00 AM", nairobi)
	if err != nil {
		t.Fatal(err)
	}

	outlook, err := url.Parse(artifacts.CalendarLinks.Outlook)
	if err != nil {
		t.Fatal(err)
	}
	if got := outlook.Query().Get("startdt"); got != "2025-06-01T09:00:00+03:00" {
		t.Errorf("outlook startdt = %q, want Nairobi offset", got)
	}
}

func TestBuildSessionArtifactsMidnightCrossing(t *testing.T) {
	artifacts, err := BuildSessionArtifacts(testRequestID, "2025-06-01", "11:00 PM", time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	google, err := url.Parse(artifacts.CalendarLinks.Google)
	if err != nil {
		t.Fatal(err)
	}
	if got := google.Query().Get("dates"); got != "20250601T230000/20250602T000000" {
		t.Errorf("google dates = %q, want the event to roll into the next day", got)
	}
}

func TestBuildSessionArtifactsInvalidInput(t *testing.T) {
	if _, err := BuildSessionArtifacts(testRequestID, "June 1st", "3:00 PM", time.UTC); err == nil {
		t.Error("expected an error for an unparseable date")
	}
	if _, err := BuildSessionArtifacts(testRequestID, "2025-06-01", "25:00 XM", time.UTC); err == nil {
		t.Error("expected an error for an unknown slot label")
	}
}

func TestMeetLinkIsStablePerRequest(t *testing.T) {
	a, err := BuildSessionArtifacts(testRequestID, "2025-06-01", "3:00 PM", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildSessionArtifacts(testRequestID, "2025-06-02", "9:00 AM", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if a.MeetLink != b.MeetLink {
		t.Errorf("meet link changed between accepts: %q vs %q", a.MeetLink, b.MeetLink)
	}
}
