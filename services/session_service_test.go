package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/skillswap-app/skillswap_api/models"
)

func TestNewSessionRequest(t *testing.T) {
	studentID := uuid.New()
	teacherID := uuid.New()

	tests := []struct {
		name     string
		date     string
		timeSlot string
		message  string
		wantErr  error
	}{
		{name: "valid", date: "2025-06-01", timeSlot: "3:00 PM", message: "Hi"},
		{name: "missing date", timeSlot: "3:00 PM", message: "Hi", wantErr: ErrMissingDate},
		{name: "missing slot", date: "2025-06-01", message: "Hi", wantErr: ErrMissingTimeSlot},
		{name: "empty message", date: "2025-06-01", timeSlot: "3:00 PM", wantErr: ErrEmptyMessage},
		{name: "whitespace message", date: "2025-06-01", timeSlot: "3:00 PM", message: "   \n\t", wantErr: ErrEmptyMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewSessionRequest(studentID, teacherID, tt.date, tt.timeSlot, tt.message)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewSessionRequest() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if req.Status != models.RequestStatusPending {
				t.Errorf("status = %q, want %q", req.Status, models.RequestStatusPending)
			}
			if req.StudentID != studentID || req.TeacherID != teacherID {
				t.Error("participant ids were not carried over")
			}
			if req.MeetLink != nil || req.CalendarLinks != nil || req.EventID != nil {
				t.Error("a fresh request must not carry scheduling artifacts")
			}
		})
	}
}

func TestNewSessionRequestTrimsMessage(t *testing.T) {
	req, err := NewSessionRequest(uuid.New(), uuid.New(), "2025-06-01", "3:00 PM", "  hello there  ")
	if err != nil {
		t.Fatal(err)
	}
	if req.Message != "hello there" {
		t.Errorf("message = %q, want %q", req.Message, "hello there")
	}
}

func TestCanRespond(t *testing.T) {
	teacherID := uuid.New()
	studentID := uuid.New()
	stranger := uuid.New()

	request := func(status string) models.SessionRequest {
		return models.SessionRequest{
			StudentID: studentID,
			TeacherID: teacherID,
			Status:    status,
		}
	}

	tests := []struct {
		name    string
		req     models.SessionRequest
		caller  uuid.UUID
		wantErr error
	}{
		{name: "teacher responds to pending", req: request(models.RequestStatusPending), caller: teacherID},
		{name: "student cannot respond", req: request(models.RequestStatusPending), caller: studentID, wantErr: ErrNotRequestTeacher},
		{name: "stranger cannot respond", req: request(models.RequestStatusPending), caller: stranger, wantErr: ErrNotRequestTeacher},
		{name: "accepted is terminal", req: request(models.RequestStatusAccepted), caller: teacherID, wantErr: ErrNotPending},
		{name: "declined is terminal", req: request(models.RequestStatusDeclined), caller: teacherID, wantErr: ErrNotPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CanRespond(tt.req, tt.caller); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanRespond() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
