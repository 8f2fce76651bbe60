package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/skillswap-app/skillswap_api/models"
)

// Validation failures for a request that has not been created yet.
var (
	ErrMissingDate     = errors.New("a session date is required")
	ErrMissingTimeSlot = errors.New("a time slot is required")
	ErrEmptyMessage    = errors.New("a message to the teacher is required")

	ErrSlotNotPublished = errors.New("the requested slot is not in the teacher's availability")
)

// Lifecycle failures when responding to an existing request.
var (
	ErrNotRequestTeacher = errors.New("only the receiving teacher can respond to this request")
	ErrNotPending        = errors.New("this request has already been responded to")
)

// NewSessionRequest builds a pending request from a student to a teacher.
// Date, slot and a non-blank message are required; whether the chosen slot is
// still open on the teacher's live calendar is not re-checked here.
func NewSessionRequest(studentID, teacherID uuid.UUID, date, timeSlot, message string) (models.SessionRequest, error) {
	switch {
	case date == "":
		return models.SessionRequest{}, ErrMissingDate
	case timeSlot == "":
		return models.SessionRequest{}, ErrMissingTimeSlot
	case strings.TrimSpace(message) == "":
		return models.SessionRequest{}, ErrEmptyMessage
	}

	return models.SessionRequest{
		StudentID: studentID,
		TeacherID: teacherID,
		Date:      date,
		TimeSlot:  timeSlot,
		Message:   strings.TrimSpace(message),
		Status:    models.RequestStatusPending,
	}, nil
}

// CanRespond guards the single pending -> accepted|declined transition.
// Accepted and declined are terminal: a second response fails instead of
// silently double-mutating, which is also how the race loser between two
// clients learns it lost.
func CanRespond(req models.SessionRequest, callerID uuid.UUID) error {
	if req.TeacherID != callerID {
		return ErrNotRequestTeacher
	}
	if req.Status != models.RequestStatusPending {
		return ErrNotPending
	}
	return nil
}
