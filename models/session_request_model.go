package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusDeclined = "declined"
)

// CalendarLinks are the add-to-calendar URLs minted when a request is
// accepted. They are written once and served verbatim afterwards.
type CalendarLinks struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
	Yahoo   string `json:"yahoo"`
}

func (l CalendarLinks) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *CalendarLinks) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = CalendarLinks{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for CalendarLinks")
	}
}

type SessionRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;index" json:"student_id"`
	TeacherID uuid.UUID `gorm:"not null;index" json:"teacher_id"`

	Date     string `gorm:"size:10;not null" json:"date"`
	TimeSlot string `gorm:"size:8;not null" json:"time_slot"`
	Message  string `gorm:"type:text;not null" json:"message"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	MeetLink      *string        `gorm:"size:255" json:"meet_link,omitempty"`
	CalendarLinks *CalendarLinks `gorm:"type:jsonb" json:"calendar_links,omitempty"`
	EventID       *string        `gorm:"size:64" json:"event_id,omitempty"`

	Student *User `gorm:"foreignkey:StudentID" json:"sender,omitempty"`
	Teacher *User `gorm:"foreignkey:TeacherID" json:"receiver,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
