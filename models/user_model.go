package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	Bio               *string `gorm:"size:500" json:"bio"`
	Country           string  `gorm:"size:2" json:"country"`
	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	TimeZone          *string `gorm:"size:100" json:"time_zone"`

	TeachingSkills pq.StringArray `gorm:"type:text[]" json:"teaching_skills"`
	LearningSkills pq.StringArray `gorm:"type:text[]" json:"learning_skills"`

	Availability AvailabilityMap `gorm:"type:jsonb;default:'{}'" json:"availability"`

	OnboardingCompleted bool `gorm:"default:false" json:"onboarding_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location resolves the member's IANA time zone, falling back to UTC when
// the profile has none or the name no longer loads.
func (u *User) Location() *time.Location {
	if u.TimeZone == nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(*u.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
