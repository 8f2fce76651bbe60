package models

type Skill struct {
	ID       int    `gorm:"primary_key" json:"id"`
	Name     string `gorm:"size:100;not null;unique" json:"name"`
	Category string `gorm:"size:100;not null" json:"category"`
}
