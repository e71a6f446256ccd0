package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `gorm:"not null" json:"user_id"`
	ClassID     uuid.UUID  `gorm:"not null" json:"class_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `gorm:"type:text" json:"description"`
	LoveTeacher int        `gorm:"not null" json:"love_teacher"`
	LoveClass   int        `gorm:"not null" json:"love_class"`

	User  User  `gorm:"foreignkey:UserID" json:"-"`
	Class Class `gorm:"foreignkey:ClassID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
