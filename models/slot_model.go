package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SlotStatusNotStarted = "Not started"
	SlotStatusOngoing    = "Ongoing"
	SlotStatusCompleted  = "Completed"
)

type Slot struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassID   uuid.UUID `gorm:"not null" json:"class_id"`
	SlotName  string    `gorm:"size:255;not null" json:"slot_name"`
	Date      time.Time `gorm:"not null" json:"date"`
	StartTime string    `gorm:"size:10;not null" json:"start_time"`
	EndTime   string    `gorm:"size:10;not null" json:"end_time"`
	Status    string    `gorm:"size:20;not null;default:'Not started'" json:"status"`

	Class     Class      `gorm:"foreignkey:ClassID" json:"-"`
	Questions []Question `gorm:"foreignkey:SlotID" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Slot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
