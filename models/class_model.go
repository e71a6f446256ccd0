package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Class struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassName   string    `gorm:"size:255;not null" json:"class_name"`
	UserID      uuid.UUID `gorm:"not null" json:"user_id"`
	Description string    `gorm:"type:text" json:"description"`

	User  User   `gorm:"foreignkey:UserID" json:"-"`
	Slots []Slot `gorm:"foreignkey:ClassID" json:"slots,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
