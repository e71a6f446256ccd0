package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"not null" json:"user_id"`
	SlotID       uuid.UUID `gorm:"not null" json:"slot_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`

	// Choices have no lifecycle of their own; they are owned by the question
	// and replaced wholesale on update.
	Choices []Choice `gorm:"foreignkey:QuestionID;constraint:OnDelete:CASCADE" json:"choices"`

	User User `gorm:"foreignkey:UserID" json:"-"`
	Slot Slot `gorm:"foreignkey:SlotID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Choice struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuestionID uuid.UUID `gorm:"not null" json:"-"`
	ChoiceText string    `gorm:"type:text;not null" json:"choice_text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

func (c *Choice) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
