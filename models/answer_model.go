package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer is one submission of a full answer sheet for a slot. The unique index
// on (user_id, slot_id) makes a second submission for the same slot a conflict
// instead of a silent duplicate.
type Answer struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"not null;uniqueIndex:idx_answers_user_slot" json:"user_id"`
	SlotID      uuid.UUID `gorm:"not null;uniqueIndex:idx_answers_user_slot" json:"slot_id"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`

	Items []AnswerItem `gorm:"foreignkey:AnswerID;constraint:OnDelete:CASCADE" json:"answers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnswerItem freezes the correctness of one answered question as the question
// stood at submission time. Later edits to the question never change it.
type AnswerItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AnswerID       uuid.UUID `gorm:"not null" json:"-"`
	QuestionID     uuid.UUID `gorm:"not null" json:"question_id"`
	SelectedChoice string    `gorm:"type:text;not null" json:"selected_choice"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (i *AnswerItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
