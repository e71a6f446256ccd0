package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionStatusSuccess = "Success"
	TransactionStatusFailed  = "Failed"
)

// Transaction is an append-only record of a payment outcome. Rows are never
// updated or deleted; corrections are new rows. The unique trans_id column is
// the replay key for gateway notifications.
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `gorm:"not null" json:"user_id"`
	PaymentID       uuid.UUID `gorm:"not null" json:"payment_id"`
	TransID         *int64    `gorm:"unique" json:"trans_id"`
	TransactionDate time.Time `gorm:"not null" json:"transaction_date"`
	Status          string    `gorm:"size:20;not null;default:'Success'" json:"status"`

	User    User    `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Payment Payment `gorm:"foreignkey:PaymentID" json:"payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
