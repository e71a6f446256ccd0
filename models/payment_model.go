package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

type Payment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"not null" json:"user_id"`
	Amount  int64     `gorm:"not null" json:"amount"`
	Package string    `gorm:"size:20;not null" json:"package"`
	Status  string    `gorm:"size:20;not null;default:'Pending'" json:"status"`

	// Gateway order/request identifiers, set on the asynchronous path so the
	// notification can be matched back to the originating payment.
	OrderID   *string `gorm:"size:64;unique" json:"order_id"`
	RequestID *string `gorm:"size:64" json:"request_id"`

	Date time.Time `gorm:"not null" json:"date"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
