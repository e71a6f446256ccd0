package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username       string    `gorm:"size:255;not null;unique" json:"username"`
	Email          string    `gorm:"size:255;not null;unique" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Role           string    `gorm:"size:20;not null;default:'student'" json:"role"`
	ProfilePicture *string   `gorm:"size:255" json:"profile_picture"`
	DateOfBirth    time.Time `gorm:"not null" json:"date_of_birth"`
	PhoneNumber    string    `gorm:"size:20;not null" json:"phone_number"`
	Address        string    `gorm:"type:text;not null" json:"address"`

	SubscriptionPackage   *string    `gorm:"size:20" json:"subscription_package"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasActiveSubscription reports whether the user holds a subscription that has
// not yet passed its expiration date.
func (u *User) HasActiveSubscription(now time.Time) bool {
	if u.SubscriptionPackage == nil || u.SubscriptionExpiresAt == nil {
		return false
	}
	return now.Before(*u.SubscriptionExpiresAt)
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
