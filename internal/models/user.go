package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents the user model in the database
type User struct {
	Base
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"size:200;not null" json:"-"`
	RegisteredAt time.Time `json:"registered_at"`
}

// BeforeCreate stamps the registration time when the caller left it empty
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.RegisteredAt.IsZero() {
		u.RegisteredAt = now()
	}
	return nil
}
