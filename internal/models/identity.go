package models

import "time"

// Identity is an account in the credential store. It plays the role of the
// external auth provider: sign-in resolves one of these, authorization is
// decided separately against the login collection.
type Identity struct {
	UID          string    `gorm:"primaryKey;size:128" json:"uid"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	DisplayName  string    `gorm:"size:255" json:"display_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Identity) TableName() string {
	return "identities"
}
