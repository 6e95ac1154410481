// internal/model/user.go
package model

import (
	"time"
)

// User is an account identified by a unique phone number. The phone column
// carries a unique index; the application-level existence check before insert
// is an optimization, the index is the invariant.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Phone        string    `gorm:"type:text;uniqueIndex:users_phone_uidx;not null" json:"phone"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
