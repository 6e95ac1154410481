// internal/model/organization.go
package model

import (
	"time"
)

// RoleOwner is the only membership role current flows produce; the column is
// kept for future roles.
const RoleOwner = "owner"

type Organization struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Users     []OrganizationUser `gorm:"foreignKey:OrgID" json:"-"`
	Locations []Location         `gorm:"foreignKey:OrgID" json:"-"`
}

// OrganizationUser links a user to an organization. Every organization is
// created together with its first owner membership, atomically.
type OrganizationUser struct {
	OrgID     int64     `gorm:"primaryKey;column:org_id" json:"org_id"`
	UserID    int64     `gorm:"primaryKey" json:"user_id"`
	Role      string    `gorm:"type:text;not null;default:'owner'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (OrganizationUser) TableName() string { return "organization_users" }
