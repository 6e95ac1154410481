// internal/model/location.go
package model

import (
	"time"
)

// Location is a physical outlet belonging to exactly one organization.
// Offers attach to locations; the owning organization's memberships decide
// who may act on them.
type Location struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	OrgID     int64     `gorm:"column:org_id;not null;index:locations_org_idx" json:"org_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	City      string    `gorm:"type:text" json:"city"`
	Address   string    `gorm:"type:text" json:"address"`
	CloseTime string    `gorm:"type:text" json:"close_time"`
	Timezone  string    `gorm:"type:text" json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}
