// internal/model/merchant.go
package model

import (
	"database/sql"
	"time"
)

// Merchant is the legacy predecessor of Organization+Location. New code paths
// do not create merchants, but deployed stores still hold rows keyed by the
// textual RestaurantID business key, with the numeric surrogate id added by
// the schema bootstrap after the fact.
type Merchant struct {
	ID           int64          `gorm:"primaryKey" json:"id"`
	RestaurantID string         `gorm:"column:restaurant_id;type:text;uniqueIndex:merchants_rid_uidx" json:"restaurant_id"`
	APIKey       string         `gorm:"column:api_key;type:text" json:"-"`
	Name         sql.NullString `gorm:"type:text" json:"name"`
	Phone        sql.NullString `gorm:"type:text" json:"phone"`
	Address      sql.NullString `gorm:"type:text" json:"address"`
	CloseTime    sql.NullString `gorm:"column:close_time;type:text" json:"close_time"`
	CreatedAt    time.Time      `json:"created_at"`
}
