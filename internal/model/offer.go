// internal/model/offer.go
package model

import (
	"time"
)

type OfferStatus string

const (
	// OfferActive is the only status current flows produce; expired and
	// cancelled are reserved for future lifecycle transitions.
	OfferActive    OfferStatus = "active"
	OfferExpired   OfferStatus = "expired"
	OfferCancelled OfferStatus = "cancelled"
)

// Offer is a sellable surplus-food unit. New rows reference a location;
// legacy rows reference a merchant. Exactly one of the two is set.
//
// An offer is publicly visible iff status = active AND stock > 0 AND
// expires_at > now().
type Offer struct {
	ID          int64       `gorm:"primaryKey" json:"id"`
	LocationID  *int64      `gorm:"column:location_id;index:offers_location_idx" json:"location_id,omitempty"`
	MerchantID  *int64      `gorm:"column:merchant_id;index:offers_merchant_idx" json:"merchant_id,omitempty"`
	Title       string      `gorm:"type:text;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Category    string      `gorm:"type:text;default:'other'" json:"category"`
	Price       float64     `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock       int         `gorm:"not null;default:1" json:"stock"`
	ImageURL    string      `gorm:"column:image_url;type:text;not null" json:"image_url"`
	ExpiresAt   time.Time   `gorm:"column:expires_at;not null;index:offers_expires_idx" json:"expires_at"`
	Status      OfferStatus `gorm:"type:text;not null;default:'active';index:offers_status_idx" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// PublicOffer is the read shape served to buyers: the offer row joined with
// whoever sells it, resolved from the location's organization for new rows or
// the legacy merchant for old ones.
type PublicOffer struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	ImageURL      string    `json:"image_url"`
	ExpiresAt     time.Time `json:"expires_at"`
	Status        string    `json:"status"`
	SellerName    string    `json:"seller_name"`
	SellerAddress string    `json:"seller_address"`
}
