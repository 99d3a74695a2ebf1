package domain

import (
	"time"

	"github.com/google/uuid"
)

// GearProduct is a display-only catalog card for the gear HQ section.
// Prices are whole-shilling ranges, not cart-able decimals.
type GearProduct struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:140" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:60;index" json:"category"`
	PriceMin    int       `gorm:"not null" json:"priceMin"`
	PriceMax    int       `gorm:"not null" json:"priceMax"`
	ImageURL    string    `gorm:"size:255" json:"imageUrl"`
	InStock     bool      `gorm:"default:true" json:"inStock"`
}

type TwitterPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TweetID   string    `gorm:"size:60;uniqueIndex" json:"tweetId"`
	Content   string    `gorm:"type:text" json:"content"`
	Author    string    `gorm:"size:80" json:"author"`
	Handle    string    `gorm:"size:60" json:"handle"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `gorm:"default:0" json:"likes"`
	Retweets  int       `gorm:"default:0" json:"retweets"`
	Replies   int       `gorm:"default:0" json:"replies"`
	ImageURL  string    `gorm:"size:255" json:"imageUrl,omitempty"`
}
