package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeHelmet ProductType = "helmet"
	ProductTypeJacket ProductType = "jacket"
	ProductTypeGloves ProductType = "gloves"
	ProductTypeBoots  ProductType = "boots"
)

func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeHelmet, ProductTypeJacket, ProductTypeGloves, ProductTypeBoots:
		return true
	}
	return false
}

// Category groups products by riding style (Sport, Cruiser, Adventure, Touring).
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:255" json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string          `gorm:"size:180;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	ProductType   ProductType     `gorm:"type:varchar(30);index" json:"productType"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index" json:"categoryId"`
	Brand         string          `gorm:"size:100" json:"brand"`
	Sizes         []string        `gorm:"type:jsonb;serializer:json" json:"sizes"`
	Colors        []string        `gorm:"type:jsonb;serializer:json" json:"colors"`
	ImageURL      string          `gorm:"size:255" json:"imageUrl"`
	StockQuantity int             `gorm:"not null;default:0" json:"stockQuantity"`
	InStock       bool            `gorm:"default:true" json:"inStock"`
	Featured      bool            `gorm:"default:false;index" json:"featured"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductFilter narrows product listings. The zero value lists everything.
type ProductFilter struct {
	Type         ProductType
	CategoryID   *uuid.UUID
	FeaturedOnly bool
}

// FeaturedLimit bounds the promotional subset returned for featured queries.
const FeaturedLimit = 6
