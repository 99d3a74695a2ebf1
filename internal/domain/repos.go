package domain

import (
	"context"

	"github.com/google/uuid"
)

type CategoryRepo interface {
	Save(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, f ProductFilter) ([]Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepo persists orders. CreateWithItems writes the order row first, then
// its items referencing the generated identity, inside one transaction.
type OrderRepo interface {
	CreateWithItems(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Save(ctx context.Context, o *Order) error
}

type ConsultationRepo interface {
	Create(ctx context.Context, c *Consultation) error
	List(ctx context.Context) ([]Consultation, error)
}

type GearRepo interface {
	Save(ctx context.Context, g *GearProduct) error
	List(ctx context.Context, category string) ([]GearProduct, error)
}

type TwitterRepo interface {
	Save(ctx context.Context, p *TwitterPost) error
	Latest(ctx context.Context, limit int) ([]TwitterPost, error)
}
