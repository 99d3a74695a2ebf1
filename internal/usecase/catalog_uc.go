package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/nduthigear/gearhq/internal/domain"
)

// CatalogUC covers the storefront catalog: riding-style categories and the
// products hanging off them.
type CatalogUC struct {
	Categories domain.CategoryRepo
	Products   domain.ProductRepo
}

func (uc *CatalogUC) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.Categories.List(ctx)
}

func (uc *CatalogUC) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return uc.Categories.FindByID(ctx, id)
}

func (uc *CatalogUC) CreateCategory(ctx context.Context, c *domain.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("category name required")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return uc.Categories.Save(ctx, c)
}

func (uc *CatalogUC) SaveCategory(ctx context.Context, c *domain.Category) error {
	return uc.Categories.Save(ctx, c)
}

func (uc *CatalogUC) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return uc.Categories.Delete(ctx, id)
}

func (uc *CatalogUC) ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	return uc.Products.List(ctx, f)
}

func (uc *CatalogUC) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.Products.FindByID(ctx, id)
}

func (uc *CatalogUC) CreateProduct(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name required")
	}
	if !p.ProductType.Valid() {
		return errors.New("invalid product type")
	}
	if p.Price.IsNegative() {
		return errors.New("price cannot be negative")
	}
	if p.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) SaveProduct(ctx context.Context, p *domain.Product) error {
	if p.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return uc.Products.Delete(ctx, id)
}
