package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nduthigear/gearhq/internal/domain"
)

func TestCreateProductAssignsID(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
	uc := &CatalogUC{Products: repo}

	p := &domain.Product{
		Name:        "Arai XD-4",
		ProductType: domain.ProductTypeHelmet,
		Price:       decimal.RequireFromString("95000.00"),
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"White", "Black"},
	}
	require.NoError(t, uc.CreateProduct(context.Background(), p))
	assert.NotEqual(t, uuid.Nil, p.ID)
	repo.AssertExpectations(t)
}

func TestCreateProductValidation(t *testing.T) {
	repo := new(MockProductRepo)
	uc := &CatalogUC{Products: repo}

	tests := []struct {
		name string
		p    domain.Product
	}{
		{"missing name", domain.Product{ProductType: domain.ProductTypeHelmet}},
		{"bad type", domain.Product{Name: "X", ProductType: "motorcycle"}},
		{"negative price", domain.Product{Name: "X", ProductType: domain.ProductTypeBoots, Price: decimal.RequireFromString("-1")}},
		{"negative stock", domain.Product{Name: "X", ProductType: domain.ProductTypeBoots, StockQuantity: -3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.p
			assert.Error(t, uc.CreateProduct(context.Background(), &p))
		})
	}
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	repo := new(MockCategoryRepo)
	uc := &CatalogUC{Categories: repo}

	assert.Error(t, uc.CreateCategory(context.Background(), &domain.Category{Name: "  "}))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestListProductsPassesFilter(t *testing.T) {
	repo := new(MockProductRepo)
	f := domain.ProductFilter{FeaturedOnly: true}
	repo.On("List", mock.Anything, f).Return([]domain.Product{{Featured: true}}, nil)
	uc := &CatalogUC{Products: repo}

	list, err := uc.ListProducts(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	repo.AssertExpectations(t)
}
