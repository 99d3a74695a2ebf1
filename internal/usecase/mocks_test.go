package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nduthigear/gearhq/internal/domain"
)

type MockCategoryRepo struct{ mock.Mock }

func (m *MockCategoryRepo) Save(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) CreateWithItems(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepo) Save(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockConsultationRepo struct{ mock.Mock }

func (m *MockConsultationRepo) Create(ctx context.Context, c *domain.Consultation) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockConsultationRepo) List(ctx context.Context) ([]domain.Consultation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consultation), args.Error(1)
}

type MockGearRepo struct{ mock.Mock }

func (m *MockGearRepo) Save(ctx context.Context, g *domain.GearProduct) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGearRepo) List(ctx context.Context, category string) ([]domain.GearProduct, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GearProduct), args.Error(1)
}

type MockTwitterRepo struct{ mock.Mock }

func (m *MockTwitterRepo) Save(ctx context.Context, p *domain.TwitterPost) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockTwitterRepo) Latest(ctx context.Context, limit int) ([]domain.TwitterPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TwitterPost), args.Error(1)
}

type staticCredentials bool

func (c staticCredentials) Configured() bool { return bool(c) }
