package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nduthigear/gearhq/internal/domain"
)

func submittedOrder() *domain.Order {
	return &domain.Order{
		CustomerName:    "Jomo Kariuki",
		CustomerEmail:   "jomo@example.com",
		CustomerPhone:   "0712345678",
		ShippingAddress: "14 Ngong Road, Nairobi",
		TotalAmount:     decimal.RequireFromString("5000.00"),
		// Clients cannot pre-set these; Checkout must force pending.
		Status:        domain.OrderStatusShipped,
		PaymentStatus: domain.PaymentStatusPaid,
		Items: []domain.OrderItem{
			{ProductID: uuid.New(), ProductName: "AGV Pista GP RR", ProductPrice: decimal.RequireFromString("2500.00"), Quantity: 2, Size: "M", Color: "Black", Subtotal: decimal.RequireFromString("5000.00")},
		},
	}
}

func TestCheckoutForcesPendingStatuses(t *testing.T) {
	repo := new(MockOrderRepo)
	repo.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	uc := &OrderUC{Orders: repo}

	o := submittedOrder()
	require.NoError(t, uc.Checkout(context.Background(), o))

	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.Equal(t, domain.PaymentStatusPending, o.PaymentStatus)
	assert.NotEqual(t, uuid.Nil, o.ID)
	for _, it := range o.Items {
		assert.NotEqual(t, uuid.Nil, it.ID)
	}
	repo.AssertExpectations(t)
}

func TestCheckoutRejectsEmptyOrder(t *testing.T) {
	uc := &OrderUC{Orders: new(MockOrderRepo)}

	assert.Error(t, uc.Checkout(context.Background(), &domain.Order{}))
	assert.Error(t, uc.Checkout(context.Background(), nil))
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	repo := new(MockOrderRepo)
	uc := &OrderUC{Orders: repo}

	o := submittedOrder()
	o.Items[0].Quantity = 0
	assert.Error(t, uc.Checkout(context.Background(), o))
	repo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
}

func TestCheckoutRepoFailurePropagates(t *testing.T) {
	repo := new(MockOrderRepo)
	repo.On("CreateWithItems", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	uc := &OrderUC{Orders: repo}

	assert.Error(t, uc.Checkout(context.Background(), submittedOrder()))
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.New()
	repo := new(MockOrderRepo)
	repo.On("FindByID", mock.Anything, id).Return(&domain.Order{ID: id, Status: domain.OrderStatusPending}, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	uc := &OrderUC{Orders: repo}

	o, err := uc.UpdateStatus(context.Background(), id, domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, o.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := new(MockOrderRepo)
	uc := &OrderUC{Orders: repo}

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), "teleported")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := new(MockOrderRepo)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	uc := &OrderUC{Orders: repo}

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), domain.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
