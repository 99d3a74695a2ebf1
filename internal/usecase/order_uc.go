package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nduthigear/gearhq/internal/domain"
)

type OrderUC struct {
	Orders domain.OrderRepo
}

// Checkout persists a submitted order together with its items. Statuses are
// forced to pending regardless of what the client sent; item subtotals arrive
// computed client-side and are stored as submitted.
func (uc *OrderUC) Checkout(ctx context.Context, o *domain.Order) error {
	if o == nil || len(o.Items) == 0 {
		return errors.New("order has no items")
	}
	for i := range o.Items {
		if o.Items[i].Quantity <= 0 {
			return errors.New("item quantity must be positive")
		}
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	o.Status = domain.OrderStatusPending
	o.PaymentStatus = domain.PaymentStatusPending
	return uc.Orders.CreateWithItems(ctx, o)
}

func (uc *OrderUC) List(ctx context.Context) ([]domain.Order, error) {
	return uc.Orders.List(ctx)
}

// GetWithItems returns the order including its lines.
func (uc *OrderUC) GetWithItems(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, id)
}

// UpdateStatus is the only post-checkout mutation: an admin moving the order
// through its lifecycle.
func (uc *OrderUC) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, errors.New("invalid order status")
	}
	o, err := uc.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
