package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          *uuid.UUID      `gorm:"type:uuid;index" json:"userId"`
	CustomerName    string          `gorm:"size:140" json:"customerName"`
	CustomerEmail   string          `gorm:"size:140" json:"customerEmail"`
	CustomerPhone   string          `gorm:"size:50" json:"customerPhone"`
	ShippingAddress string          `gorm:"size:255" json:"shippingAddress"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2)" json:"totalAmount"`
	Status          OrderStatus     `gorm:"type:varchar(30);index" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(30)" json:"paymentStatus"`
	Items           []OrderItem     `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem is a denormalized purchase line: name and price are captured at
// checkout time so later catalog edits don't rewrite history. No update path
// exists after creation.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;index" json:"orderId"`
	ProductID    uuid.UUID       `gorm:"type:uuid;index" json:"productId"`
	ProductName  string          `gorm:"size:180" json:"productName"`
	ProductPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"productPrice"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Size         string          `gorm:"size:30" json:"size,omitempty"`
	Color        string          `gorm:"size:60" json:"color,omitempty"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
}
