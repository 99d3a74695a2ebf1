package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nduthigear/gearhq/internal/cart"
	"github.com/nduthigear/gearhq/internal/domain"
)

var validInfo = CustomerInfo{
	Name:    "Jomo Kariuki",
	Email:   "jomo@example.com",
	Phone:   "0712345678",
	Address: "14 Ngong Road, Nairobi",
}

func filledCart(t *testing.T, price string, qty int) *cart.Cart {
	t.Helper()
	c := cart.New(&cart.MemStore{})
	c.AddItem(&domain.Product{
		ID:    uuid.New(),
		Name:  "AGV Pista GP RR",
		Price: decimal.RequireFromString(price),
	}, qty, "M", "Black")
	return c
}

func TestSubmitEmptyCartNeverIssuesRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	w := &Workflow{BaseURL: srv.URL, Logger: zerolog.Nop()}
	_, err := w.Submit(context.Background(), cart.New(&cart.MemStore{}), validInfo)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, called)
}

func TestSubmitValidationFailsPerField(t *testing.T) {
	w := &Workflow{BaseURL: "http://unused", Logger: zerolog.Nop()}
	c := filledCart(t, "1000.00", 1)

	_, err := w.Submit(context.Background(), c, CustomerInfo{
		Name:    "J",
		Email:   "not-an-email",
		Phone:   "123",
		Address: "short",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customerName")
	assert.Contains(t, verr.Fields, "customerEmail")
	assert.Contains(t, verr.Fields, "customerPhone")
	assert.Contains(t, verr.Fields, "shippingAddress")
	assert.Len(t, c.Items(), 1, "cart must be untouched")
}

func TestSubmitBuildsPendingOrderAndClearsCart(t *testing.T) {
	orderID := uuid.New()
	var got checkoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order": map[string]any{"id": orderID},
			"items": []any{},
		})
	}))
	defer srv.Close()

	c := filledCart(t, "2500.00", 2)
	w := &Workflow{BaseURL: srv.URL, Logger: zerolog.Nop()}

	id, err := w.Submit(context.Background(), c, validInfo)
	require.NoError(t, err)
	assert.Equal(t, orderID, id)

	assert.Equal(t, "5000.00", got.Order.TotalAmount)
	assert.Equal(t, "pending", got.Order.Status)
	assert.Equal(t, "pending", got.Order.PaymentStatus)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "AGV Pista GP RR", got.Items[0].ProductName)
	assert.Equal(t, "2500.00", got.Items[0].ProductPrice)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "5000.00", got.Items[0].Subtotal)
	assert.Equal(t, "M", got.Items[0].Size)
	assert.Equal(t, "Black", got.Items[0].Color)

	assert.Empty(t, c.Items(), "cart clears on confirmed success")
}

func TestSubmitServerErrorLeavesCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Failed to create order"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := filledCart(t, "1000.00", 1)
	w := &Workflow{BaseURL: srv.URL, Logger: zerolog.Nop()}

	_, err := w.Submit(context.Background(), c, validInfo)
	require.Error(t, err)
	assert.Len(t, c.Items(), 1)
	assert.Equal(t, "1000.00", c.TotalPrice().StringFixed(2))
}

func TestSubmitNetworkErrorLeavesCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := filledCart(t, "1000.00", 1)
	w := &Workflow{BaseURL: srv.URL, Logger: zerolog.Nop()}

	_, err := w.Submit(context.Background(), c, validInfo)
	require.Error(t, err)
	assert.Len(t, c.Items(), 1)
}
