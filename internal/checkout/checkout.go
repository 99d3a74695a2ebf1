// Package checkout materializes a cart into a persisted order through the
// store's REST boundary. It is the client half of the order flow: it validates
// contact fields locally, submits one request carrying the order and all of
// its items, and clears the cart only on confirmed success.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nduthigear/gearhq/internal/cart"
)

// ErrEmptyCart is returned before any network call when there is nothing to buy.
var ErrEmptyCart = errors.New("cart is empty")

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// CustomerInfo is the contact and shipping detail collected at checkout.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ValidationError reports per-field failures so the form can surface each one.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return "invalid checkout form: " + strings.Join(parts, "; ")
}

// Validate mirrors the storefront form rules; it runs before any request.
func (ci CustomerInfo) Validate() error {
	fields := map[string]string{}
	if len(strings.TrimSpace(ci.Name)) < 2 {
		fields["customerName"] = "Name must be at least 2 characters"
	}
	if !emailRe.MatchString(strings.TrimSpace(ci.Email)) {
		fields["customerEmail"] = "Invalid email address"
	}
	if len(strings.TrimSpace(ci.Phone)) < 10 {
		fields["customerPhone"] = "Phone must be at least 10 characters"
	}
	if len(strings.TrimSpace(ci.Address)) < 10 {
		fields["shippingAddress"] = "Address must be at least 10 characters"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type orderPayload struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	ShippingAddress string `json:"shippingAddress"`
	TotalAmount     string `json:"totalAmount"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"paymentStatus"`
}

type itemPayload struct {
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	ProductPrice string    `json:"productPrice"`
	Quantity     int       `json:"quantity"`
	Size         string    `json:"size,omitempty"`
	Color        string    `json:"color,omitempty"`
	Subtotal     string    `json:"subtotal"`
}

type checkoutRequest struct {
	Order orderPayload  `json:"order"`
	Items []itemPayload `json:"items"`
}

// Workflow submits carts to the order API. It does not retry: a failed
// submission leaves the cart untouched so the shopper can resubmit.
type Workflow struct {
	BaseURL string
	Client  *http.Client
	Logger  zerolog.Logger
}

// Submit converts the cart into an order request and posts it. On success the
// cart is cleared and the confirmed order id returned; on any failure the cart
// keeps its contents.
func (w *Workflow) Submit(ctx context.Context, c *cart.Cart, info CustomerInfo) (uuid.UUID, error) {
	items := c.Items()
	if len(items) == 0 {
		return uuid.Nil, ErrEmptyCart
	}
	if err := info.Validate(); err != nil {
		return uuid.Nil, err
	}

	req := checkoutRequest{
		Order: orderPayload{
			CustomerName:    strings.TrimSpace(info.Name),
			CustomerEmail:   strings.TrimSpace(info.Email),
			CustomerPhone:   strings.TrimSpace(info.Phone),
			ShippingAddress: strings.TrimSpace(info.Address),
			TotalAmount:     c.TotalPrice().StringFixed(2),
			Status:          "pending",
			PaymentStatus:   "pending",
		},
	}
	for _, it := range items {
		sub := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		req.Items = append(req.Items, itemPayload{
			ProductID:    it.ProductID,
			ProductName:  it.Name,
			ProductPrice: it.Price.StringFixed(2),
			Quantity:     it.Quantity,
			Size:         it.Size,
			Color:        it.Color,
			Subtotal:     sub.StringFixed(2),
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return uuid.Nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.BaseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return uuid.Nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		w.Logger.Warn().Int("status", resp.StatusCode).Msg("order submission rejected")
		return uuid.Nil, fmt.Errorf("order submission failed: %d %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out struct {
		Order struct {
			ID uuid.UUID `json:"id"`
		} `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return uuid.Nil, err
	}

	c.Clear()
	w.Logger.Info().Str("order_id", out.Order.ID.String()).Msg("order placed")
	return out.Order.ID, nil
}
