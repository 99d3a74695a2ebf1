// Package cart holds the shopper's pending selections between page loads.
// It is the Go rendition of the browser-side cart: an explicitly owned state
// object whose durable storage is an explicit load/save pair instead of an
// implicit side effect.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nduthigear/gearhq/internal/domain"
)

// Item is one pending purchase line. Identity within a cart is the
// (ProductID, Size, Color) triple; Name and Price are snapshots of the
// product at the time it was added.
type Item struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// Store persists the full item list under a fixed key.
type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// Cart is single-goroutine state: it belongs to one shopping session and is
// never shared, so there is no locking.
type Cart struct {
	store Store
	items []Item
}

// New loads the saved item list from store. Absence or a parse failure yields
// an empty cart rather than an error.
func New(store Store) *Cart {
	c := &Cart{store: store}
	if store != nil {
		if items, err := store.Load(); err == nil {
			c.items = items
		}
	}
	return c
}

// AddItem merges into an existing line with the same (product, size, color)
// key by incrementing its quantity, or appends a new line. Quantities are not
// capped and not checked against stock.
func (c *Cart) AddItem(p *domain.Product, quantity int, size, color string) {
	if p == nil || quantity <= 0 {
		return
	}
	if i := c.find(p.ID, size, color); i >= 0 {
		c.items[i].Quantity += quantity
	} else {
		c.items = append(c.items, Item{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
		})
	}
	c.save()
}

// RemoveItem deletes the matching line. Removing an absent line is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID, size, color string) {
	if i := c.find(productID, size, color); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		c.save()
	}
}

// UpdateQuantity replaces the matching line's quantity. A non-positive
// quantity is treated as deletion intent.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int, size, color string) {
	if quantity <= 0 {
		c.RemoveItem(productID, size, color)
		return
	}
	if i := c.find(productID, size, color); i >= 0 {
		c.items[i].Quantity = quantity
		c.save()
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
	c.save()
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of line quantities, recomputed on every read.
func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price×quantity across lines, recomputed on every read.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (c *Cart) find(productID uuid.UUID, size, color string) int {
	for i, it := range c.items {
		if it.ProductID == productID && it.Size == size && it.Color == color {
			return i
		}
	}
	return -1
}

func (c *Cart) save() {
	if c.store != nil {
		_ = c.store.Save(c.items)
	}
}
