package cart

import (
	"errors"

	"minimarket/internal/domain"
)

// TaxRate is the fixed IVA rate applied to the cart subtotal.
const TaxRate = 0.15

var ErrInvalidItem = errors.New("cart: product has no identifier")

// Item is one (product, quantity) line in the cart. Two items are the same
// line iff their product IDs match; price or name differences on an
// already-added product do not open a second line.
type Item struct {
	Product domain.Product
	Qty     int
}

func (it Item) Subtotal() float64 {
	return float64(it.Qty) * it.Product.Price
}

// Cart is the session-scoped aggregate of line items. It keeps insertion
// order, holds at most one line per product identity, and derives its totals
// on every call instead of storing them. Not safe for concurrent mutation;
// one session drives one request at a time.
type Cart struct {
	items []*Item
}

func New() *Cart { return &Cart{} }

// AddItem merges by product identity: if a line for p already exists its
// quantity goes up by exactly one, whatever qty says. qty only sizes the
// first insert, and never below 1.
func (c *Cart) AddItem(p domain.Product, qty int) error {
	if p.ID <= 0 {
		return ErrInvalidItem
	}
	for _, it := range c.items {
		if it.Product.ID == p.ID {
			it.Qty++
			return nil
		}
	}
	if qty < 1 {
		qty = 1
	}
	c.items = append(c.items, &Item{Product: p, Qty: qty})
	return nil
}

// Items returns the live line items in insertion order. Callers render or
// invoice them; all mutation goes through AddItem.
func (c *Cart) Items() []*Item {
	return c.items
}

func (c *Cart) Empty() bool { return len(c.items) == 0 }

func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, it := range c.items {
		sum += it.Subtotal()
	}
	return sum
}

func (c *Cart) Tax() float64 { return c.Subtotal() * TaxRate }

func (c *Cart) Total() float64 { return c.Subtotal() + c.Tax() }
