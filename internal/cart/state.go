// Package cart holds the shopping cart state machine: an immutable, versioned
// State, the commands that transform it and a Store that serialises dispatch.
package cart

import (
	"encoding/json"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// LineItem pairs a product snapshot with a quantity of at least 1.
type LineItem struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Subtotal is price × quantity for the line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// State is a cart snapshot. The zero value is the empty cart. Values are never
// modified after construction; every transition builds a new State.
type State struct {
	items   []LineItem
	total   decimal.Decimal
	version uint64
}

// Empty returns the initial cart.
func Empty() State {
	return State{}
}

// newState derives the total from items; there is no other way to set it.
func newState(items []LineItem, version uint64) State {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return State{items: items, total: total, version: version}
}

// Items returns a copy of the line items in insertion order.
func (s State) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s State) Total() decimal.Decimal {
	return s.total
}

// ItemCount is the number of units across all lines.
func (s State) ItemCount() int {
	n := 0
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

func (s State) Len() int {
	return len(s.items)
}

func (s State) IsEmpty() bool {
	return len(s.items) == 0
}

// Version increases by one on every transition that changes the cart.
func (s State) Version() uint64 {
	return s.version
}

// Line looks up the line for productID.
func (s State) Line(productID string) (LineItem, bool) {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return LineItem{}, false
}

func (s State) indexOf(productID string) int {
	for i, item := range s.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

type stateJSON struct {
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Version   uint64          `json:"version"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		Items:     s.Items(),
		Total:     s.total,
		ItemCount: s.ItemCount(),
		Version:   s.version,
	})
}
