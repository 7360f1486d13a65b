// Package domain implements the shopping cart state machine: a closed set of
// actions reduced over State, derived totals, and write-through persistence
// to a scoped key-value store.
package domain

import (
	"encoding/json"

	catalog "givehope_backend/internal/catalog/domain"
)

// Line is one product's entry in the cart. The product fields are embedded
// so a line serialises as the product object plus "quantity".
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price × quantity for the line.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// State is a full cart snapshot. Items keep first-add order.
type State struct {
	Items     []Line  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// Empty returns the initial cart state.
func Empty() State {
	return State{Items: []Line{}, Total: 0, ItemCount: 0}
}

// IsEmpty reports whether the cart holds no lines.
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Find returns the line for productID.
func (s State) Find(productID string) (Line, bool) {
	if i := s.indexOf(productID); i >= 0 {
		return s.Items[i], true
	}
	return Line{}, false
}

func (s State) indexOf(productID string) int {
	for i := range s.Items {
		if s.Items[i].ID == productID {
			return i
		}
	}
	return -1
}

// clone copies the items slice so reducers never alias their input.
func (s State) clone() State {
	items := make([]Line, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// MarshalJSON encodes a nil Items slice as [] rather than null.
func (s State) MarshalJSON() ([]byte, error) {
	type plain State
	if s.Items == nil {
		s.Items = []Line{}
	}
	return json.Marshal(plain(s))
}
