package domain

import catalog "givehope_backend/internal/catalog/domain"

// Action is one of the fixed cart operations. The set is closed: only the
// types in this file implement it.
type Action interface {
	// Name is the stable identifier used in logs.
	Name() string
	isAction()
}

// AddItem appends p with quantity 1, or bumps the existing line's quantity.
type AddItem struct {
	Product catalog.Product
}

// RemoveItem deletes the line for ProductID.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity sets the line's quantity verbatim. Zero and negative values
// are stored as given and the line is kept.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// IncreaseQuantity adds one to the line's quantity.
type IncreaseQuantity struct {
	ProductID string
}

// DecreaseQuantity subtracts one, floored at zero; lines at zero are dropped.
type DecreaseQuantity struct {
	ProductID string
}

// ClearCart resets to the empty state.
type ClearCart struct{}

// LoadCart replaces the state wholesale without re-deriving aggregates.
type LoadCart struct {
	State State
}

func (AddItem) Name() string          { return "ADD_ITEM" }
func (RemoveItem) Name() string       { return "REMOVE_ITEM" }
func (UpdateQuantity) Name() string   { return "UPDATE_QUANTITY" }
func (IncreaseQuantity) Name() string { return "INCREASE_QUANTITY" }
func (DecreaseQuantity) Name() string { return "DECREASE_QUANTITY" }
func (ClearCart) Name() string        { return "CLEAR_CART" }
func (LoadCart) Name() string         { return "LOAD_CART" }

func (AddItem) isAction()          {}
func (RemoveItem) isAction()       {}
func (UpdateQuantity) isAction()   {}
func (IncreaseQuantity) isAction() {}
func (DecreaseQuantity) isAction() {}
func (ClearCart) isAction()        {}
func (LoadCart) isAction()         {}
