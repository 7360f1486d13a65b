package transport

import "givehope_backend/internal/cart/domain"

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required,max=100"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// LoadCartRequest carries a client-held snapshot. Its aggregates are taken
// as given.
type LoadCartRequest struct {
	Items     []domain.Line `json:"items"`
	Total     float64       `json:"total"`
	ItemCount int           `json:"itemCount"`
}

func (r LoadCartRequest) State() domain.State {
	items := r.Items
	if items == nil {
		items = []domain.Line{}
	}
	return domain.State{Items: items, Total: r.Total, ItemCount: r.ItemCount}
}

type CartResponse struct {
	Items     []domain.Line  `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"itemCount"`
	Summary   domain.Summary `json:"summary"`
}

// NewCartResponse renders a state with its display summary.
func NewCartResponse(s domain.State) CartResponse {
	items := s.Items
	if items == nil {
		items = []domain.Line{}
	}
	return CartResponse{
		Items:     items,
		Total:     s.Total,
		ItemCount: s.ItemCount,
		Summary:   domain.Summarize(s),
	}
}
