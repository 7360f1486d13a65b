package domain

// Summary holds display-only figures for the cart page. It is never
// persisted.
type Summary struct {
	// CharityTotal is the share of the total that goes to charities.
	CharityTotal float64 `json:"charityTotal"`
	// Savings is the discount against original prices.
	Savings float64 `json:"savings"`
}

// Summarize computes the cart page figures for state.
func Summarize(state State) Summary {
	var sum Summary
	for _, line := range state.Items {
		subtotal := line.Subtotal()
		sum.CharityTotal += subtotal * line.CharityPercent / 100
		if line.OriginalPrice > line.Price {
			sum.Savings += (line.OriginalPrice - line.Price) * float64(line.Quantity)
		}
	}
	return sum
}
