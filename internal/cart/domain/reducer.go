package domain

// Reduce applies action to state and returns the next state. It is pure:
// state is never modified. Every action except LoadCart re-derives Total
// and ItemCount from the resulting items.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		next := state.clone()
		if i := next.indexOf(a.Product.ID); i >= 0 {
			next.Items[i].Quantity++
		} else {
			next.Items = append(next.Items, Line{Product: a.Product, Quantity: 1})
		}
		return withDerived(next.Items)

	case RemoveItem:
		items := make([]Line, 0, len(state.Items))
		for _, line := range state.Items {
			if line.ID != a.ProductID {
				items = append(items, line)
			}
		}
		return withDerived(items)

	case UpdateQuantity:
		next := state.clone()
		for i := range next.Items {
			if next.Items[i].ID == a.ProductID {
				next.Items[i].Quantity = a.Quantity
			}
		}
		return withDerived(next.Items)

	case IncreaseQuantity:
		next := state.clone()
		for i := range next.Items {
			if next.Items[i].ID == a.ProductID {
				next.Items[i].Quantity++
			}
		}
		return withDerived(next.Items)

	case DecreaseQuantity:
		// The positive-quantity filter runs over every line, so a line left at
		// zero or below by UpdateQuantity is dropped here too.
		items := make([]Line, 0, len(state.Items))
		for _, line := range state.Items {
			if line.ID == a.ProductID {
				line.Quantity = max(0, line.Quantity-1)
			}
			if line.Quantity > 0 {
				items = append(items, line)
			}
		}
		return withDerived(items)

	case ClearCart:
		return Empty()

	case LoadCart:
		return a.State.clone()

	default:
		return state
	}
}

// Derive folds items left to right into the cart aggregates.
func Derive(items []Line) (total float64, itemCount int) {
	for _, line := range items {
		total += line.Price * float64(line.Quantity)
		itemCount += line.Quantity
	}
	return total, itemCount
}

func withDerived(items []Line) State {
	total, count := Derive(items)
	return State{Items: items, Total: total, ItemCount: count}
}
