package inventory

// assignDisplayOrder computes the display order for the items of a new count.
// Products that were not in the location's previous count come first, in
// submission order, followed by carried-forward products in their previous
// relative order. Positions are sequential starting from 1.
//
// The returned slice maps item index to display order and is parallel to
// items.
func assignDisplayOrder(items []ItemInput, prior []PriorItem) []int {
	priorOrder := make(map[uint]int, len(prior))
	for _, p := range prior {
		priorOrder[p.ProductID] = p.DisplayOrder
	}

	type positioned struct {
		index int
		seen  bool
		prev  int
	}
	ordered := make([]positioned, 0, len(items))
	for i, item := range items {
		prev, seen := priorOrder[item.ProductID]
		ordered = append(ordered, positioned{index: i, seen: seen, prev: prev})
	}

	// Insertion-stable partition: new products keep submission order, carried
	// products sort by their previous display order.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0; j-- {
			a, b := ordered[j-1], ordered[j]
			swap := false
			switch {
			case a.seen && !b.seen:
				swap = true
			case a.seen && b.seen && a.prev > b.prev:
				swap = true
			}
			if !swap {
				break
			}
			ordered[j-1], ordered[j] = b, a
		}
	}

	orders := make([]int, len(items))
	for pos, p := range ordered {
		orders[p.index] = pos + 1
	}
	return orders
}
