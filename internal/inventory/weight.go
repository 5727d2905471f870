package inventory

import "barstock-backend/internal/models"

// reconciledWeights holds the weights persisted with a counted item after
// falling back to catalog values for whatever the count did not supply.
type reconciledWeights struct {
	Full  *float64
	Empty *float64
	Net   *float64
}

// reconcileWeights merges the weights submitted with an item and the weights
// on the product record. Submitted values win; the catalog fills gaps. Zero
// and negative values are treated as missing, and the net weight is only
// derived when both sides resolved and full exceeds empty.
func reconcileWeights(full, empty *float64, product *models.Product) reconciledWeights {
	w := reconciledWeights{Full: full, Empty: empty}

	if w.Full == nil && product != nil && product.FullWeight != nil && *product.FullWeight > 0 {
		v := *product.FullWeight
		w.Full = &v
	}
	if w.Empty == nil && product != nil && product.EmptyWeight != nil && *product.EmptyWeight > 0 {
		v := *product.EmptyWeight
		w.Empty = &v
	}

	if w.Full != nil && w.Empty != nil && *w.Full > *w.Empty {
		net := *w.Full - *w.Empty
		w.Net = &net
	}
	return w
}
