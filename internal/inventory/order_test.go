package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignDisplayOrderNoPriorCount(t *testing.T) {
	items := []ItemInput{{ProductID: 10}, {ProductID: 20}, {ProductID: 30}}

	orders := assignDisplayOrder(items, nil)

	assert.Equal(t, []int{1, 2, 3}, orders)
}

func TestAssignDisplayOrderNewProductsFirst(t *testing.T) {
	prior := []PriorItem{
		{ProductID: 1, DisplayOrder: 1},
		{ProductID: 2, DisplayOrder: 2},
	}
	// Submitted as P1, P3, P2. P3 was never counted here before, so it leads;
	// the carried products follow in their previous order.
	items := []ItemInput{{ProductID: 1}, {ProductID: 3}, {ProductID: 2}}

	orders := assignDisplayOrder(items, prior)

	assert.Equal(t, 2, orders[0]) // P1
	assert.Equal(t, 1, orders[1]) // P3
	assert.Equal(t, 3, orders[2]) // P2
}

func TestAssignDisplayOrderMultipleNewKeepSubmissionOrder(t *testing.T) {
	prior := []PriorItem{{ProductID: 5, DisplayOrder: 1}}
	items := []ItemInput{{ProductID: 7}, {ProductID: 5}, {ProductID: 9}}

	orders := assignDisplayOrder(items, prior)

	assert.Equal(t, 1, orders[0]) // P7, new
	assert.Equal(t, 3, orders[1]) // P5, carried
	assert.Equal(t, 2, orders[2]) // P9, new, after P7
}

func TestAssignDisplayOrderCarriedSortByPreviousOrder(t *testing.T) {
	prior := []PriorItem{
		{ProductID: 1, DisplayOrder: 3},
		{ProductID: 2, DisplayOrder: 1},
		{ProductID: 3, DisplayOrder: 2},
	}
	items := []ItemInput{{ProductID: 1}, {ProductID: 2}, {ProductID: 3}}

	orders := assignDisplayOrder(items, prior)

	assert.Equal(t, 3, orders[0])
	assert.Equal(t, 1, orders[1])
	assert.Equal(t, 2, orders[2])
}
