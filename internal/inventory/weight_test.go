package inventory

import (
	"testing"

	"barstock-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestReconcileWeightsSubmittedValuesWin(t *testing.T) {
	product := &models.Product{FullWeight: fptr(900), EmptyWeight: fptr(400)}

	w := reconcileWeights(fptr(800), fptr(300), product)

	require.NotNil(t, w.Full)
	require.NotNil(t, w.Empty)
	require.NotNil(t, w.Net)
	assert.Equal(t, 800.0, *w.Full)
	assert.Equal(t, 300.0, *w.Empty)
	assert.Equal(t, 500.0, *w.Net)
}

func TestReconcileWeightsCatalogFillsGaps(t *testing.T) {
	product := &models.Product{FullWeight: fptr(900), EmptyWeight: fptr(400)}

	w := reconcileWeights(nil, nil, product)

	require.NotNil(t, w.Net)
	assert.Equal(t, 900.0, *w.Full)
	assert.Equal(t, 400.0, *w.Empty)
	assert.Equal(t, 500.0, *w.Net)
}

func TestReconcileWeightsNoNetWhenSideMissing(t *testing.T) {
	product := &models.Product{FullWeight: fptr(900)}

	w := reconcileWeights(nil, nil, product)

	assert.NotNil(t, w.Full)
	assert.Nil(t, w.Empty)
	assert.Nil(t, w.Net)
}

func TestReconcileWeightsNoNetWhenFullNotAboveEmpty(t *testing.T) {
	w := reconcileWeights(fptr(300), fptr(300), nil)
	assert.Nil(t, w.Net)

	w = reconcileWeights(fptr(200), fptr(300), nil)
	assert.Nil(t, w.Net)
}

func TestReconcileWeightsZeroCatalogWeightIsMissing(t *testing.T) {
	product := &models.Product{FullWeight: fptr(0), EmptyWeight: fptr(400)}

	w := reconcileWeights(nil, nil, product)

	assert.Nil(t, w.Full)
	assert.Nil(t, w.Net)
}

func TestReconcileWeightsNilProduct(t *testing.T) {
	w := reconcileWeights(nil, nil, nil)

	assert.Nil(t, w.Full)
	assert.Nil(t, w.Empty)
	assert.Nil(t, w.Net)
}

func TestNumberParsing(t *testing.T) {
	var n Number

	require.NoError(t, n.UnmarshalJSON([]byte(`"2.5"`)))
	f, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	require.NoError(t, n.UnmarshalJSON([]byte(`3`)))
	f, ok = n.Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	require.NoError(t, n.UnmarshalJSON([]byte(`null`)))
	_, ok = n.Float()
	assert.False(t, ok)

	require.NoError(t, n.UnmarshalJSON([]byte(`"abc"`)))
	_, ok = n.Float()
	assert.False(t, ok)
	assert.Equal(t, 0.0, n.FloatOrZero())
	assert.Nil(t, n.PositiveFloat())

	require.NoError(t, n.UnmarshalJSON([]byte(`"-4"`)))
	assert.Nil(t, n.PositiveFloat())
	assert.Equal(t, -4.0, n.FloatOrZero())
}
