package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBaseUnit(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  float64
		ok    bool
	}{
		{"liters to ml", 0.75, "L", 750, true},
		{"ml passthrough", 330, "ml", 330, true},
		{"gallon to ml", 1, "Gallon", 3785.41, true},
		{"fluid ounce to ml", 2, "fl oz", 59.147, true},
		{"kg to grams", 1.5, "kg", 1500, true},
		{"pound to grams", 1, "lb", 453.592, true},
		{"count unit does not convert", 6, "Each", 0, false},
		{"unknown unit", 10, "barrels", 0, false},
		{"zero value", 0, "L", 0, false},
		{"empty unit", 5, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToBaseUnit(tt.value, tt.unit)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestBaseUnitLabel(t *testing.T) {
	assert.Equal(t, "ml", BaseUnitLabel("L"))
	assert.Equal(t, "ml", BaseUnitLabel("fl oz"))
	assert.Equal(t, "g", BaseUnitLabel("oz"))
	assert.Equal(t, "unit", BaseUnitLabel("Each"))
	assert.Equal(t, "", BaseUnitLabel("barrels"))
}

func TestUnitKind(t *testing.T) {
	assert.Equal(t, KindVolume, UnitKind("Gallon"))
	assert.Equal(t, KindWeight, UnitKind("lb"))
	assert.Equal(t, KindCount, UnitKind("Each"))
	assert.Equal(t, KindUnknown, UnitKind(""))
}
