// Package units converts container and weight measures to base units
// (milliliters for volume, grams for weight). Count units (Each) have no
// base-unit conversion.
package units

var volumeToMl = map[string]float64{
	"ml":     1,
	"L":      1000,
	"Gallon": 3785.41,
	"fl oz":  29.5735,
}

var weightToGrams = map[string]float64{
	"g":  1,
	"kg": 1000,
	"lb": 453.592,
	"oz": 28.3495,
}

var countUnits = map[string]bool{
	"Each": true,
}

type Kind string

const (
	KindVolume  Kind = "volume"
	KindWeight  Kind = "weight"
	KindCount   Kind = "count"
	KindUnknown Kind = "unknown"
)

// ToBaseUnit converts value to ml or g. Count and unknown units do not
// convert; ok is false and the caller keeps the raw value.
func ToBaseUnit(value float64, unit string) (float64, bool) {
	if value == 0 || unit == "" {
		return 0, false
	}
	if countUnits[unit] {
		return 0, false
	}
	if f, ok := volumeToMl[unit]; ok {
		return value * f, true
	}
	if f, ok := weightToGrams[unit]; ok {
		return value * f, true
	}
	return 0, false
}

func UnitKind(unit string) Kind {
	switch {
	case volumeToMl[unit] != 0:
		return KindVolume
	case weightToGrams[unit] != 0:
		return KindWeight
	case countUnits[unit]:
		return KindCount
	default:
		return KindUnknown
	}
}

// BaseUnitLabel returns "ml", "g" or "unit"; empty for unknown units.
func BaseUnitLabel(unit string) string {
	switch UnitKind(unit) {
	case KindVolume:
		return "ml"
	case KindWeight:
		return "g"
	case KindCount:
		return "unit"
	default:
		return ""
	}
}
