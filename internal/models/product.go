package models

import "time"

// Product: catalog definition. Read-only from the count engine's perspective;
// full/empty weight act as fallbacks for weight reconciliation.
type Product struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:150;not null"`
	Code          string `gorm:"size:50;index"`
	ContainerType string `gorm:"size:50"` // Bottle, Can, Keg, Box...
	ContainerSize float64
	ContainerUnit string `gorm:"size:20"` // ml, L, fl oz, g, kg, lb, oz, Each

	// Derived from ContainerSize/ContainerUnit via the units package.
	ContainerSizeBaseUnit     *float64
	ContainerSizeBaseUnitType string `gorm:"size:10"` // ml, g or unit

	CaseSize       *int
	WholesalePrice float64

	FullWeight      *float64
	FullWeightUnit  string `gorm:"size:20"`
	EmptyWeight     *float64
	EmptyWeightUnit string `gorm:"size:20"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreProduct: which catalog products a store actually counts, with the
// store's own par levels.
type StoreProduct struct {
	ID           uint `gorm:"primaryKey"`
	StoreID      uint `gorm:"index;not null"`
	Store        Store
	ProductID    uint `gorm:"index;not null"`
	Product      Product
	Par          *float64
	ReorderPoint *float64
	OrderByThe   string `gorm:"size:20"` // case or unit
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
