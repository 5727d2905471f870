package models

import "time"

const (
	StatusUnlocked = "Unlocked"
	StatusLocked   = "Locked"
)

const InventoryTypeStandard = "Standard"

// Inventory: one physical count at a location on a date. Items and losses are
// replaced wholesale on update and cascade-deleted with the count. At most one
// Unlocked count may exist per location (partial unique index, see database).
type Inventory struct {
	ID         uint `gorm:"primaryKey"`
	StoreID    uint `gorm:"index;not null"`
	Store      Store
	LocationID *uint `gorm:"index"`
	Location   Location
	Type       string    `gorm:"size:20;not null;default:Standard"`
	Date       time.Time `gorm:"index;not null"`
	Status     string    `gorm:"size:20;not null;default:Unlocked"`

	TotalWsValue   float64 `gorm:"not null;default:0"`
	TotalLossValue float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items  []InventoryItem `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE"`
	Losses []InventoryLoss `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE"`
}

// InventoryItem: one product's counted quantity within a count. DisplayOrder
// is carried forward from the previous count at the same location. NetWeight
// is set only when both full and empty weight resolved and full > empty.
type InventoryItem struct {
	ID          uint `gorm:"primaryKey"`
	InventoryID uint `gorm:"index;not null"`
	ProductID   uint `gorm:"index;not null"`
	Product     Product
	LocationID  *uint `gorm:"index"` // per-item override, usually nil

	DisplayOrder int    `gorm:"not null"`
	QuantityType string `gorm:"size:20"` // units, cases, weight
	Quantity     float64
	CaseSize     *int
	WeightOz     *float64

	FullWeight  *float64
	EmptyWeight *float64
	NetWeight   *float64

	WholesaleValue float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryLoss: waste/shrink recorded alongside a count.
type InventoryLoss struct {
	ID          uint `gorm:"primaryKey"`
	InventoryID uint `gorm:"index;not null"`
	ProductID   uint `gorm:"index;not null"`
	Product     Product

	Quantity  float64
	Unit      string  `gorm:"size:20"`
	Reason    string  `gorm:"size:255"`
	LossValue float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
}
