package models

import "time"

// Location: a counting area inside a store (bar, walk-in, storage room...).
// Names are unique per store, case/whitespace-insensitively (enforced in catalog).
type Location struct {
	ID        uint `gorm:"primaryKey"`
	StoreID   uint `gorm:"index;not null"`
	Store     Store
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
