package database

import (
	"barstock-backend/internal/config"
	"barstock-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects, migrates the schema and installs the hand-written constraints
// AutoMigrate cannot express. The returned *gorm.DB is injected everywhere;
// there is no package-level handle.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Store{},
		&models.Location{},
		&models.Product{},
		&models.StoreProduct{},
		&models.User{},
		&models.Inventory{},
		&models.InventoryItem{},
		&models.InventoryLoss{},
		&models.AuditLog{},
	)
	if err != nil {
		return nil, err
	}

	// At most one Unlocked count per location. The engine also checks this
	// inside its transaction, but the partial index closes the race between
	// two concurrent creates; a 23505 on it surfaces as the same conflict.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_one_unlocked_count_per_location
		 ON inventories (location_id) WHERE status = 'Unlocked'`,
	).Error; err != nil {
		return nil, err
	}

	log.Info("database connected, migration complete")
	return db, nil
}
