package catalog

import (
	"barstock-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/stores
func ListStoresHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var stores []models.Store
		if err := db.Preload("Locations").Order("name").Find(&stores).Error; err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": stores})
	}
}
