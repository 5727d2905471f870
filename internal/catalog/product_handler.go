package catalog

import (
	"barstock-backend/internal/models"
	"barstock-backend/internal/units"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// applyBaseUnit derives the container size in its base unit (ml, g or unit).
// Catalog rows are seeded externally and may predate the derived columns, so
// reads fill them in rather than trusting the stored values.
func applyBaseUnit(p *models.Product) {
	p.ContainerSizeBaseUnit = nil
	p.ContainerSizeBaseUnitType = ""
	if base, ok := units.ToBaseUnit(p.ContainerSize, p.ContainerUnit); ok {
		p.ContainerSizeBaseUnit = &base
		p.ContainerSizeBaseUnitType = units.BaseUnitLabel(p.ContainerUnit)
	}
}

// GET /api/products
// The catalog is read-only here; counts reference it, they never change it.
func ListProductsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := db.Order("name").Find(&products).Error; err != nil {
			return err
		}
		for i := range products {
			applyBaseUnit(&products[i])
		}
		return c.JSON(fiber.Map{"success": true, "data": products})
	}
}
