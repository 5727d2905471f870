package catalog

import (
	"errors"
	"strings"

	"barstock-backend/internal/apperror"
	"barstock-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type locationRequest struct {
	StoreID uint   `json:"storeId"`
	Name    string `json:"name"`
}

// locationNameTaken checks for another location with the same name in the
// same store, ignoring case and surrounding whitespace. excludeID skips the
// row being updated.
func locationNameTaken(db *gorm.DB, storeID uint, name string, excludeID uint) (bool, error) {
	query := db.Model(&models.Location{}).
		Where("store_id = ? AND LOWER(TRIM(name)) = ?", storeID, strings.ToLower(strings.TrimSpace(name)))
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GET /api/locations?storeId=1
func ListLocationsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := db.Model(&models.Location{}).Order("name")
		if storeID := c.QueryInt("storeId"); storeID > 0 {
			query = query.Where("store_id = ?", storeID)
		}

		var locations []models.Location
		if err := query.Find(&locations).Error; err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": locations})
	}
}

// GET /api/locations/:id
func GetLocationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var location models.Location
		if err := db.Preload("Store").First(&location, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("location not found")
			}
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": location})
	}
}

// POST /api/locations
func CreateLocationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body locationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if body.StoreID == 0 || body.Name == "" {
			return apperror.Validation("storeId and name are required")
		}

		taken, err := locationNameTaken(db, body.StoreID, body.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperror.Duplicate("a location named %q already exists in this store", body.Name)
		}

		location := models.Location{StoreID: body.StoreID, Name: body.Name}
		if err := db.Create(&location).Error; err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Location created successfully",
			"data":    location,
		})
	}
}

// PUT /api/locations/:id
func UpdateLocationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var body locationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return apperror.Validation("name is required")
		}

		var location models.Location
		if err := db.First(&location, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("location not found")
			}
			return err
		}

		taken, err := locationNameTaken(db, location.StoreID, body.Name, location.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperror.Duplicate("a location named %q already exists in this store", body.Name)
		}

		location.Name = body.Name
		if err := db.Save(&location).Error; err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Location updated successfully",
			"data":    location,
		})
	}
}

// DELETE /api/locations/:id
func DeleteLocationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var count int64
		if err := db.Model(&models.Inventory{}).Where("location_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("location has counts and cannot be deleted")
		}

		result := db.Delete(&models.Location{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.NotFound("location not found")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Location deleted successfully",
		})
	}
}
