package inventory

import (
	"fmt"

	"barstock-backend/internal/audit"
	"barstock-backend/internal/auth"
	"barstock-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuditSink records count mutations. Satisfied by audit.Recorder.
type AuditSink interface {
	Write(opts audit.LogOptions) error
}

// Handlers exposes the count engine over HTTP. Domain errors bubble up to the
// app-level error handler, which maps them to status codes.
type Handlers struct {
	svc   *Service
	audit AuditSink
	log   *zap.Logger
}

func NewHandlers(svc *Service, sink AuditSink, log *zap.Logger) *Handlers {
	return &Handlers{svc: svc, audit: sink, log: log}
}

func (h *Handlers) record(c *fiber.Ctx, action models.AuditAction, entityID uint, description string, before, after any) {
	userID, userName := auth.UserFromContext(c)
	err := h.audit.Write(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "inventory",
		EntityID:    entityID,
		Action:      action,
		Description: description,
		Before:      before,
		After:       after,
	})
	if err != nil {
		h.log.Warn("audit write failed", zap.Error(err))
	}
}

func idParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// GET /api/inventories?storeId=1
func (h *Handlers) List(c *fiber.Ctx) error {
	storeID := c.QueryInt("storeId")
	rows, err := h.svc.List(uint(max(storeID, 0)))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": rows})
}

// GET /api/inventories/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	detail, err := h.svc.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": detail})
}

// GET /api/inventories/available-products?storeId=1
func (h *Handlers) AvailableProducts(c *fiber.Ctx) error {
	rows, err := h.svc.AvailableProducts(uint(max(c.QueryInt("storeId"), 0)))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": rows})
}

// GET /api/inventories/last-products/:locationId
func (h *Handlers) LastProducts(c *fiber.Ctx) error {
	locationID, err := c.ParamsInt("locationId")
	if err != nil || locationID < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid locationId")
	}
	rows, lastID, err := h.svc.LastProducts(uint(locationID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"inventoryId": lastID,
			"products":    rows,
		},
	})
}

// POST /api/inventories
func (h *Handlers) Create(c *fiber.Ctx) error {
	var body CreateInventoryInput
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.svc.Create(body)
	if err != nil {
		return err
	}

	h.record(c, models.AuditActionCreate, result.ID,
		fmt.Sprintf("created count for store %d", body.StoreID), nil, result)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Inventory created successfully",
		"data":    result,
	})
}

// PUT /api/inventories/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var body UpdateInventoryInput
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	before := h.svc.snapshot(id)
	if err := h.svc.Update(id, body); err != nil {
		return err
	}

	h.record(c, models.AuditActionUpdate, id, "updated count", before, body)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inventory updated successfully",
	})
}

// PATCH /api/inventories/:id/toggle-lock
func (h *Handlers) ToggleLock(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	status, err := h.svc.ToggleLock(id)
	if err != nil {
		return err
	}

	action := models.AuditActionLock
	if status == models.StatusUnlocked {
		action = models.AuditActionUnlock
	}
	h.record(c, action, id, "toggled count lock", nil, fiber.Map{"status": status})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inventory status updated",
		"data":    fiber.Map{"id": id, "status": status},
	})
}

// PATCH /api/inventories/:id/reorder
func (h *Handlers) Reorder(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var body ReorderInput
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.Reorder(id, body); err != nil {
		return err
	}

	h.record(c, models.AuditActionUpdate, id, "reordered count items", nil, body)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item order updated successfully",
	})
}

// DELETE /api/inventories/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	before := h.svc.snapshot(id)
	if err := h.svc.Delete(id); err != nil {
		return err
	}

	h.record(c, models.AuditActionDelete, id, "deleted count", before, nil)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inventory deleted successfully",
	})
}
