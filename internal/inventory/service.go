package inventory

import (
	"time"

	"barstock-backend/internal/apperror"
	"barstock-backend/internal/models"

	"go.uber.org/zap"
)

// Service implements the count lifecycle: create, edit, lock/unlock, reorder
// and delete, plus the read side. All writes for one operation run inside a
// single repository transaction and roll back together.
type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// normalizeStatus maps the wire status to the stored one. Older clients send
// "Open" or omit the field for a count still being entered.
func normalizeStatus(s string) (string, error) {
	switch s {
	case "", "Open", models.StatusUnlocked:
		return models.StatusUnlocked, nil
	case models.StatusLocked:
		return models.StatusLocked, nil
	}
	return "", apperror.Validation("invalid status: %s", s)
}

// validateItems enforces the rules for a count being closed: every line needs
// a product and a positive quantity.
func validateItems(items []ItemInput) error {
	for i, item := range items {
		if item.ProductID == 0 {
			return apperror.Validation("missing product for %s", item.label(i))
		}
		q, ok := item.Quantity.Float()
		if !ok {
			return apperror.Validation("invalid quantity for %s", item.label(i))
		}
		if q <= 0 {
			return apperror.Validation("quantity must be greater than 0 for %s", item.label(i))
		}
	}
	return nil
}

func parseCountDate(raw string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperror.Validation("invalid inventoryDate: %s", raw)
	}
	return d, nil
}

func (s *Service) Create(in CreateInventoryInput) (*CreateResult, error) {
	if in.StoreID == 0 || in.InventoryDate == "" {
		return nil, apperror.Validation("storeId and inventoryDate are required")
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if status == models.StatusLocked && len(in.Items) == 0 {
		return nil, apperror.Validation("you must add at least one product before closing the count")
	}
	if in.LocationID == nil || *in.LocationID == 0 {
		return nil, apperror.Validation("locationId is required")
	}
	date, err := parseCountDate(in.InventoryDate)
	if err != nil {
		return nil, err
	}
	if status == models.StatusLocked {
		if err := validateItems(in.Items); err != nil {
			return nil, err
		}
	}

	var result *CreateResult
	err = s.repo.WithTransaction(func(r Repository) error {
		activeID, err := r.ActiveInventoryID(*in.LocationID, 0)
		if err != nil {
			return err
		}
		if activeID != 0 {
			return apperror.Conflict("an active count already exists for this location")
		}

		prior, err := r.PriorCountItems(*in.LocationID, 0)
		if err != nil {
			return err
		}
		orders := assignDisplayOrder(in.Items, prior)

		inv := &models.Inventory{
			StoreID:    in.StoreID,
			LocationID: in.LocationID,
			Type:       models.InventoryTypeStandard,
			Date:       date,
			Status:     status,
		}
		if err := r.CreateInventory(inv); err != nil {
			return err
		}

		totalWs, err := s.persistItems(r, inv.ID, in.Items, orders)
		if err != nil {
			return err
		}
		totalLoss, err := s.persistLosses(r, inv.ID, in.Waste)
		if err != nil {
			return err
		}
		if err := r.UpdateTotals(inv.ID, totalWs, totalLoss); err != nil {
			return err
		}

		result = &CreateResult{ID: inv.ID, TotalWsValue: totalWs, TotalWasteValue: totalLoss}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("count created",
		zap.Uint("inventory_id", result.ID),
		zap.Uint("store_id", in.StoreID),
		zap.String("status", status),
		zap.Int("items", len(in.Items)))
	return result, nil
}

func (s *Service) Update(id uint, in UpdateInventoryInput) error {
	var status string
	if in.Status != "" {
		var err error
		if status, err = normalizeStatus(in.Status); err != nil {
			return err
		}
	}
	var date *time.Time
	if in.InventoryDate != "" {
		d, err := parseCountDate(in.InventoryDate)
		if err != nil {
			return err
		}
		date = &d
	}
	// The non-empty rule belongs to creation; a status-only save may lock a
	// count that already has its lines. Supplied items are still validated
	// when this save closes the count.
	if status == models.StatusLocked && len(in.Items) > 0 {
		if err := validateItems(in.Items); err != nil {
			return err
		}
	}

	err := s.repo.WithTransaction(func(r Repository) error {
		inv, err := r.GetInventory(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return apperror.NotFound("count not found")
		}
		if inv.Status == models.StatusLocked {
			return apperror.Conflict("cannot edit a locked count")
		}

		locationID := inv.LocationID
		if in.LocationID != nil && *in.LocationID != 0 {
			locationID = in.LocationID
		}
		if locationID == nil || *locationID == 0 {
			return apperror.Validation("locationId is required")
		}
		if in.LocationID != nil && *in.LocationID != 0 && (inv.LocationID == nil || *in.LocationID != *inv.LocationID) {
			activeID, err := r.ActiveInventoryID(*in.LocationID, id)
			if err != nil {
				return err
			}
			if activeID != 0 {
				return apperror.Conflict("an active count already exists for this location")
			}
		}

		fields := map[string]any{}
		if date != nil {
			fields["date"] = *date
		}
		if in.LocationID != nil && *in.LocationID != 0 {
			fields["location_id"] = *in.LocationID
		}
		if status != "" {
			fields["status"] = status
		}
		if len(fields) > 0 {
			if err := r.UpdateInventoryFields(id, fields); err != nil {
				return err
			}
		}

		// Items are replaced wholesale: an update that carries items rebuilds
		// the whole count, one without leaves the lines untouched.
		if len(in.Items) == 0 {
			return nil
		}

		if err := r.DeleteItems(id); err != nil {
			return err
		}
		if err := r.DeleteLosses(id); err != nil {
			return err
		}

		prior, err := r.PriorCountItems(*locationID, id)
		if err != nil {
			return err
		}
		orders := assignDisplayOrder(in.Items, prior)

		totalWs, err := s.persistItems(r, id, in.Items, orders)
		if err != nil {
			return err
		}
		totalLoss, err := s.persistLosses(r, id, in.Waste)
		if err != nil {
			return err
		}
		return r.UpdateTotals(id, totalWs, totalLoss)
	})
	if err != nil {
		return err
	}

	s.log.Info("count updated", zap.Uint("inventory_id", id), zap.Int("items", len(in.Items)))
	return nil
}

// snapshot returns the count as stored, nil when absent. Used for audit
// before-images; a failed read costs the snapshot, never the mutation.
func (s *Service) snapshot(id uint) *models.Inventory {
	inv, err := s.repo.GetInventory(id)
	if err != nil {
		s.log.Warn("count snapshot read failed", zap.Uint("inventory_id", id), zap.Error(err))
		return nil
	}
	return inv
}

// ToggleLock flips a count between Unlocked and Locked and returns the new
// status. Unlocking fails while another count at the location is active.
func (s *Service) ToggleLock(id uint) (string, error) {
	inv, err := s.repo.GetInventory(id)
	if err != nil {
		return "", err
	}
	if inv == nil {
		return "", apperror.NotFound("count not found")
	}

	next := models.StatusLocked
	if inv.Status == models.StatusLocked {
		next = models.StatusUnlocked
	}
	if next == models.StatusUnlocked && inv.LocationID != nil {
		activeID, err := s.repo.ActiveInventoryID(*inv.LocationID, id)
		if err != nil {
			return "", err
		}
		if activeID != 0 {
			return "", apperror.Conflict("an active count already exists for this location")
		}
	}
	if err := s.repo.UpdateStatus(id, next); err != nil {
		return "", err
	}

	s.log.Info("count status toggled", zap.Uint("inventory_id", id), zap.String("status", next))
	return next, nil
}

func (s *Service) Delete(id uint) error {
	inv, err := s.repo.GetInventory(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return apperror.NotFound("count not found")
	}
	if inv.Status == models.StatusLocked {
		return apperror.Conflict("cannot delete a locked count")
	}
	if err := s.repo.DeleteInventory(id); err != nil {
		return err
	}

	s.log.Info("count deleted", zap.Uint("inventory_id", id))
	return nil
}

func (s *Service) Reorder(id uint, in ReorderInput) error {
	if len(in.ItemOrders) == 0 {
		return apperror.Validation("itemOrders is required")
	}
	for _, o := range in.ItemOrders {
		if o.InventoryItemID == 0 || o.DisplayOrder < 1 {
			return apperror.Validation("each item order needs an item id and a display order starting at 1")
		}
	}

	return s.repo.WithTransaction(func(r Repository) error {
		inv, err := r.GetInventory(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return apperror.NotFound("count not found")
		}
		if inv.Status == models.StatusLocked {
			return apperror.Conflict("cannot reorder a locked count")
		}
		for _, o := range in.ItemOrders {
			if err := r.UpdateItemOrder(id, o.InventoryItemID, o.DisplayOrder); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) List(storeID uint) ([]InventorySummary, error) {
	return s.repo.ListInventories(storeID)
}

func (s *Service) Get(id uint) (*InventoryDetail, error) {
	detail, err := s.repo.GetInventoryDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperror.NotFound("count not found")
	}
	return detail, nil
}

func (s *Service) AvailableProducts(storeID uint) ([]AvailableProduct, error) {
	if storeID == 0 {
		return nil, apperror.Validation("storeId is required")
	}
	return s.repo.AvailableProducts(storeID)
}

// LastProducts returns the item lines of the most recent count at a location,
// used to seed a new count sheet in the same order.
func (s *Service) LastProducts(locationID uint) ([]LastProduct, uint, error) {
	if locationID == 0 {
		return nil, 0, apperror.Validation("locationId is required")
	}
	return s.repo.LastInventoryProducts(locationID)
}

// persistItems inserts the count lines and returns the summed wholesale
// value. orders is parallel to items.
func (s *Service) persistItems(r Repository, inventoryID uint, items []ItemInput, orders []int) (float64, error) {
	var total float64
	for i, item := range items {
		if item.ProductID == 0 {
			return 0, apperror.Validation("missing product for %s", item.label(i))
		}
		quantity, ok := item.Quantity.Float()
		if !ok {
			return 0, apperror.Validation("invalid quantity for %s", item.label(i))
		}

		product, err := r.GetProduct(item.ProductID)
		if err != nil {
			return 0, err
		}
		if product == nil {
			return 0, apperror.Validation("unknown product for %s", item.label(i))
		}

		weights := reconcileWeights(
			item.FullWeight.PositiveFloat(), item.EmptyWeight.PositiveFloat(), product)

		var caseSize *int
		if f, ok := item.CaseSize.Float(); ok && f > 0 {
			c := int(f)
			caseSize = &c
		}

		wsValue := item.WholesaleValue.FloatOrZero()
		total += wsValue

		err = r.CreateItem(&models.InventoryItem{
			InventoryID:    inventoryID,
			ProductID:      item.ProductID,
			LocationID:     item.LocationID,
			DisplayOrder:   orders[i],
			QuantityType:   item.QuantityType,
			Quantity:       quantity,
			CaseSize:       caseSize,
			WeightOz:       item.WeightOz.PositiveFloat(),
			FullWeight:     weights.Full,
			EmptyWeight:    weights.Empty,
			NetWeight:      weights.Net,
			WholesaleValue: wsValue,
		})
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// persistLosses inserts the waste lines and returns the summed loss value.
func (s *Service) persistLosses(r Repository, inventoryID uint, losses []LossInput) (float64, error) {
	var total float64
	for _, loss := range losses {
		if loss.ProductID == 0 {
			continue
		}
		unit := loss.QuantityType
		if unit == "" {
			unit = "units"
		}
		lossValue := loss.WholesaleValue.FloatOrZero()
		total += lossValue

		err := r.CreateLoss(&models.InventoryLoss{
			InventoryID: inventoryID,
			ProductID:   loss.ProductID,
			Quantity:    loss.Quantity.FloatOrZero(),
			Unit:        unit,
			Reason:      loss.Reason,
			LossValue:   lossValue,
		})
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}
