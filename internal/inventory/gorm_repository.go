package inventory

import (
	"errors"

	"barstock-backend/internal/apperror"
	"barstock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const activeCountIndex = "uniq_one_unlocked_count_per_location"

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) WithTransaction(fn func(Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

// translateError maps the partial unique index on unlocked counts to the
// same conflict the in-transaction check raises, so the race between two
// concurrent creates and the explicit check are indistinguishable to callers.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == activeCountIndex {
			return apperror.Conflict("an active count already exists for this location")
		}
		return apperror.Duplicate("duplicate record")
	}
	return err
}

func (r *GormRepository) GetInventory(id uint) (*models.Inventory, error) {
	var inv models.Inventory
	if err := r.db.First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *GormRepository) ActiveInventoryID(locationID, excludeID uint) (uint, error) {
	query := r.db.Model(&models.Inventory{}).
		Where("location_id = ? AND status = ?", locationID, models.StatusUnlocked)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var inv models.Inventory
	if err := query.First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return inv.ID, nil
}

func (r *GormRepository) PriorCountItems(locationID, excludeID uint) ([]PriorItem, error) {
	sub := r.db.Model(&models.Inventory{}).
		Select("MAX(id)").
		Where("location_id = ?", locationID)
	if excludeID != 0 {
		sub = sub.Where("id != ?", excludeID)
	}

	var items []PriorItem
	err := r.db.Model(&models.InventoryItem{}).
		Select("product_id, display_order").
		Where("inventory_id = (?)", sub).
		Order("display_order").
		Scan(&items).Error
	return items, err
}

func (r *GormRepository) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormRepository) CreateInventory(inv *models.Inventory) error {
	return translateError(r.db.Create(inv).Error)
}

func (r *GormRepository) UpdateInventoryFields(id uint, fields map[string]any) error {
	return translateError(
		r.db.Model(&models.Inventory{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *GormRepository) UpdateStatus(id uint, status string) error {
	return translateError(
		r.db.Model(&models.Inventory{}).Where("id = ?", id).Update("status", status).Error)
}

func (r *GormRepository) UpdateTotals(id uint, totalWs, totalLoss float64) error {
	return r.db.Model(&models.Inventory{}).Where("id = ?", id).Updates(map[string]any{
		"total_ws_value":   totalWs,
		"total_loss_value": totalLoss,
	}).Error
}

func (r *GormRepository) DeleteInventory(id uint) error {
	return r.db.Delete(&models.Inventory{}, "id = ?", id).Error
}

func (r *GormRepository) CreateItem(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *GormRepository) DeleteItems(inventoryID uint) error {
	return r.db.Delete(&models.InventoryItem{}, "inventory_id = ?", inventoryID).Error
}

func (r *GormRepository) UpdateItemOrder(inventoryID, itemID uint, displayOrder int) error {
	return r.db.Model(&models.InventoryItem{}).
		Where("id = ? AND inventory_id = ?", itemID, inventoryID).
		Update("display_order", displayOrder).Error
}

func (r *GormRepository) CreateLoss(loss *models.InventoryLoss) error {
	return r.db.Create(loss).Error
}

func (r *GormRepository) DeleteLosses(inventoryID uint) error {
	return r.db.Delete(&models.InventoryLoss{}, "inventory_id = ?", inventoryID).Error
}

func (r *GormRepository) ListInventories(storeID uint) ([]InventorySummary, error) {
	query := r.db.Table("inventories i").
		Select(`i.id, i.store_id, i.location_id, i.type, i.date, i.status,
			i.total_ws_value, i.total_loss_value, i.created_at,
			s.name AS store_name, l.name AS location_name,
			COUNT(DISTINCT ii.id) AS total_products,
			COUNT(DISTINCT il.id) AS total_losses`).
		Joins("INNER JOIN stores s ON i.store_id = s.id").
		Joins("LEFT JOIN locations l ON i.location_id = l.id").
		Joins("LEFT JOIN inventory_items ii ON i.id = ii.inventory_id").
		Joins("LEFT JOIN inventory_losses il ON i.id = il.inventory_id")

	if storeID != 0 {
		query = query.Where("i.store_id = ?", storeID)
	}

	var rows []InventorySummary
	err := query.
		Group("i.id, s.name, l.name").
		Order("i.date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormRepository) GetInventoryDetail(id uint) (*InventoryDetail, error) {
	var header InventorySummary
	err := r.db.Table("inventories i").
		Select(`i.id, i.store_id, i.location_id, i.type, i.date, i.status,
			i.total_ws_value, i.total_loss_value, i.created_at,
			s.name AS store_name, l.name AS location_name`).
		Joins("INNER JOIN stores s ON i.store_id = s.id").
		Joins("LEFT JOIN locations l ON i.location_id = l.id").
		Where("i.id = ?", id).
		Scan(&header).Error
	if err != nil {
		return nil, err
	}
	if header.ID == 0 {
		return nil, nil
	}

	var items []ItemDetail
	err = r.db.Table("inventory_items ii").
		Select(`ii.id, ii.inventory_id, ii.product_id, ii.location_id,
			ii.display_order, ii.quantity_type, ii.quantity, ii.case_size,
			ii.weight_oz, ii.full_weight, ii.empty_weight, ii.net_weight,
			ii.wholesale_value,
			p.name AS product_name, p.code AS product_code,
			p.container_type, p.container_size, p.container_unit,
			p.case_size AS product_case_size,
			p.full_weight AS product_full_weight,
			p.empty_weight AS product_empty_weight,
			p.wholesale_price, l.name AS location_name`).
		Joins("INNER JOIN products p ON ii.product_id = p.id").
		Joins("LEFT JOIN locations l ON ii.location_id = l.id").
		Where("ii.inventory_id = ?", id).
		Order("ii.display_order ASC, p.name").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	var losses []LossDetail
	err = r.db.Table("inventory_losses il").
		Select(`il.id, il.inventory_id, il.product_id, il.quantity, il.unit,
			il.reason, il.loss_value, il.created_at,
			p.name AS product_name, p.code AS product_code`).
		Joins("INNER JOIN products p ON il.product_id = p.id").
		Where("il.inventory_id = ?", id).
		Order("il.created_at DESC").
		Scan(&losses).Error
	if err != nil {
		return nil, err
	}

	header.TotalProducts = int64(len(items))
	header.TotalLosses = int64(len(losses))
	return &InventoryDetail{InventorySummary: header, Items: items, Losses: losses}, nil
}

func (r *GormRepository) AvailableProducts(storeID uint) ([]AvailableProduct, error) {
	var rows []AvailableProduct
	err := r.db.Table("products p").
		Select(`p.id, p.name, p.code AS product_code,
			p.container_type, p.container_size, p.container_unit,
			p.container_size_base_unit, p.container_size_base_unit_type,
			p.case_size, p.wholesale_price,
			p.full_weight, p.empty_weight, p.full_weight_unit AS weight_unit,
			sp.par, sp.reorder_point, sp.order_by_the`).
		Joins("INNER JOIN store_products sp ON p.id = sp.product_id").
		Where("sp.store_id = ?", storeID).
		Order("p.name").
		Scan(&rows).Error
	return rows, err
}

func (r *GormRepository) LastInventoryProducts(locationID uint) ([]LastProduct, uint, error) {
	var last models.Inventory
	err := r.db.
		Where("location_id = ?", locationID).
		Order("id DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []LastProduct{}, 0, nil
		}
		return nil, 0, err
	}

	var rows []LastProduct
	err = r.db.Table("inventory_items ii").
		Select(`ii.display_order, ii.quantity_type, ii.full_weight,
			ii.empty_weight, ii.net_weight,
			p.id AS product_id, p.name AS product_name, p.code AS product_code,
			p.container_type, p.container_size, p.container_unit, p.case_size,
			p.full_weight AS product_full_weight,
			p.empty_weight AS product_empty_weight,
			p.wholesale_price`).
		Joins("INNER JOIN products p ON ii.product_id = p.id").
		Where("ii.inventory_id = ?", last.ID).
		Order("ii.display_order ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, last.ID, nil
}
