package inventory

import (
	"time"

	"barstock-backend/internal/models"
)

// Repository is the engine's storage capability. WithTransaction runs fn
// against a transaction-scoped Repository; any error rolls the whole
// transaction back, so no partial count is ever observable.
type Repository interface {
	WithTransaction(fn func(Repository) error) error

	// GetInventory returns nil (no error) when the id is unknown.
	GetInventory(id uint) (*models.Inventory, error)
	// ActiveInventoryID reports the Unlocked count at a location, 0 when
	// none. excludeID skips the count being updated.
	ActiveInventoryID(locationID, excludeID uint) (uint, error)
	// PriorCountItems returns the items of the most recent count (highest
	// id, excludeID skipped) at the location, ordered by display order.
	PriorCountItems(locationID, excludeID uint) ([]PriorItem, error)
	// GetProduct returns nil (no error) when the id is unknown.
	GetProduct(id uint) (*models.Product, error)

	CreateInventory(inv *models.Inventory) error
	UpdateInventoryFields(id uint, fields map[string]any) error
	UpdateStatus(id uint, status string) error
	UpdateTotals(id uint, totalWs, totalLoss float64) error
	DeleteInventory(id uint) error

	CreateItem(item *models.InventoryItem) error
	DeleteItems(inventoryID uint) error
	UpdateItemOrder(inventoryID, itemID uint, displayOrder int) error

	CreateLoss(loss *models.InventoryLoss) error
	DeleteLosses(inventoryID uint) error

	// Read models for the API surface.
	ListInventories(storeID uint) ([]InventorySummary, error)
	GetInventoryDetail(id uint) (*InventoryDetail, error)
	AvailableProducts(storeID uint) ([]AvailableProduct, error)
	LastInventoryProducts(locationID uint) ([]LastProduct, uint, error)
}

type PriorItem struct {
	ProductID    uint `json:"product_id"`
	DisplayOrder int  `json:"display_order"`
}

type InventorySummary struct {
	ID             uint      `json:"id"`
	StoreID        uint      `json:"store_id"`
	LocationID     *uint     `json:"location_id"`
	Type           string    `json:"inventory_type"`
	Date           time.Time `json:"inventory_date"`
	Status         string    `json:"status"`
	TotalWsValue   float64   `json:"total_ws_value"`
	TotalLossValue float64   `json:"total_losses_value"`
	CreatedAt      time.Time `json:"created_at"`
	StoreName      string    `json:"store_name"`
	LocationName   *string   `json:"location_name"`
	TotalProducts  int64     `json:"total_products"`
	TotalLosses    int64     `json:"total_losses"`
}

type ItemDetail struct {
	ID             uint     `json:"id"`
	InventoryID    uint     `json:"inventory_id"`
	ProductID      uint     `json:"product_id"`
	LocationID     *uint    `json:"location_id"`
	DisplayOrder   int      `json:"display_order"`
	QuantityType   string   `json:"quantity_type"`
	Quantity       float64  `json:"quantity"`
	CaseSize       *int     `json:"case_size"`
	WeightOz       *float64 `json:"weight_oz"`
	FullWeight     *float64 `json:"full_weight"`
	EmptyWeight    *float64 `json:"empty_weight"`
	NetWeight      *float64 `json:"net_weight"`
	WholesaleValue float64  `json:"wholesale_value"`

	ProductName        string   `json:"product_name"`
	ProductCode        string   `json:"product_code"`
	ContainerType      string   `json:"container_type"`
	ContainerSize      float64  `json:"container_size"`
	ContainerUnit      string   `json:"container_unit"`
	ProductCaseSize    *int     `json:"product_case_size"`
	ProductFullWeight  *float64 `json:"product_full_weight"`
	ProductEmptyWeight *float64 `json:"product_empty_weight"`
	WholesalePrice     float64  `json:"wholesale_price"`
	LocationName       *string  `json:"location_name"`
}

type LossDetail struct {
	ID          uint      `json:"id"`
	InventoryID uint      `json:"inventory_id"`
	ProductID   uint      `json:"product_id"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Reason      string    `json:"reason"`
	LossValue   float64   `json:"loss_value"`
	CreatedAt   time.Time `json:"created_at"`
	ProductName string    `json:"product_name"`
	ProductCode string    `json:"product_code"`
}

type InventoryDetail struct {
	InventorySummary
	Items  []ItemDetail `json:"items"`
	Losses []LossDetail `json:"losses"`
}

type AvailableProduct struct {
	ID                        uint     `json:"id"`
	Name                      string   `json:"name"`
	ProductCode               string   `json:"product_code"`
	ContainerType             string   `json:"container_type"`
	ContainerSize             float64  `json:"container_size"`
	ContainerUnit             string   `json:"container_unit"`
	ContainerSizeBaseUnit     *float64 `json:"container_size_base_unit"`
	ContainerSizeBaseUnitType string   `json:"container_size_base_unit_type"`
	CaseSize                  *int     `json:"case_size"`
	WholesalePrice            float64  `json:"wholesale_price"`
	FullWeight                *float64 `json:"full_weight"`
	EmptyWeight               *float64 `json:"empty_weight"`
	WeightUnit                string   `json:"weight_unit"`
	Par                       *float64 `json:"par"`
	ReorderPoint              *float64 `json:"reorder_point"`
	OrderByThe                string   `json:"order_by_the"`
}

type LastProduct struct {
	DisplayOrder       int      `json:"display_order"`
	QuantityType       string   `json:"quantity_type"`
	FullWeight         *float64 `json:"full_weight"`
	EmptyWeight        *float64 `json:"empty_weight"`
	NetWeight          *float64 `json:"net_weight"`
	ProductID          uint     `json:"productId"`
	ProductName        string   `json:"productName"`
	ProductCode        string   `json:"productCode"`
	ContainerType      string   `json:"containerType"`
	ContainerSize      float64  `json:"containerSize"`
	ContainerUnit      string   `json:"containerUnit"`
	CaseSize           *int     `json:"caseSize"`
	ProductFullWeight  *float64 `json:"product_full_weight"`
	ProductEmptyWeight *float64 `json:"product_empty_weight"`
	WholesalePrice     float64  `json:"wholesalePrice"`
}
