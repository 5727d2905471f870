package inventory

import (
	"bytes"
	"strconv"
)

// Number accepts a JSON number, a quoted number, or null. The counting UI
// sends quantities and weights as strings, so the engine parses them itself
// and decides what an unparseable value means per field.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		*n = Number(data[1 : len(data)-1])
		return nil
	}
	*n = Number(data)
	return nil
}

// Float parses the raw value; ok is false when empty or not a number.
func (n Number) Float() (float64, bool) {
	if n == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FloatOrZero mirrors the lenient parse used for monetary values: anything
// unparseable counts as zero.
func (n Number) FloatOrZero() float64 {
	f, ok := n.Float()
	if !ok {
		return 0
	}
	return f
}

// PositiveFloat treats zero, negatives and garbage as absent, which is the
// rule for weight overrides: they fall back to the catalog value.
func (n Number) PositiveFloat() *float64 {
	f, ok := n.Float()
	if !ok || f <= 0 {
		return nil
	}
	return &f
}

type ItemInput struct {
	ProductID      uint   `json:"productId"`
	ProductName    string `json:"productName"`
	LocationID     *uint  `json:"locationId"`
	QuantityType   string `json:"quantityType"`
	Quantity       Number `json:"quantity"`
	CaseSize       Number `json:"caseSize"`
	WeightOz       Number `json:"weightOz"`
	FullWeight     Number `json:"fullWeight"`
	EmptyWeight    Number `json:"emptyWeight"`
	WholesaleValue Number `json:"wholesaleValue"`
}

// label names the item in validation messages; i is its zero-based position.
func (it ItemInput) label(i int) string {
	if it.ProductName != "" {
		return it.ProductName
	}
	return "product " + strconv.Itoa(i+1)
}

type LossInput struct {
	ProductID      uint   `json:"productId"`
	Quantity       Number `json:"quantity"`
	QuantityType   string `json:"quantityType"`
	Reason         string `json:"reason"`
	WholesaleValue Number `json:"wholesaleValue"`
}

type CreateInventoryInput struct {
	StoreID       uint        `json:"storeId"`
	LocationID    *uint       `json:"locationId"`
	InventoryDate string      `json:"inventoryDate"`
	Status        string      `json:"status"`
	Items         []ItemInput `json:"items"`
	Waste         []LossInput `json:"waste"`
}

type UpdateInventoryInput struct {
	LocationID    *uint       `json:"locationId"`
	InventoryDate string      `json:"inventoryDate"`
	Status        string      `json:"status"`
	Items         []ItemInput `json:"items"`
	Waste         []LossInput `json:"waste"`
}

type ItemOrder struct {
	InventoryItemID uint `json:"id_inventory_item"`
	DisplayOrder    int  `json:"display_order"`
}

type ReorderInput struct {
	ItemOrders []ItemOrder `json:"itemOrders"`
}

type CreateResult struct {
	ID              uint    `json:"id"`
	TotalWsValue    float64 `json:"totalWsValue"`
	TotalWasteValue float64 `json:"totalWasteValue"`
}
