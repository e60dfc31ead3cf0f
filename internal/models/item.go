package models

// InventoryItem is one stock entry of the shop's catalog. JSON field names
// mirror the persisted slot documents, so old backups stay importable.
type InventoryItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	MinQuantity float64 `json:"minQuantity"`
	Price       float64 `json:"price"`
}

// IsLowStock reports whether the item sits at or below its minimum. Derived
// on every read, never stored.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}
