package models

// TableStatus is the occupancy state of a dining table. Values are the
// pt-BR labels the shop displays and persists.
type TableStatus string

const (
	TableAvailable TableStatus = "Disponível"
	TableOccupied  TableStatus = "Ocupada"
	// TableReserved is declared in the persisted schema but no operation
	// transitions into or out of it.
	TableReserved TableStatus = "Reservada"
)

// OrderItem is a priced line on a table's open order. It is a value snapshot
// of the catalog item at the moment it was added: name and price are copied,
// not referenced, so later catalog edits never change an open order.
type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Table is one dining table with its open order.
type Table struct {
	ID           int         `json:"id"`
	Number       int         `json:"number"`
	Status       TableStatus `json:"status"`
	CurrentOrder []OrderItem `json:"currentOrder"`
}

// OrderTotal sums the open order's line prices.
func (t Table) OrderTotal() float64 {
	var total float64
	for _, line := range t.CurrentOrder {
		total += line.Price
	}
	return total
}
