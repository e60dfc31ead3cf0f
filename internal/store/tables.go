package store

import (
	"fmt"

	"gelato-pos/internal/models"

	"github.com/google/uuid"
)

// PriceMarkup is the fixed multiplier from catalog price to selling price.
const PriceMarkup = 1.5

// SaleCategory tags every table checkout transaction.
const SaleCategory = "Venda de Sorvete"

// ListTables returns a copy of all tables with their open orders.
func (s *Store) ListTables() []models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTables(s.tables)
}

func copyTables(tables []models.Table) []models.Table {
	out := make([]models.Table, len(tables))
	for i, t := range tables {
		order := make([]models.OrderItem, len(t.CurrentOrder))
		copy(order, t.CurrentOrder)
		t.CurrentOrder = order
		out[i] = t
	}
	return out
}

// AddOrderLine snapshots the product onto the table's order at the selling
// markup and forces the table Occupied. The catalog item is read-only here:
// selling never decrements its quantity. Each call appends one line with
// quantity 1; adding the same product twice yields two lines.
func (s *Store) AddOrderLine(tableID int, productID string) (models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.tableIndex(tableID)
	if idx < 0 {
		return models.OrderItem{}, ErrTableNotFound
	}
	var product *models.InventoryItem
	for i := range s.stock {
		if s.stock[i].ID == productID {
			product = &s.stock[i]
			break
		}
	}
	if product == nil {
		return models.OrderItem{}, ErrProductNotFound
	}

	line := models.OrderItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  1,
		Price:     product.Price * PriceMarkup,
	}
	s.tables[idx].CurrentOrder = append(s.tables[idx].CurrentOrder, line)
	s.tables[idx].Status = models.TableOccupied

	if err := s.saveTables(); err != nil {
		return models.OrderItem{}, err
	}
	return line, nil
}

// RemoveOrderLine deletes one line by id. An unknown line id is a no-op.
// Status is untouched even when the order becomes empty; only checkout makes
// a table Available again.
func (s *Store) RemoveOrderLine(tableID int, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.tableIndex(tableID)
	if idx < 0 {
		return ErrTableNotFound
	}
	order := s.tables[idx].CurrentOrder
	for i := range order {
		if order[i].ID == lineID {
			s.tables[idx].CurrentOrder = append(order[:i], order[i+1:]...)
			return s.saveTables()
		}
	}
	return nil
}

// Checkout sums the table's open order, appends one income transaction when
// the total is positive, and resets the table to Available with an empty
// order. A zero total still clears the table but records nothing. Appending
// the transaction and clearing the table happen in one store operation.
func (s *Store) Checkout(tableID int, method models.PaymentMethod) (models.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !method.Valid() {
		return models.Transaction{}, false, ErrInvalidPayment
	}
	idx := s.tableIndex(tableID)
	if idx < 0 {
		return models.Transaction{}, false, ErrTableNotFound
	}
	table := &s.tables[idx]
	if len(table.CurrentOrder) == 0 {
		return models.Transaction{}, false, ErrEmptyOrder
	}

	total := table.OrderTotal()
	var tx models.Transaction
	recorded := false
	if total > 0 {
		tx = models.Transaction{
			ID:            uuid.NewString(),
			Type:          models.TransactionIncome,
			Amount:        total,
			Description:   fmt.Sprintf("Consumo Mesa %d", table.Number),
			Category:      SaleCategory,
			PaymentMethod: method,
			Date:          nowISO(),
		}
		s.transactions = append(s.transactions, tx)
		if err := s.saveTransactions(); err != nil {
			return models.Transaction{}, false, err
		}
		recorded = true
	}

	table.Status = models.TableAvailable
	table.CurrentOrder = []models.OrderItem{}
	if err := s.saveTables(); err != nil {
		return models.Transaction{}, false, err
	}
	return tx, recorded, nil
}

func (s *Store) tableIndex(tableID int) int {
	for i := range s.tables {
		if s.tables[i].ID == tableID {
			return i
		}
	}
	return -1
}
