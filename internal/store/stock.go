package store

import (
	"strings"

	"gelato-pos/internal/models"

	"github.com/google/uuid"
)

// ListStock returns the items whose name or category contains the filter,
// case-insensitive, in insertion order. An empty filter returns everything.
func (s *Store) ListStock(filter string) []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]models.InventoryItem, 0, len(s.stock))
	for _, item := range s.stock {
		if needle == "" ||
			strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Category), needle) {
			out = append(out, item)
		}
	}
	return out
}

// LowStock returns the items at or below their minimum, recomputed per call.
func (s *Store) LowStock() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.InventoryItem, 0)
	for _, item := range s.stock {
		if item.IsLowStock() {
			out = append(out, item)
		}
	}
	return out
}

// AddStockItem creates a catalog item with a fresh id. A blank name is a
// silent no-op: the second return is false and nothing is persisted.
func (s *Store) AddStockItem(item models.InventoryItem) (models.InventoryItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return models.InventoryItem{}, false, nil
	}
	item.ID = uuid.NewString()
	if item.Category == "" {
		item.Category = "Outros"
	}
	if item.Unit == "" {
		item.Unit = "un"
	}

	s.stock = append(s.stock, item)
	if err := s.saveStock(); err != nil {
		return models.InventoryItem{}, false, err
	}
	return item, true, nil
}

// StockItemUpdate carries the fields of an edit; nil fields stay untouched.
type StockItemUpdate struct {
	Name        *string
	Category    *string
	Quantity    *float64
	Unit        *string
	MinQuantity *float64
	Price       *float64
}

// UpdateStockItem mutates one item in place. An unknown id is a no-op and
// returns false. A blank new name leaves the old name in place.
func (s *Store) UpdateStockItem(id string, upd StockItemUpdate) (models.InventoryItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stock {
		if s.stock[i].ID != id {
			continue
		}
		item := &s.stock[i]
		if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
			item.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Category != nil {
			item.Category = *upd.Category
		}
		if upd.Quantity != nil {
			item.Quantity = *upd.Quantity
		}
		if upd.Unit != nil {
			item.Unit = *upd.Unit
		}
		if upd.MinQuantity != nil {
			item.MinQuantity = *upd.MinQuantity
		}
		if upd.Price != nil {
			item.Price = *upd.Price
		}
		if err := s.saveStock(); err != nil {
			return models.InventoryItem{}, false, err
		}
		return *item, true, nil
	}
	return models.InventoryItem{}, false, nil
}

// RemoveStockItem deletes one item by id; an unknown id is a no-op. Order
// lines that copied this item stay intact: they hold values, not references.
func (s *Store) RemoveStockItem(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stock {
		if s.stock[i].ID == id {
			s.stock = append(s.stock[:i], s.stock[i+1:]...)
			if err := s.saveStock(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
