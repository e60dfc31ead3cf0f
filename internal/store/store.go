package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gelato-pos/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot keys, one per persisted collection. Kept identical to the keys the
// shop has always used so existing data loads unchanged.
const (
	SlotStock        = "gelato_stock"
	SlotTables       = "gelato_tables"
	SlotTransactions = "gelato_transactions"
	SlotSettings     = "gelato_settings"
)

var (
	ErrTableNotFound   = errors.New("table not found")
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyOrder      = errors.New("order is empty")
	ErrInvalidPayment  = errors.New("invalid payment method")
	ErrInvalidTheme    = errors.New("unknown theme color")
)

// Store holds the four domain collections in memory and rewrites a
// collection's whole slot on every mutation. Persistence is an explicit part
// of each operation, never a side effect of assignment. One mutex serializes
// operations, so every ledger operation is atomic with respect to the others.
type Store struct {
	mu sync.Mutex
	db *gorm.DB

	stock        []models.InventoryItem
	tables       []models.Table
	transactions []models.Transaction
	settings     models.AppSettings
}

// Open loads the four collections from their slots, seeding and persisting
// defaults for slots that do not exist yet. A present but unparseable slot
// is a fatal load error; there is no schema migration.
func Open(db *gorm.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, ok, err := s.readSlot(SlotStock)
	if err != nil {
		return err
	}
	if !ok {
		s.stock = SeedStock()
		if err := s.saveStock(); err != nil {
			return err
		}
	} else if err := json.Unmarshal([]byte(raw), &s.stock); err != nil {
		return fmt.Errorf("load slot %s: corrupt document: %w", SlotStock, err)
	}

	raw, ok, err = s.readSlot(SlotTables)
	if err != nil {
		return err
	}
	if !ok {
		s.tables = SeedTables()
		if err := s.saveTables(); err != nil {
			return err
		}
	} else if err := json.Unmarshal([]byte(raw), &s.tables); err != nil {
		return fmt.Errorf("load slot %s: corrupt document: %w", SlotTables, err)
	}

	raw, ok, err = s.readSlot(SlotTransactions)
	if err != nil {
		return err
	}
	if !ok {
		s.transactions = []models.Transaction{}
		if err := s.saveTransactions(); err != nil {
			return err
		}
	} else if err := json.Unmarshal([]byte(raw), &s.transactions); err != nil {
		return fmt.Errorf("load slot %s: corrupt document: %w", SlotTransactions, err)
	}

	raw, ok, err = s.readSlot(SlotSettings)
	if err != nil {
		return err
	}
	if !ok {
		s.settings = DefaultSettings()
		if err := s.saveSettings(); err != nil {
			return err
		}
	} else if err := json.Unmarshal([]byte(raw), &s.settings); err != nil {
		return fmt.Errorf("load slot %s: corrupt document: %w", SlotSettings, err)
	}

	return nil
}

func (s *Store) readSlot(key string) (string, bool, error) {
	var slot models.Slot
	err := s.db.First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %s: %w", key, err)
	}
	return slot.Value, true, nil
}

func writeSlot(db *gorm.DB, key, value string) error {
	slot := models.Slot{Key: key, Value: value, UpdatedAt: time.Now()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

func saveCollection(db *gorm.DB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", key, err)
	}
	return writeSlot(db, key, string(raw))
}

func (s *Store) saveStock() error        { return saveCollection(s.db, SlotStock, s.stock) }
func (s *Store) saveTables() error       { return saveCollection(s.db, SlotTables, s.tables) }
func (s *Store) saveTransactions() error { return saveCollection(s.db, SlotTransactions, s.transactions) }
func (s *Store) saveSettings() error     { return saveCollection(s.db, SlotSettings, s.settings) }

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
