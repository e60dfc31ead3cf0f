package store

import (
	"path/filepath"
	"testing"

	"gelato-pos/internal/config"
	"gelato-pos/internal/database"
	"gelato-pos/internal/models"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Init(config.DatabaseConfig{Path: path})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(newTestDB(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

// A fresh database is seeded with the starter inventory, eight available
// tables, an empty ledger and the default settings.
func TestOpen_SeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	stock := s.ListStock("")
	if len(stock) != 4 {
		t.Fatalf("seed stock len = %d, want 4", len(stock))
	}
	if stock[0].Name != "Sorvete Baunilha" {
		t.Errorf("first seed item = %q, want Sorvete Baunilha", stock[0].Name)
	}

	tables := s.ListTables()
	if len(tables) != 8 {
		t.Fatalf("seed tables len = %d, want 8", len(tables))
	}
	for _, table := range tables {
		if table.Status != models.TableAvailable {
			t.Errorf("table %d status = %q, want %q", table.Number, table.Status, models.TableAvailable)
		}
		if len(table.CurrentOrder) != 0 {
			t.Errorf("table %d has %d order lines, want 0", table.Number, len(table.CurrentOrder))
		}
	}

	if n := s.TransactionCount(); n != 0 {
		t.Errorf("seed transactions = %d, want 0", n)
	}

	settings := s.Settings()
	if settings.ShopName != "GelatoMaster" || settings.ThemeColor != "red" {
		t.Errorf("seed settings = %+v", settings)
	}
}

// Mutations survive a full reopen: each change rewrote its slot.
func TestOpen_ReloadsPersistedState(t *testing.T) {
	db := newTestDB(t)
	s, err := Open(db)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	item, ok, err := s.AddStockItem(models.InventoryItem{Name: "Sorvete de Pistache", Quantity: 30, MinQuantity: 10, Price: 6})
	if err != nil || !ok {
		t.Fatalf("add item: ok=%v err=%v", ok, err)
	}
	if _, err := s.AddOrderLine(3, item.ID); err != nil {
		t.Fatalf("add order line: %v", err)
	}

	reopened, err := Open(db)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if got := len(reopened.ListStock("")); got != 5 {
		t.Errorf("reopened stock len = %d, want 5", got)
	}
	tables := reopened.ListTables()
	if tables[2].Status != models.TableOccupied || len(tables[2].CurrentOrder) != 1 {
		t.Errorf("reopened table 3 = %+v, want occupied with 1 line", tables[2])
	}
}

// A slot that is present but not valid JSON fails the load; there is no
// recovery policy.
func TestOpen_CorruptSlotIsFatal(t *testing.T) {
	db := newTestDB(t)
	if _, err := Open(db); err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := writeSlot(db, SlotStock, "{not json"); err != nil {
		t.Fatalf("corrupt slot: %v", err)
	}

	if _, err := Open(db); err == nil {
		t.Fatal("Open with corrupt slot: error = nil, want error")
	}
}
