package store

import (
	"fmt"
	"testing"

	"gelato-pos/internal/models"
)

func TestAddOrderLine(t *testing.T) {
	s := newTestStore(t)

	// Sorvete Baunilha costs 4.50 in the catalog
	line, err := s.AddOrderLine(1, "1")
	if err != nil {
		t.Fatalf("add line: %v", err)
	}
	if !almostEqual(line.Price, 4.50*PriceMarkup) {
		t.Errorf("line price = %g, want %g", line.Price, 4.50*PriceMarkup)
	}
	if line.Quantity != 1 {
		t.Errorf("line quantity = %d, want 1", line.Quantity)
	}
	if line.ProductID != "1" || line.Name != "Sorvete Baunilha" {
		t.Errorf("line snapshot = %+v", line)
	}

	table := s.ListTables()[0]
	if table.Status != models.TableOccupied {
		t.Errorf("table status = %q, want %q", table.Status, models.TableOccupied)
	}

	// selling does not consume inventory
	for _, item := range s.ListStock("") {
		if item.ID == "1" && item.Quantity != 150 {
			t.Errorf("source quantity = %g, want 150", item.Quantity)
		}
	}
}

// Adding the same product twice yields two lines, not quantity 2.
func TestAddOrderLine_SameProductTwice(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddOrderLine(3, "1"); err != nil {
		t.Fatalf("first line: %v", err)
	}
	if _, err := s.AddOrderLine(3, "1"); err != nil {
		t.Fatalf("second line: %v", err)
	}

	table := s.ListTables()[2]
	if len(table.CurrentOrder) != 2 {
		t.Fatalf("order len = %d, want 2", len(table.CurrentOrder))
	}
	if table.CurrentOrder[0].ID == table.CurrentOrder[1].ID {
		t.Error("lines share an id")
	}
}

func TestAddOrderLine_Misses(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddOrderLine(99, "1"); err != ErrTableNotFound {
		t.Errorf("unknown table: err = %v, want ErrTableNotFound", err)
	}
	if _, err := s.AddOrderLine(1, "nope"); err != ErrProductNotFound {
		t.Errorf("unknown product: err = %v, want ErrProductNotFound", err)
	}
	// neither miss mutated the table
	if s.ListTables()[0].Status != models.TableAvailable {
		t.Error("table mutated by failed add")
	}
}

// Removing lines never flips the status back; only checkout does.
func TestRemoveOrderLine_KeepsStatus(t *testing.T) {
	s := newTestStore(t)

	line, err := s.AddOrderLine(2, "3")
	if err != nil {
		t.Fatalf("add line: %v", err)
	}
	if err := s.RemoveOrderLine(2, line.ID); err != nil {
		t.Fatalf("remove line: %v", err)
	}

	table := s.ListTables()[1]
	if len(table.CurrentOrder) != 0 {
		t.Errorf("order len = %d, want 0", len(table.CurrentOrder))
	}
	if table.Status != models.TableOccupied {
		t.Errorf("status = %q, want still %q", table.Status, models.TableOccupied)
	}

	// unknown line id is a no-op, not a failure
	if err := s.RemoveOrderLine(2, "nope"); err != nil {
		t.Errorf("remove unknown line: %v", err)
	}
}

func TestCheckout(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddOrderLine(3, "1"); err != nil {
		t.Fatalf("line 1: %v", err)
	}
	if _, err := s.AddOrderLine(3, "1"); err != nil {
		t.Fatalf("line 2: %v", err)
	}
	before := s.TransactionCount()

	tx, recorded, err := s.Checkout(3, models.PaymentCash)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !recorded {
		t.Fatal("checkout: recorded = false, want true")
	}

	want := 2 * 4.50 * PriceMarkup
	if !almostEqual(tx.Amount, want) {
		t.Errorf("amount = %g, want %g", tx.Amount, want)
	}
	if tx.Type != models.TransactionIncome {
		t.Errorf("type = %q, want %q", tx.Type, models.TransactionIncome)
	}
	if tx.Category != SaleCategory {
		t.Errorf("category = %q, want %q", tx.Category, SaleCategory)
	}
	if tx.Description != fmt.Sprintf("Consumo Mesa %d", 3) {
		t.Errorf("description = %q", tx.Description)
	}
	if tx.PaymentMethod != models.PaymentCash {
		t.Errorf("payment method = %q", tx.PaymentMethod)
	}

	if got := s.TransactionCount(); got != before+1 {
		t.Errorf("transaction count = %d, want %d", got, before+1)
	}

	table := s.ListTables()[2]
	if table.Status != models.TableAvailable || len(table.CurrentOrder) != 0 {
		t.Errorf("table after checkout = %+v, want available and empty", table)
	}
}

// A zero total still clears the table but records no transaction.
func TestCheckout_ZeroTotal(t *testing.T) {
	s := newTestStore(t)

	free, ok, err := s.AddStockItem(models.InventoryItem{Name: "Amostra Grátis", Price: 0})
	if err != nil || !ok {
		t.Fatalf("add item: ok=%v err=%v", ok, err)
	}
	if _, err := s.AddOrderLine(5, free.ID); err != nil {
		t.Fatalf("add line: %v", err)
	}

	_, recorded, err := s.Checkout(5, models.PaymentPix)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if recorded {
		t.Error("zero-total checkout recorded a transaction")
	}
	if s.TransactionCount() != 0 {
		t.Error("ledger grew on zero-total checkout")
	}

	table := s.ListTables()[4]
	if table.Status != models.TableAvailable || len(table.CurrentOrder) != 0 {
		t.Errorf("table not cleared: %+v", table)
	}
}

func TestCheckout_Rejections(t *testing.T) {
	s := newTestStore(t)

	if _, _, err := s.Checkout(1, models.PaymentCard); err != ErrEmptyOrder {
		t.Errorf("empty order: err = %v, want ErrEmptyOrder", err)
	}
	if _, _, err := s.Checkout(1, "CHEQUE"); err != ErrInvalidPayment {
		t.Errorf("bad method: err = %v, want ErrInvalidPayment", err)
	}
	if _, _, err := s.Checkout(99, models.PaymentCard); err != ErrTableNotFound {
		t.Errorf("unknown table: err = %v, want ErrTableNotFound", err)
	}
}

// Order operations only ever touch the targeted table.
func TestTableOps_LeaveOtherTablesAlone(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddOrderLine(4, "2"); err != nil {
		t.Fatalf("add line: %v", err)
	}
	if _, _, err := s.Checkout(4, models.PaymentPix); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	for _, table := range s.ListTables() {
		if table.ID == 4 {
			continue
		}
		if table.Status != models.TableAvailable || len(table.CurrentOrder) != 0 {
			t.Errorf("table %d mutated: %+v", table.ID, table)
		}
	}
}

// Order lines are value snapshots: a later catalog price change must not
// drift an open order.
func TestOrderLine_SnapshotSurvivesCatalogEdit(t *testing.T) {
	s := newTestStore(t)

	line, err := s.AddOrderLine(1, "1")
	if err != nil {
		t.Fatalf("add line: %v", err)
	}

	newPrice := 9.99
	if _, ok, err := s.UpdateStockItem("1", StockItemUpdate{Price: &newPrice}); err != nil || !ok {
		t.Fatalf("update price: ok=%v err=%v", ok, err)
	}

	table := s.ListTables()[0]
	if !almostEqual(table.CurrentOrder[0].Price, line.Price) {
		t.Errorf("line price drifted to %g", table.CurrentOrder[0].Price)
	}
}
