package store

import (
	"encoding/json"
	"fmt"

	"gelato-pos/internal/models"

	"gorm.io/gorm"
)

// rawBundle mirrors models.BackupBundle but keeps the three collection
// documents byte-for-byte as stored. Settings is the live in-memory value,
// the way exports have always been assembled.
type rawBundle struct {
	Stock        json.RawMessage    `json:"stock"`
	Tables       json.RawMessage    `json:"tables"`
	Transactions json.RawMessage    `json:"transactions"`
	Settings     models.AppSettings `json:"settings"`
}

// BundleError reports which part of an imported document failed validation.
type BundleError struct {
	Field string
}

func (e *BundleError) Error() string {
	return "invalid backup bundle: missing or malformed " + e.Field
}

// ExportBundle serializes the full backup: the three collections read back
// from durable storage exactly as stored, plus the live settings record.
func (s *Store) ExportBundle() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle := rawBundle{Settings: s.settings}
	for _, part := range []struct {
		key string
		dst *json.RawMessage
	}{
		{SlotStock, &bundle.Stock},
		{SlotTables, &bundle.Tables},
		{SlotTransactions, &bundle.Transactions},
	} {
		raw, ok, err := s.readSlot(part.key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("export: slot %s not found", part.key)
		}
		*part.dst = json.RawMessage(raw)
	}

	out, err := json.MarshalIndent(&bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal bundle: %w", err)
	}
	return out, nil
}

// ImportBundle validates the document's shape, overwrites all four slots in
// one database transaction and reloads the in-memory collections. Anything
// short of a well-formed bundle is rejected with a *BundleError before any
// slot is touched.
func (s *Store) ImportBundle(doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var probe struct {
		Stock        *[]models.InventoryItem `json:"stock"`
		Tables       *[]models.Table         `json:"tables"`
		Transactions *[]models.Transaction   `json:"transactions"`
		Settings     *models.AppSettings     `json:"settings"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return &BundleError{Field: "document"}
	}
	if probe.Stock == nil {
		return &BundleError{Field: "stock"}
	}
	if probe.Tables == nil {
		return &BundleError{Field: "tables"}
	}
	if probe.Transactions == nil {
		return &BundleError{Field: "transactions"}
	}
	if probe.Settings == nil {
		return &BundleError{Field: "settings"}
	}
	if !models.ValidThemeColor(probe.Settings.ThemeColor) {
		return &BundleError{Field: "settings.themeColor"}
	}
	for _, tx := range *probe.Transactions {
		if !tx.Type.Valid() {
			return &BundleError{Field: "transactions.type"}
		}
	}

	parts := map[string]any{
		SlotStock:        *probe.Stock,
		SlotTables:       *probe.Tables,
		SlotTransactions: *probe.Transactions,
		SlotSettings:     *probe.Settings,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for key, v := range parts {
			if err := saveCollection(tx, key, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import bundle: %w", err)
	}

	s.stock = *probe.Stock
	s.tables = *probe.Tables
	s.transactions = *probe.Transactions
	s.settings = *probe.Settings
	return nil
}
