package store

import "gelato-pos/internal/models"

// SeedStock is the starter inventory used when no stock slot exists yet.
func SeedStock() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "1", Name: "Sorvete Baunilha", Category: "Base", Quantity: 150, Unit: "un", MinQuantity: 50, Price: 4.50},
		{ID: "2", Name: "Sorvete Chocolate", Category: "Base", Quantity: 120, Unit: "un", MinQuantity: 50, Price: 4.80},
		{ID: "3", Name: "Cobertura Morango", Category: "Topping", Quantity: 80, Unit: "un", MinQuantity: 30, Price: 2.50},
		{ID: "4", Name: "Casquinhas", Category: "Embalagem", Quantity: 450, Unit: "un", MinQuantity: 50, Price: 0.50},
	}
}

// SeedTables creates the fixed set of eight tables, all available. Tables
// are not user-creatable, so this runs exactly once per fresh database.
func SeedTables() []models.Table {
	tables := make([]models.Table, 0, 8)
	for i := 1; i <= 8; i++ {
		tables = append(tables, models.Table{
			ID:           i,
			Number:       i,
			Status:       models.TableAvailable,
			CurrentOrder: []models.OrderItem{},
		})
	}
	return tables
}

// DefaultSettings is the shop record used until the owner edits it.
func DefaultSettings() models.AppSettings {
	return models.AppSettings{
		ShopName:   "GelatoMaster",
		ThemeColor: "red",
		UserName:   "Admin Sorvete",
		UserRole:   "Gerente",
	}
}
