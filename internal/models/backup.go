package models

// BackupBundle is the full snapshot of the four persisted collections, the
// unit of export/import. No embedded version or checksum.
type BackupBundle struct {
	Stock        []InventoryItem `json:"stock"`
	Tables       []Table         `json:"tables"`
	Transactions []Transaction   `json:"transactions"`
	Settings     AppSettings     `json:"settings"`
}
