package models

// Backup is the bulk import/export document. On import, a nil slice leaves the
// matching entity untouched while an empty slice clears it.
type Backup struct {
	Clients    []Client        `json:"clients,omitempty"`
	Inventory  []Material      `json:"inventory,omitempty"`
	StockItems []StockItem     `json:"stockItems,omitempty"`
	History    []Calculation   `json:"history,omitempty"`
	Settings   *SettingsUpdate `json:"settings,omitempty"`
}

// ImportSummary reports how many rows an import wrote per entity.
type ImportSummary struct {
	OK         bool `json:"ok"`
	Clients    int  `json:"clients"`
	Materials  int  `json:"materials"`
	StockItems int  `json:"stockItems"`
	History    int  `json:"history"`
	Settings   bool `json:"settings"`
}
