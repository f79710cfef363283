package domain

import "context"

// StockEntry records a purchase and/or usage of one description in one color on one day.
// Entries are immutable once created.
type StockEntry struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	EntryDate     Date    `json:"entry_date" gorm:"type:date;not null;index" swaggertype:"string" example:"2024-01-05"`
	DescriptionID uint    `json:"description_id" gorm:"not null;index"`
	ColorID       uint    `json:"color_id" gorm:"not null;index"`
	PurchaseQty   int     `json:"purchase_qty" gorm:"not null;default:0"`
	UsageQty      int     `json:"usage_qty" gorm:"not null;default:0"`
	Reason        *string `json:"reason" gorm:"size:255"`
}

// TableName specifies the table name
func (StockEntry) TableName() string {
	return "stock_entries"
}

// StockEntryRepository defines the contract for stock entry data access
type StockEntryRepository interface {
	Create(ctx context.Context, entry *StockEntry) error
	// FindInPeriod returns the entries dated within [from, to).
	FindInPeriod(ctx context.Context, from, to Date) ([]StockEntry, error)
}
