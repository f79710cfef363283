package domain

import "context"

// Description is a stock item tracked across colors.
type Description struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null;uniqueIndex"`
	OpeningStock int    `json:"opening_stock" gorm:"not null;default:0"`
	Active       bool   `json:"active" gorm:"not null"`
}

// TableName specifies the table name
func (Description) TableName() string {
	return "descriptions"
}

// DescriptionRepository defines the contract for description data access
type DescriptionRepository interface {
	Create(ctx context.Context, description *Description) error
	FindByID(ctx context.Context, id uint) (*Description, error)
	FindByName(ctx context.Context, name string) (*Description, error)
	FindAll(ctx context.Context) ([]Description, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	// UpdateOpeningStocks sets opening_stock per description id in one transaction
	// and returns how many descriptions were updated. Unknown ids are skipped.
	UpdateOpeningStocks(ctx context.Context, openings map[uint]int) (int, error)
}
