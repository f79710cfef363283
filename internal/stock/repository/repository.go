package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// AutoMigrate creates or updates the stock tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Description{}, &domain.Color{}, &domain.StockEntry{})
}

// translateError maps gorm errors onto domain error kinds.
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("failed to %s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
