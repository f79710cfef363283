package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

type GormStockEntryRepository struct {
	db *gorm.DB
}

func NewGormStockEntryRepository(db *gorm.DB) *GormStockEntryRepository {
	return &GormStockEntryRepository{db: db}
}

func (r *GormStockEntryRepository) Create(ctx context.Context, entry *domain.StockEntry) error {
	return translateError("create stock entry", r.db.WithContext(ctx).Create(entry).Error)
}

func (r *GormStockEntryRepository) FindInPeriod(ctx context.Context, from, to domain.Date) ([]domain.StockEntry, error) {
	var entries []domain.StockEntry
	err := r.db.WithContext(ctx).
		Where("entry_date >= ? AND entry_date < ?", from, to).
		Order("entry_date ASC, id ASC").
		Find(&entries).Error
	return entries, translateError("list stock entries", err)
}
