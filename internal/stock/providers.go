package stock

import (
	"gorm.io/gorm"

	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/internal/stock/repository"
)

// ProvideColorRepository provides the traced color repository
func ProvideColorRepository(db *gorm.DB) domain.ColorRepository {
	return repository.NewColorRepositoryWithTracing(repository.NewGormColorRepository(db))
}

// ProvideDescriptionRepository provides the traced description repository
func ProvideDescriptionRepository(db *gorm.DB) domain.DescriptionRepository {
	return repository.NewDescriptionRepositoryWithTracing(repository.NewGormDescriptionRepository(db))
}

// ProvideStockEntryRepository provides the traced stock entry repository
func ProvideStockEntryRepository(db *gorm.DB) domain.StockEntryRepository {
	return repository.NewStockEntryRepositoryWithTracing(repository.NewGormStockEntryRepository(db))
}
