package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

type GormDescriptionRepository struct {
	db *gorm.DB
}

func NewGormDescriptionRepository(db *gorm.DB) *GormDescriptionRepository {
	return &GormDescriptionRepository{db: db}
}

func (r *GormDescriptionRepository) Create(ctx context.Context, description *domain.Description) error {
	return translateError("create description", r.db.WithContext(ctx).Create(description).Error)
}

func (r *GormDescriptionRepository) FindByID(ctx context.Context, id uint) (*domain.Description, error) {
	var description domain.Description
	if err := r.db.WithContext(ctx).First(&description, id).Error; err != nil {
		return nil, translateError("find description", err)
	}
	return &description, nil
}

func (r *GormDescriptionRepository) FindByName(ctx context.Context, name string) (*domain.Description, error) {
	var description domain.Description
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&description).Error; err != nil {
		return nil, translateError("find description", err)
	}
	return &description, nil
}

func (r *GormDescriptionRepository) FindAll(ctx context.Context) ([]domain.Description, error) {
	var descriptions []domain.Description
	err := r.db.WithContext(ctx).Order("id ASC").Find(&descriptions).Error
	return descriptions, translateError("list descriptions", err)
}

func (r *GormDescriptionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Description{}, id)
	if result.Error != nil {
		return translateError("delete description", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormDescriptionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Description{}).Count(&count).Error
	return count, translateError("count descriptions", err)
}

func (r *GormDescriptionRepository) UpdateOpeningStocks(ctx context.Context, openings map[uint]int) (int, error) {
	ids := make([]uint, 0, len(openings))
	for id := range openings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	updated := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			result := tx.Model(&domain.Description{}).
				Where("id = ?", id).
				Update("opening_stock", openings[id])
			if result.Error != nil {
				return result.Error
			}
			updated += int(result.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, translateError("update opening stock", err)
	}
	return updated, nil
}
