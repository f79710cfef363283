package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

type GormColorRepository struct {
	db *gorm.DB
}

func NewGormColorRepository(db *gorm.DB) *GormColorRepository {
	return &GormColorRepository{db: db}
}

func (r *GormColorRepository) Create(ctx context.Context, color *domain.Color) error {
	return translateError("create color", r.db.WithContext(ctx).Create(color).Error)
}

func (r *GormColorRepository) FindByID(ctx context.Context, id uint) (*domain.Color, error) {
	var color domain.Color
	if err := r.db.WithContext(ctx).First(&color, id).Error; err != nil {
		return nil, translateError("find color", err)
	}
	return &color, nil
}

func (r *GormColorRepository) FindByName(ctx context.Context, name string) (*domain.Color, error) {
	var color domain.Color
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&color).Error; err != nil {
		return nil, translateError("find color", err)
	}
	return &color, nil
}

func (r *GormColorRepository) FindAll(ctx context.Context) ([]domain.Color, error) {
	var colors []domain.Color
	err := r.db.WithContext(ctx).Order("id ASC").Find(&colors).Error
	return colors, translateError("list colors", err)
}

func (r *GormColorRepository) SeedDefaults(ctx context.Context, colors []domain.Color) (int, error) {
	added := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range colors {
			var count int64
			if err := tx.Model(&domain.Color{}).Where("name = ?", c.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			row := domain.Color{Name: c.Name, HexCode: c.HexCode}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, translateError("seed colors", err)
	}
	return added, nil
}
