package repository

import (
	"context"
	"homework_check_backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) GetSettings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if err := r.DB.WithContext(ctx).Order("created_at asc").First(&settings).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, settings *model.Settings) error {
	return r.DB.WithContext(ctx).Save(settings).Error
}

func (r *SettingsRepository) ListEncouragementRanges(ctx context.Context) ([]model.EncouragementRange, error) {
	var ranges []model.EncouragementRange
	err := r.DB.WithContext(ctx).Order("display_order asc, created_at asc").Find(&ranges).Error
	return ranges, err
}

func (r *SettingsRepository) GetEncouragementRange(ctx context.Context, id string) (*model.EncouragementRange, error) {
	var rng model.EncouragementRange
	if err := r.DB.WithContext(ctx).First(&rng, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rng, nil
}

func (r *SettingsRepository) CreateEncouragementRange(ctx context.Context, rng *model.EncouragementRange) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := nextOrder(tx, &model.EncouragementRange{}, "display_order", 0)
		if err != nil {
			return err
		}
		rng.DisplayOrder = order
		return tx.Create(rng).Error
	})
}

func (r *SettingsRepository) UpdateEncouragementRange(ctx context.Context, rng *model.EncouragementRange) error {
	return r.DB.WithContext(ctx).Save(rng).Error
}

func (r *SettingsRepository) DeleteEncouragementRange(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.EncouragementRange{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SettingsRepository) ReorderEncouragementRanges(ctx context.Context, ids []string) error {
	return reorder(ctx, r.DB, &model.EncouragementRange{}, "display_order", ids)
}
