package repository

import (
	"context"
	"homework_check_backend/internal/model"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) ListClasses(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.WithContext(ctx).Order("sort_order asc, created_at asc").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) GetClass(ctx context.Context, id string) (*model.Class, error) {
	var class model.Class
	if err := r.DB.WithContext(ctx).First(&class, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &class, nil
}

func (r *ClassRepository) CreateClass(ctx context.Context, class *model.Class) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := nextOrder(tx, &model.Class{}, "sort_order", 1)
		if err != nil {
			return err
		}
		class.SortOrder = order
		return tx.Create(class).Error
	})
}

func (r *ClassRepository) UpdateClass(ctx context.Context, class *model.Class) error {
	return r.DB.WithContext(ctx).Save(class).Error
}

// DeleteClass also unlinks the class from its assignments.
func (r *ClassRepository) DeleteClass(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", id).Delete(&model.AssignmentClass{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Class{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *ClassRepository) ReorderClasses(ctx context.Context, ids []string) error {
	return reorder(ctx, r.DB, &model.Class{}, "sort_order", ids)
}
