package repository

import (
	"context"
	"homework_check_backend/internal/model"

	"gorm.io/gorm"
)

type FolderRepository struct {
	DB *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{DB: db}
}

func (r *FolderRepository) ListFolders(ctx context.Context) ([]model.Folder, error) {
	var folders []model.Folder
	err := r.DB.WithContext(ctx).Order("sort_order asc, created_at asc").Find(&folders).Error
	return folders, err
}

func (r *FolderRepository) GetFolder(ctx context.Context, id string) (*model.Folder, error) {
	var folder model.Folder
	if err := r.DB.WithContext(ctx).First(&folder, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &folder, nil
}

func (r *FolderRepository) CreateFolder(ctx context.Context, folder *model.Folder) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := nextOrder(tx, &model.Folder{}, "sort_order", 1)
		if err != nil {
			return err
		}
		folder.SortOrder = order
		return tx.Create(folder).Error
	})
}

func (r *FolderRepository) UpdateFolder(ctx context.Context, folder *model.Folder) error {
	return r.DB.WithContext(ctx).Save(folder).Error
}

// DeleteFolder moves the folder's assignments to the top level.
func (r *FolderRepository) DeleteFolder(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Assignment{}).Where("folder_id = ?", id).Update("folder_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Folder{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *FolderRepository) ReorderFolders(ctx context.Context, ids []string) error {
	return reorder(ctx, r.DB, &model.Folder{}, "sort_order", ids)
}
